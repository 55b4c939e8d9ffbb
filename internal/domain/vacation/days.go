package vacation

import "time"

// CountDays computes the working-day count for an inclusive date range:
// calendar days minus distinct imported holidays falling inside the range,
// clamped at zero. The holiday set is supplied by the caller; the function is
// pure.
func CountDays(start, end time.Time, holidays []time.Time) (int, error) {
	r, err := NewDateRange(start, end)
	if err != nil {
		return 0, err
	}

	seen := make(map[time.Time]struct{}, len(holidays))
	for _, h := range holidays {
		day := truncateToDay(h)
		if !r.Contains(day) {
			continue
		}
		seen[day] = struct{}{}
	}

	days := r.InclusiveDays() - len(seen)
	if days < 0 {
		days = 0
	}
	return days, nil
}
