package vacation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateRange is an inclusive calendar-day range. Dates are normalized to
// midnight UTC so equality and day arithmetic are exact.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// InclusiveDays counts calendar days in the range, both endpoints included.
func (r DateRange) InclusiveDays() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) Contains(day time.Time) bool {
	day = truncateToDay(day)
	return !day.Before(r.start) && !day.After(r.end)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

var errEmptyUserID = errors.New("request code requires a user id")

// GenerateRequestCode builds the human-readable display code for a request.
// It is collision-tolerant by construction (user prefix + start date + millis
// suffix), not a uniqueness-bearing key; the UUID primary key carries
// identity.
func GenerateRequestCode(userID uuid.UUID, start time.Time, submittedAt time.Time) (string, error) {
	if userID == uuid.Nil {
		return "", errEmptyUserID
	}
	prefix := userID.String()[:8]
	return fmt.Sprintf("VR-%s-%s-%d", prefix, start.Format("2006-01-02"), submittedAt.UnixMilli()), nil
}
