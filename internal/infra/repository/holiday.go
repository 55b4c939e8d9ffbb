package repository

import (
	"context"
	"time"

	"leaveflow/internal/infra"
	"leaveflow/internal/pkg/pgconv"
)

const holidayStatusImported = "IMPORTED"

type HolidayRepository struct {
	db DBTX
}

func NewHolidayRepository(db DBTX) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// FindDatesInRange returns the distinct imported holiday dates falling inside
// the inclusive range, the set DayCounter subtracts.
func (r *HolidayRepository) FindDatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT day
		FROM holidays
		WHERE status = $1 AND day BETWEEN $2 AND $3
		ORDER BY day`,
		holidayStatusImported,
		pgconv.DateFromTime(start),
		pgconv.DateFromTime(end),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query holidays", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, infra.WrapRepoErr("failed to scan holiday row", err)
		}
		dates = append(dates, day)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read holiday rows", err)
	}
	return dates, nil
}

// Upsert inserts or renames the holiday on the given date.
func (r *HolidayRepository) Upsert(ctx context.Context, day time.Time, name string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO holidays (day, name, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (day)
		DO UPDATE SET name = EXCLUDED.name, status = EXCLUDED.status, updated_at = now()`,
		pgconv.DateFromTime(day),
		name,
		holidayStatusImported,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert holiday", err)
	}
	return nil
}
