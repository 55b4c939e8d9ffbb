package readstore

import (
	"context"
	"time"

	"leaveflow/internal/infra"
	"leaveflow/internal/infra/repository"
	"leaveflow/internal/pkg/pgconv"
	"leaveflow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type HolidayReadStore struct {
	db repository.DBTX
}

func NewHolidayReadStore(db repository.DBTX) *HolidayReadStore {
	return &HolidayReadStore{db: db}
}

func (s *HolidayReadStore) FindForRange(ctx context.Context, start, end time.Time) ([]queries.HolidayView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, day, name
		FROM holidays
		WHERE status = 'IMPORTED' AND day BETWEEN $1 AND $2
		ORDER BY day`,
		pgconv.DateFromTime(start),
		pgconv.DateFromTime(end),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holidays", err)
	}
	defer rows.Close()

	var views []queries.HolidayView
	for rows.Next() {
		var (
			view queries.HolidayView
			day  pgtype.Date
		)
		if err := rows.Scan(&view.ID, &day, &view.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan holiday view", err)
		}
		view.Date = pgconv.TimeFromDate(day)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read holiday views", err)
	}
	return views, nil
}
