package readstore

import (
	"context"
	"errors"
	"time"

	"leaveflow/internal/infra"
	"leaveflow/internal/infra/repository"
	"leaveflow/internal/pkg/pgconv"
	"leaveflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// VacationReadStore serves the query side with denormalized views; it joins
// the employee name in so handlers never have to.
type VacationReadStore struct {
	db repository.DBTX
}

func NewVacationReadStore(db repository.DBTX) *VacationReadStore {
	return &VacationReadStore{db: db}
}

const vacationViewQuery = `
	SELECT
		vr.id, vr.employee_id, u.display_name, vr.start_date, vr.end_date,
		vr.number_of_days, vr.status, vr.request_code, vr.manager_note,
		vr.hr_note, vr.submitted_at, vr.processed_at, vr.deduction_outcome
	FROM vacation_requests vr
	JOIN users u ON u.id = vr.employee_id`

func (s *VacationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VacationRequestView, error) {
	row := s.db.QueryRow(ctx, vacationViewQuery+`
		WHERE vr.id = $1`,
		id,
	)
	view, err := scanView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vacation request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vacation request view", err)
	}
	return view, nil
}

func (s *VacationReadStore) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]queries.VacationRequestView, error) {
	rows, err := s.db.Query(ctx, vacationViewQuery+`
		WHERE vr.employee_id = $1
		ORDER BY vr.start_date DESC`,
		employeeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employee vacation requests", err)
	}
	return collectViews(rows)
}

func (s *VacationReadStore) FindOverlappingForUser(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]queries.VacationRequestView, error) {
	rows, err := s.db.Query(ctx, vacationViewQuery+`
		WHERE vr.employee_id = $1
		  AND vr.status <> 'DENIED'
		  AND vr.start_date <= $3
		  AND vr.end_date >= $2
		ORDER BY vr.start_date`,
		userID,
		pgconv.DateFromTime(start),
		pgconv.DateFromTime(end),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping vacation requests", err)
	}
	return collectViews(rows)
}

func (s *VacationReadStore) FindPending(ctx context.Context) ([]queries.VacationRequestView, error) {
	rows, err := s.db.Query(ctx, vacationViewQuery+`
		WHERE vr.status = 'PENDING'
		ORDER BY vr.submitted_at`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending vacation requests", err)
	}
	return collectViews(rows)
}

func (s *VacationReadStore) FindApprovedUnprocessed(ctx context.Context) ([]queries.VacationRequestView, error) {
	rows, err := s.db.Query(ctx, vacationViewQuery+`
		WHERE vr.status = 'APPROVED' AND vr.processed_at IS NULL
		ORDER BY vr.start_date`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved vacation requests", err)
	}
	return collectViews(rows)
}

func collectViews(rows pgx.Rows) ([]queries.VacationRequestView, error) {
	defer rows.Close()
	var views []queries.VacationRequestView
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vacation request view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vacation request views", err)
	}
	return views, nil
}

func scanView(row pgx.Row) (*queries.VacationRequestView, error) {
	var (
		view        queries.VacationRequestView
		startDate   pgtype.Date
		endDate     pgtype.Date
		managerNote pgtype.Text
		hrNote      pgtype.Text
		processedAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.EmployeeID, &view.EmployeeName, &startDate, &endDate,
		&view.NumberOfDays, &view.Status, &view.RequestCode, &managerNote,
		&hrNote, &view.SubmittedAt, &processedAt, &view.DeductionOutcome,
	); err != nil {
		return nil, err
	}
	view.StartDate = pgconv.TimeFromDate(startDate)
	view.EndDate = pgconv.TimeFromDate(endDate)
	view.ManagerNote = pgconv.StringPtrFromPgtype(managerNote)
	view.HRNote = pgconv.StringPtrFromPgtype(hrNote)
	view.ProcessedAt = pgconv.TimePtrFromPgtype(processedAt)
	return &view, nil
}
