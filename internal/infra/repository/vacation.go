package repository

import (
	"context"
	"errors"

	"leaveflow/internal/domain/vacation"
	"leaveflow/internal/infra"
	"leaveflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type VacationRequestRepository struct {
	db DBTX
}

func NewVacationRequestRepository(db DBTX) *VacationRequestRepository {
	return &VacationRequestRepository{db: db}
}

const vacationRequestColumns = `
	id, employee_id, start_date, end_date, number_of_days, status,
	request_code, manager_note, hr_note, hr_id, submitted_at, processed_at,
	deduction_outcome, deduction_reason`

func (r *VacationRequestRepository) Create(ctx context.Context, req *vacation.Request) error {
	var note *string
	if !req.ManagerNote().IsEmpty() {
		v := req.ManagerNote().String()
		note = &v
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO vacation_requests (
			id, employee_id, start_date, end_date, number_of_days, status,
			request_code, manager_note, submitted_at, deduction_outcome
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		req.ID(),
		req.EmployeeID(),
		pgconv.DateFromTime(req.Dates().Start()),
		pgconv.DateFromTime(req.Dates().End()),
		req.Days(),
		req.Status().String(),
		req.RequestCode(),
		pgconv.TextFromStringPtr(note),
		req.SubmittedAt(),
		req.DeductionOutcome().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create vacation request", err)
	}
	return nil
}

func (r *VacationRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*vacation.Request, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+vacationRequestColumns+`
		FROM vacation_requests
		WHERE id = $1`,
		id,
	)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vacation request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vacation request", err)
	}
	return req, nil
}

// UpdateDecision persists an approve/deny transition. The status predicate
// makes the write conditional on the request still being PENDING; a
// concurrent decision leaves zero rows and surfaces as KindConflict rather
// than double-applying.
func (r *VacationRequestRepository) UpdateDecision(ctx context.Context, req *vacation.Request) error {
	var note *string
	if !req.ManagerNote().IsEmpty() {
		v := req.ManagerNote().String()
		note = &v
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE vacation_requests
		SET status = $1, manager_note = $2, updated_at = now()
		WHERE id = $3 AND status = $4`,
		req.Status().String(),
		pgconv.TextFromStringPtr(note),
		req.ID(),
		vacation.StatusPending.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vacation request decision", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vacation request is no longer pending", nil, infra.KindConflict)
	}
	return nil
}

// MarkProcessed persists the terminal HR transition, conditional on the
// request still being APPROVED and unprocessed.
func (r *VacationRequestRepository) MarkProcessed(ctx context.Context, req *vacation.Request) error {
	var note *string
	if !req.HRNote().IsEmpty() {
		v := req.HRNote().String()
		note = &v
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE vacation_requests
		SET status = $1, hr_id = $2, hr_note = $3, processed_at = $4,
			deduction_outcome = $5, deduction_reason = NULL, updated_at = now()
		WHERE id = $6 AND status = $7 AND processed_at IS NULL`,
		req.Status().String(),
		req.HRID(),
		pgconv.TextFromStringPtr(note),
		pgconv.TimestamptzFromTimePtr(req.ProcessedAt()),
		req.DeductionOutcome().String(),
		req.ID(),
		vacation.StatusApproved.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark vacation request processed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vacation request is not approved or already processed", nil, infra.KindConflict)
	}
	return nil
}

// RecordDeductionFailure remembers the last failed external outcome without
// changing status, so a later process attempt can be replayed safely.
func (r *VacationRequestRepository) RecordDeductionFailure(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE vacation_requests
		SET deduction_outcome = $1, deduction_reason = $2, updated_at = now()
		WHERE id = $3 AND status = $4`,
		vacation.DeductionFailed.String(),
		reason,
		id,
		vacation.StatusApproved.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record deduction failure", err)
	}
	return nil
}

func (r *VacationRequestRepository) SumDaysByStatus(ctx context.Context, userID uuid.UUID, status vacation.Status) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(number_of_days), 0)
		FROM vacation_requests
		WHERE employee_id = $1 AND status = $2`,
		userID,
		status.String(),
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum vacation days", err)
	}
	return total, nil
}

func scanRequest(row pgx.Row) (*vacation.Request, error) {
	var (
		id, employeeID     uuid.UUID
		startDate, endDate pgtype.Date
		days               int32
		status             string
		requestCode        string
		managerNote        pgtype.Text
		hrNote             pgtype.Text
		hrID               pgtype.UUID
		submittedAt        pgtype.Timestamptz
		processedAt        pgtype.Timestamptz
		deductionOutcome   string
		deductionReason    pgtype.Text
	)

	if err := row.Scan(
		&id, &employeeID, &startDate, &endDate, &days, &status,
		&requestCode, &managerNote, &hrNote, &hrID, &submittedAt, &processedAt,
		&deductionOutcome, &deductionReason,
	); err != nil {
		return nil, err
	}

	dates, err := vacation.NewDateRange(pgconv.TimeFromDate(startDate), pgconv.TimeFromDate(endDate))
	if err != nil {
		return nil, err
	}

	var managerNoteVal, hrNoteVal, reasonVal string
	if managerNote.Valid {
		managerNoteVal = managerNote.String
	}
	if hrNote.Valid {
		hrNoteVal = hrNote.String
	}
	if deductionReason.Valid {
		reasonVal = deductionReason.String
	}

	return vacation.ReconstructRequest(
		id,
		employeeID,
		dates,
		int(days),
		vacation.Status(status),
		requestCode,
		vacation.NewNote(managerNoteVal),
		vacation.NewNote(hrNoteVal),
		pgconv.UUIDPtrFromPgtype(hrID),
		pgconv.TimeFromPgtype(submittedAt),
		pgconv.TimePtrFromPgtype(processedAt),
		vacation.DeductionOutcome(deductionOutcome),
		reasonVal,
	), nil
}
