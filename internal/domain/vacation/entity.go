package vacation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange      = errors.New("end date must be on or after start date")
	ErrZeroDays          = errors.New("request must cover at least one working day")
	ErrInvalidTransition = errors.New("transition not allowed for current status")
	ErrAlreadyProcessed  = errors.New("request is already processed")
)

// Request is the vacation request aggregate. Status only moves along
// PENDING -> {APPROVED, DENIED} and APPROVED -> PROCESSED; DENIED and
// PROCESSED are terminal. The working-day count is fixed at submission.
type Request struct {
	id               uuid.UUID
	employeeID       uuid.UUID
	dates            DateRange
	days             int
	status           Status
	requestCode      string
	managerNote      Note
	hrNote           Note
	hrID             *uuid.UUID
	submittedAt      time.Time
	processedAt      *time.Time
	deductionOutcome DeductionOutcome
	deductionReason  string
}

func NewRequest(employeeID uuid.UUID, dates DateRange, days int, submittedAt time.Time) (*Request, error) {
	if days <= 0 {
		return nil, ErrZeroDays
	}
	code, err := GenerateRequestCode(employeeID, dates.Start(), submittedAt)
	if err != nil {
		return nil, err
	}
	return &Request{
		id:               uuid.New(),
		employeeID:       employeeID,
		dates:            dates,
		days:             days,
		status:           StatusPending,
		requestCode:      code,
		submittedAt:      submittedAt,
		deductionOutcome: DeductionNone,
	}, nil
}

func ReconstructRequest(
	id, employeeID uuid.UUID,
	dates DateRange,
	days int,
	status Status,
	requestCode string,
	managerNote, hrNote Note,
	hrID *uuid.UUID,
	submittedAt time.Time,
	processedAt *time.Time,
	deductionOutcome DeductionOutcome,
	deductionReason string,
) *Request {
	return &Request{
		id:               id,
		employeeID:       employeeID,
		dates:            dates,
		days:             days,
		status:           status,
		requestCode:      requestCode,
		managerNote:      managerNote,
		hrNote:           hrNote,
		hrID:             hrID,
		submittedAt:      submittedAt,
		processedAt:      processedAt,
		deductionOutcome: deductionOutcome,
		deductionReason:  deductionReason,
	}
}

func (r *Request) Approve(note Note) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusApproved
	if !note.IsEmpty() {
		r.managerNote = note
	}
	return nil
}

func (r *Request) Deny(note Note) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusDenied
	if !note.IsEmpty() {
		r.managerNote = note
	}
	return nil
}

func (r *Request) MarkProcessed(hrID uuid.UUID, note Note, processedAt time.Time) error {
	if r.status != StatusApproved {
		return ErrInvalidTransition
	}
	if r.processedAt != nil {
		return ErrAlreadyProcessed
	}
	r.status = StatusProcessed
	r.hrID = &hrID
	r.processedAt = &processedAt
	r.deductionOutcome = DeductionSuccess
	if !note.IsEmpty() {
		r.hrNote = note
	}
	return nil
}

// RecordDeductionFailure keeps the request at APPROVED while remembering the
// last failed external outcome, so HR can safely re-attempt processing.
func (r *Request) RecordDeductionFailure(reason string) error {
	if r.status != StatusApproved {
		return ErrInvalidTransition
	}
	r.deductionOutcome = DeductionFailed
	r.deductionReason = reason
	return nil
}

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

func (r *Request) ID() uuid.UUID                      { return r.id }
func (r *Request) EmployeeID() uuid.UUID              { return r.employeeID }
func (r *Request) Dates() DateRange                   { return r.dates }
func (r *Request) Days() int                          { return r.days }
func (r *Request) Status() Status                     { return r.status }
func (r *Request) RequestCode() string                { return r.requestCode }
func (r *Request) ManagerNote() Note                  { return r.managerNote }
func (r *Request) HRNote() Note                       { return r.hrNote }
func (r *Request) HRID() *uuid.UUID                   { return r.hrID }
func (r *Request) SubmittedAt() time.Time             { return r.submittedAt }
func (r *Request) ProcessedAt() *time.Time            { return r.processedAt }
func (r *Request) DeductionOutcome() DeductionOutcome { return r.deductionOutcome }
func (r *Request) DeductionReason() string            { return r.deductionReason }
