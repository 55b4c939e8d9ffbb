//go:build unit || e2e

package builder

import (
	"time"

	"leaveflow/internal/domain/vacation"
	"leaveflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type VacationRequestBuilder struct {
	ID               uuid.UUID
	EmployeeID       uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	Days             int
	Status           vacation.Status
	RequestCode      string
	ManagerNote      string
	HRNote           string
	HRID             *uuid.UUID
	SubmittedAt      time.Time
	ProcessedAt      *time.Time
	DeductionOutcome vacation.DeductionOutcome
}

func NewVacationRequestBuilder() *VacationRequestBuilder {
	submittedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &VacationRequestBuilder{
		ID:               uuid.New(),
		EmployeeID:       uuid.New(),
		StartDate:        time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC),
		Days:             2,
		Status:           vacation.StatusPending,
		RequestCode:      "VR-test-2026-03-20-1",
		SubmittedAt:      submittedAt,
		DeductionOutcome: vacation.DeductionNone,
	}
}

func (b *VacationRequestBuilder) With(mutate func(*VacationRequestBuilder)) *VacationRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VacationRequestBuilder) BuildDomain() (*vacation.Request, error) {
	dates, err := vacation.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}

	if b.Status == vacation.StatusPending {
		return vacation.NewRequest(b.EmployeeID, dates, b.Days, b.SubmittedAt)
	}

	return vacation.ReconstructRequest(
		b.ID, b.EmployeeID,
		dates,
		b.Days,
		b.Status,
		b.RequestCode,
		vacation.NewNote(b.ManagerNote), vacation.NewNote(b.HRNote),
		b.HRID,
		b.SubmittedAt,
		b.ProcessedAt,
		b.DeductionOutcome,
		"",
	), nil
}

func (b *VacationRequestBuilder) BuildReadModel() queries.VacationRequestView {
	return queries.VacationRequestView{
		ID:               b.ID,
		EmployeeID:       b.EmployeeID,
		EmployeeName:     "Test Employee",
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		NumberOfDays:     int32(b.Days),
		Status:           b.Status.String(),
		RequestCode:      b.RequestCode,
		SubmittedAt:      b.SubmittedAt,
		ProcessedAt:      b.ProcessedAt,
		DeductionOutcome: b.DeductionOutcome.String(),
	}
}

// Fluent builder methods
func (b *VacationRequestBuilder) WithEmployeeID(id uuid.UUID) *VacationRequestBuilder {
	b.EmployeeID = id
	return b
}

func (b *VacationRequestBuilder) WithDates(start, end time.Time) *VacationRequestBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *VacationRequestBuilder) WithDays(days int) *VacationRequestBuilder {
	b.Days = days
	return b
}

func (b *VacationRequestBuilder) AsApproved() *VacationRequestBuilder {
	b.Status = vacation.StatusApproved
	return b
}

func (b *VacationRequestBuilder) AsDenied() *VacationRequestBuilder {
	b.Status = vacation.StatusDenied
	return b
}

func (b *VacationRequestBuilder) AsProcessed() *VacationRequestBuilder {
	processedAt := b.SubmittedAt.Add(72 * time.Hour)
	hrID := uuid.New()
	b.Status = vacation.StatusProcessed
	b.ProcessedAt = &processedAt
	b.HRID = &hrID
	b.DeductionOutcome = vacation.DeductionSuccess
	return b
}
