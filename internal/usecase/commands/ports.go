package commands

import (
	"context"
	"time"

	"leaveflow/internal/domain/integration"
	"leaveflow/internal/domain/vacation"
	"leaveflow/internal/usecase/balance"
	"leaveflow/internal/usecase/queries"

	"github.com/google/uuid"
)

// Consumer-side ports. Implementations live under internal/infra.

type VacationRequestRepository interface {
	Create(ctx context.Context, req *vacation.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*vacation.Request, error)
	UpdateDecision(ctx context.Context, req *vacation.Request) error
	MarkProcessed(ctx context.Context, req *vacation.Request) error
	RecordDeductionFailure(ctx context.Context, id uuid.UUID, reason string) error
}

type HolidayDatesReader interface {
	FindDatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type HolidayWriter interface {
	Upsert(ctx context.Context, day time.Time, name string) error
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

// BalanceGateway is the external balance system seam. Both operations return
// result values, never errors; every failure mode is already classified.
type BalanceGateway interface {
	FetchBalance(ctx context.Context, userID uuid.UUID) balance.Result
	Deduct(ctx context.Context, requestID, userID uuid.UUID, days int) balance.DeductionResult
}

// HolidayImportClient fetches the published holiday calendar for one year.
// Malformed entries are skipped, not fatal; the skipped count is reported for
// the audit trail.
type HolidayImportClient interface {
	FetchYear(ctx context.Context, endpoint *integration.Endpoint, year int) (entries []ImportedHoliday, skipped int, err error)
}

type ImportedHoliday struct {
	Date time.Time
	Name string
}

type EndpointResolver interface {
	FindActive(ctx context.Context, t integration.Type) (*integration.Endpoint, error)
}

// EventPublisher is fire-and-forget: enqueueing never blocks and never fails
// the transition that emitted the event.
type EventPublisher interface {
	PublishPostCommit(eventType string, payload map[string]any)
	PublishImmediate(eventType string, payload map[string]any)
}

type AuditRecorder interface {
	RecordSubmission(ctx context.Context, employeeID, requestID uuid.UUID, days int)
	RecordSubmissionBlocked(ctx context.Context, employeeID uuid.UUID, reason string)
	RecordDecision(ctx context.Context, actorID, requestID uuid.UUID, approved bool, note string)
	RecordProcessingSuccess(ctx context.Context, hrID, requestID uuid.UUID)
	RecordProcessingFailure(ctx context.Context, hrID, requestID uuid.UUID, reason string)
	RecordHolidayImport(ctx context.Context, actorID uuid.UUID, year, imported, skipped int)
}
