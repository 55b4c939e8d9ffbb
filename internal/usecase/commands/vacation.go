package commands

import (
	"context"
	"log/slog"
	"time"

	"leaveflow/internal/domain/vacation"
	"leaveflow/internal/infra"
	"leaveflow/internal/pkg/clock"
	"leaveflow/internal/usecase/balance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// minNoticeDays is the minimum number of days between submission and the
// requested start date.
const minNoticeDays = 14

// Lifecycle event types.
const (
	EventVacationRequested        = "VacationRequested"
	EventVacationApproved         = "VacationApproved"
	EventVacationDenied           = "VacationDenied"
	EventVacationProcessed        = "VacationProcessed"
	EventBalanceSystemUnavailable = "ExternalBalanceSystemUnavailable"
)

// Machine-readable error codes on lifecycle results.
const (
	CodeInvalidRange        = "invalid_range"
	CodeInsufficientNotice  = "insufficient_notice"
	CodeEmptyRange          = "empty_range"
	CodeExternalUnavailable = "external_unavailable"
	CodeInsufficientBalance = "insufficient_balance"
	CodeUserNotFound        = "user_not_found"
	CodeHRNotFound          = "hr_not_found"
	CodeNotFound            = "not_found"
	CodeInvalidState        = "invalid_state"
	CodeDeductionFailed     = "deduction_failed"
)

// RequestView is the command-side snapshot of a request after a transition,
// handed back so the transport layer never re-reads business state.
type RequestView struct {
	ID               uuid.UUID  `json:"id"`
	EmployeeID       uuid.UUID  `json:"employee_id"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	NumberOfDays     int        `json:"number_of_days"`
	Status           string     `json:"status"`
	RequestCode      string     `json:"request_code"`
	ManagerNote      string     `json:"manager_note,omitempty"`
	HRNote           string     `json:"hr_note,omitempty"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	DeductionOutcome string     `json:"deduction_outcome"`
}

// LifecycleResult is the uniform outcome shape of every lifecycle operation:
// exactly one of Success / ExternalUnavailable / NotFound / plain failure
// (ErrorCode set) holds.
type LifecycleResult struct {
	Success             bool
	ExternalUnavailable bool
	NotFound            bool
	ErrorCode           string
	Message             string
	Request             *RequestView
	Balance             *balance.Computation
}

func successResult(req *vacation.Request, comp *balance.Computation) *LifecycleResult {
	return &LifecycleResult{Success: true, Request: newRequestView(req), Balance: comp}
}

func failureResult(code, message string) *LifecycleResult {
	return &LifecycleResult{ErrorCode: code, Message: message}
}

func notFoundResult(code, message string) *LifecycleResult {
	return &LifecycleResult{NotFound: true, ErrorCode: code, Message: message}
}

func unavailableResult(message string) *LifecycleResult {
	return &LifecycleResult{ExternalUnavailable: true, ErrorCode: CodeExternalUnavailable, Message: message}
}

func newRequestView(req *vacation.Request) *RequestView {
	return &RequestView{
		ID:               req.ID(),
		EmployeeID:       req.EmployeeID(),
		StartDate:        req.Dates().Start(),
		EndDate:          req.Dates().End(),
		NumberOfDays:     req.Days(),
		Status:           req.Status().String(),
		RequestCode:      req.RequestCode(),
		ManagerNote:      req.ManagerNote().String(),
		HRNote:           req.HRNote().String(),
		SubmittedAt:      req.SubmittedAt(),
		ProcessedAt:      req.ProcessedAt(),
		DeductionOutcome: req.DeductionOutcome().String(),
	}
}

type SubmitInput struct {
	EmployeeID uuid.UUID
	SessionID  string
	StartDate  time.Time
	EndDate    time.Time
}

type DecisionInput struct {
	ActorID   uuid.UUID
	RequestID uuid.UUID
	Note      string
}

type VacationCommands interface {
	Submit(ctx context.Context, input SubmitInput) (*LifecycleResult, error)
	Approve(ctx context.Context, input DecisionInput) (*LifecycleResult, error)
	Deny(ctx context.Context, input DecisionInput) (*LifecycleResult, error)
	Process(ctx context.Context, input DecisionInput) (*LifecycleResult, error)
}

type vacationCommandsImpl struct {
	requests   VacationRequestRepository
	holidays   HolidayDatesReader
	users      UserReader
	reconciler balance.Reconciler
	gateway    BalanceGateway
	events     EventPublisher
	audit      AuditRecorder
	clock      clock.Clock
	logger     *slog.Logger
}

func NewVacationCommands(
	requests VacationRequestRepository,
	holidays HolidayDatesReader,
	users UserReader,
	reconciler balance.Reconciler,
	gateway BalanceGateway,
	events EventPublisher,
	audit AuditRecorder,
	clk clock.Clock,
	logger *slog.Logger,
) VacationCommands {
	return &vacationCommandsImpl{
		requests:   requests,
		holidays:   holidays,
		users:      users,
		reconciler: reconciler,
		gateway:    gateway,
		events:     events,
		audit:      audit,
		clock:      clk,
		logger:     logger,
	}
}

// Submit creates a new PENDING request. If the external balance cannot be
// observed the submission aborts entirely; no request row is created on any
// failure path.
func (c *vacationCommandsImpl) Submit(ctx context.Context, input SubmitInput) (*LifecycleResult, error) {
	if _, err := c.users.FindByID(ctx, input.EmployeeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return notFoundResult(CodeUserNotFound, "employee not found"), nil
		}
		return nil, err
	}

	dates, err := vacation.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return failureResult(CodeInvalidRange, "end date must be on or after start date"), nil
	}

	now := c.clock.Now()
	earliestStart := startOfDay(now).AddDate(0, 0, minNoticeDays)
	if dates.Start().Before(earliestStart) {
		return failureResult(CodeInsufficientNotice, "start date must be at least 14 days from now"), nil
	}

	holidays, err := c.holidays.FindDatesInRange(ctx, dates.Start(), dates.End())
	if err != nil {
		return nil, err
	}
	days, err := vacation.CountDays(dates.Start(), dates.End(), holidays)
	if err != nil {
		return failureResult(CodeInvalidRange, "end date must be on or after start date"), nil
	}
	if days == 0 {
		return failureResult(CodeEmptyRange, "requested range contains no working days"), nil
	}

	comp, err := c.reconciler.ComputeForRequestingUser(ctx, input.EmployeeID, input.SessionID)
	if err != nil {
		return nil, err
	}
	if comp.Unavailable {
		c.events.PublishImmediate(EventBalanceSystemUnavailable, map[string]any{
			"user_id": input.EmployeeID.String(),
			"reason":  comp.Message,
		})
		c.audit.RecordSubmissionBlocked(ctx, input.EmployeeID, comp.Message)
		return unavailableResult(comp.Message), nil
	}
	// The gate is the official balance; tentative only informs display.
	if decimal.NewFromInt(int64(days)).GreaterThan(*comp.Official) {
		c.audit.RecordSubmissionBlocked(ctx, input.EmployeeID, "insufficient balance")
		return failureResult(CodeInsufficientBalance, "requested days exceed available balance"), nil
	}

	req, err := vacation.NewRequest(input.EmployeeID, dates, days, now)
	if err != nil {
		return nil, err
	}
	if err := c.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	c.events.PublishPostCommit(EventVacationRequested, map[string]any{
		"request_id":   req.ID().String(),
		"employee_id":  req.EmployeeID().String(),
		"request_code": req.RequestCode(),
		"days":         req.Days(),
	})
	c.audit.RecordSubmission(ctx, input.EmployeeID, req.ID(), req.Days())

	return successResult(req, comp), nil
}

// Approve re-checks the owner's balance via the observer path before the
// transition; the balance may have moved since submission.
func (c *vacationCommandsImpl) Approve(ctx context.Context, input DecisionInput) (*LifecycleResult, error) {
	req, err := c.requests.FindByID(ctx, input.RequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return notFoundResult(CodeNotFound, "vacation request not found"), nil
		}
		return nil, err
	}
	if !req.IsPending() {
		return failureResult(CodeInvalidState, "request is not pending"), nil
	}

	comp, err := c.reconciler.ComputeForObserverView(ctx, req.EmployeeID())
	if err != nil {
		return nil, err
	}
	if comp.Unavailable {
		c.events.PublishImmediate(EventBalanceSystemUnavailable, map[string]any{
			"user_id": req.EmployeeID().String(),
			"reason":  comp.Message,
		})
		return unavailableResult(comp.Message), nil
	}
	if decimal.NewFromInt(int64(req.Days())).GreaterThan(*comp.Official) {
		return failureResult(CodeInsufficientBalance, "requested days exceed available balance"), nil
	}

	if err := req.Approve(vacation.NewNote(input.Note)); err != nil {
		return failureResult(CodeInvalidState, "request is not pending"), nil
	}
	if err := c.requests.UpdateDecision(ctx, req); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return failureResult(CodeInvalidState, "request was decided concurrently"), nil
		}
		return nil, err
	}

	c.events.PublishPostCommit(EventVacationApproved, map[string]any{
		"request_id":  req.ID().String(),
		"employee_id": req.EmployeeID().String(),
	})
	c.audit.RecordDecision(ctx, input.ActorID, req.ID(), true, input.Note)

	return successResult(req, comp), nil
}

// Deny is unconditional for a PENDING request; no external call is made.
func (c *vacationCommandsImpl) Deny(ctx context.Context, input DecisionInput) (*LifecycleResult, error) {
	req, err := c.requests.FindByID(ctx, input.RequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return notFoundResult(CodeNotFound, "vacation request not found"), nil
		}
		return nil, err
	}

	if err := req.Deny(vacation.NewNote(input.Note)); err != nil {
		return failureResult(CodeInvalidState, "request is not pending"), nil
	}
	if err := c.requests.UpdateDecision(ctx, req); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return failureResult(CodeInvalidState, "request was decided concurrently"), nil
		}
		return nil, err
	}

	c.events.PublishPostCommit(EventVacationDenied, map[string]any{
		"request_id":  req.ID().String(),
		"employee_id": req.EmployeeID().String(),
	})
	c.audit.RecordDecision(ctx, input.ActorID, req.ID(), false, input.Note)

	return successResult(req, nil), nil
}

// Process runs the external deduction and, on success only, moves the request
// to PROCESSED. Unavailability leaves the request APPROVED; the request id is
// the idempotency key, so the caller can safely re-attempt the whole
// operation later even though the first attempt's network effect is unknown.
func (c *vacationCommandsImpl) Process(ctx context.Context, input DecisionInput) (*LifecycleResult, error) {
	if _, err := c.users.FindByID(ctx, input.ActorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return notFoundResult(CodeHRNotFound, "acting HR user not found"), nil
		}
		return nil, err
	}

	req, err := c.requests.FindByID(ctx, input.RequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return notFoundResult(CodeNotFound, "vacation request not found"), nil
		}
		return nil, err
	}
	if req.Status() != vacation.StatusApproved || req.ProcessedAt() != nil {
		return failureResult(CodeInvalidState, "request is not approved or already processed"), nil
	}

	outcome := c.gateway.Deduct(ctx, req.ID(), req.EmployeeID(), req.Days())

	switch {
	case outcome.Unavailable:
		if err := c.requests.RecordDeductionFailure(ctx, req.ID(), outcome.Message); err != nil {
			c.logger.Error("failed to record deduction failure", "request_id", req.ID().String(), "error", err.Error())
		}
		c.events.PublishImmediate(EventBalanceSystemUnavailable, map[string]any{
			"request_id": req.ID().String(),
			"reason":     outcome.Message,
		})
		c.audit.RecordProcessingFailure(ctx, input.ActorID, req.ID(), outcome.Message)
		return unavailableResult(outcome.Message), nil

	case !outcome.Success:
		if err := c.requests.RecordDeductionFailure(ctx, req.ID(), outcome.Message); err != nil {
			c.logger.Error("failed to record deduction failure", "request_id", req.ID().String(), "error", err.Error())
		}
		c.audit.RecordProcessingFailure(ctx, input.ActorID, req.ID(), outcome.Message)
		return failureResult(CodeDeductionFailed, outcome.Message), nil
	}

	if err := req.MarkProcessed(input.ActorID, vacation.NewNote(input.Note), c.clock.Now()); err != nil {
		return failureResult(CodeInvalidState, "request is not approved or already processed"), nil
	}
	if err := c.requests.MarkProcessed(ctx, req); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return failureResult(CodeInvalidState, "request was processed concurrently"), nil
		}
		return nil, err
	}

	c.events.PublishPostCommit(EventVacationProcessed, map[string]any{
		"request_id":  req.ID().String(),
		"employee_id": req.EmployeeID().String(),
		"days":        req.Days(),
	})
	c.audit.RecordProcessingSuccess(ctx, input.ActorID, req.ID())

	return successResult(req, nil), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
