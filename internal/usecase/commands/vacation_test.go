//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leaveflow/internal/domain/vacation"
	"leaveflow/internal/infra"
	"leaveflow/internal/pkg/clock"
	"leaveflow/internal/usecase/balance"
	"leaveflow/internal/usecase/commands"
	"leaveflow/tests/common/builder"
	balancemock "leaveflow/tests/mock/balance"
	commandsmock "leaveflow/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VacationCommandsTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRequests   *commandsmock.MockVacationRequestRepository
	mockHolidays   *commandsmock.MockHolidayDatesReader
	mockUsers      *commandsmock.MockUserReader
	mockReconciler *balancemock.MockReconciler
	mockGateway    *commandsmock.MockBalanceGateway
	mockEvents     *commandsmock.MockEventPublisher
	mockAudit      *commandsmock.MockAuditRecorder
	clock          *clock.MockClock
	commands       commands.VacationCommands

	now time.Time
}

func TestVacationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(VacationCommandsTestSuite))
}

func (s *VacationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRequests = commandsmock.NewMockVacationRequestRepository(s.mockCtrl)
	s.mockHolidays = commandsmock.NewMockHolidayDatesReader(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserReader(s.mockCtrl)
	s.mockReconciler = balancemock.NewMockReconciler(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockBalanceGateway(s.mockCtrl)
	s.mockEvents = commandsmock.NewMockEventPublisher(s.mockCtrl)
	s.mockAudit = commandsmock.NewMockAuditRecorder(s.mockCtrl)

	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewVacationCommands(
		s.mockRequests,
		s.mockHolidays,
		s.mockUsers,
		s.mockReconciler,
		s.mockGateway,
		s.mockEvents,
		s.mockAudit,
		s.clock,
		logger,
	)
}

func (s *VacationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func computation(official, tentative int64) *balance.Computation {
	o := decimal.NewFromInt(official)
	tv := decimal.NewFromInt(tentative)
	return &balance.Computation{Official: &o, Tentative: &tv}
}

func unavailableComputation(message string) *balance.Computation {
	return &balance.Computation{Unavailable: true, Message: message}
}

func notFoundErr() error {
	return infra.WrapRepoErr("record not found", nil, infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("no rows updated", nil, infra.KindConflict)
}

func (s *VacationCommandsTestSuite) daysFromNow(n int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func (s *VacationCommandsTestSuite) TestSubmit() {
	ctx := context.Background()
	employeeID := uuid.New()
	employee := builder.NewUserBuilder().WithID(employeeID).BuildReadModel()
	input := commands.SubmitInput{
		EmployeeID: employeeID,
		SessionID:  "session-1",
		StartDate:  s.daysFromNow(20),
		EndDate:    s.daysFromNow(21),
	}

	s.Run("success: creates a pending request and reports the balance", func() {
		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(employee, nil).Times(1)
		s.mockHolidays.EXPECT().FindDatesInRange(ctx, input.StartDate, input.EndDate).Return(nil, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForRequestingUser(ctx, employeeID, "session-1").Return(computation(5, 5), nil).Times(1)
		s.mockRequests.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishPostCommit(commands.EventVacationRequested, gomock.Any()).Times(1)
		s.mockAudit.EXPECT().RecordSubmission(ctx, employeeID, gomock.Any(), 2).Times(1)

		result, err := s.commands.Submit(ctx, input)
		require.NoError(s.T(), err)
		require.True(s.T(), result.Success)
		s.Equal(2, result.Request.NumberOfDays)
		s.Equal(vacation.StatusPending.String(), result.Request.Status)
		s.NotEmpty(result.Request.RequestCode)
		s.True(result.Balance.Official.Equal(decimal.NewFromInt(5)))
	})

	s.Run("failure: insufficient notice rejects before any balance work", func() {
		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(employee, nil).Times(1)

		shortNotice := input
		shortNotice.StartDate = s.daysFromNow(5)
		shortNotice.EndDate = s.daysFromNow(6)

		result, err := s.commands.Submit(ctx, shortNotice)
		require.NoError(s.T(), err)
		s.False(result.Success)
		s.Equal(commands.CodeInsufficientNotice, result.ErrorCode)
	})

	s.Run("success: start exactly at the notice boundary is allowed", func() {
		boundary := input
		boundary.StartDate = s.daysFromNow(14)
		boundary.EndDate = s.daysFromNow(14)

		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(employee, nil).Times(1)
		s.mockHolidays.EXPECT().FindDatesInRange(ctx, boundary.StartDate, boundary.EndDate).Return(nil, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForRequestingUser(ctx, employeeID, "session-1").Return(computation(5, 5), nil).Times(1)
		s.mockRequests.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishPostCommit(commands.EventVacationRequested, gomock.Any()).Times(1)
		s.mockAudit.EXPECT().RecordSubmission(ctx, employeeID, gomock.Any(), 1).Times(1)

		result, err := s.commands.Submit(ctx, boundary)
		require.NoError(s.T(), err)
		s.True(result.Success)
	})

	s.Run("failure: end before start", func() {
		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(employee, nil).Times(1)

		reversed := input
		reversed.StartDate = s.daysFromNow(21)
		reversed.EndDate = s.daysFromNow(20)

		result, err := s.commands.Submit(ctx, reversed)
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInvalidRange, result.ErrorCode)
	})

	s.Run("failure: range fully covered by holidays has no working days", func() {
		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(employee, nil).Times(1)
		s.mockHolidays.EXPECT().FindDatesInRange(ctx, input.StartDate, input.EndDate).
			Return([]time.Time{input.StartDate, input.EndDate}, nil).Times(1)

		result, err := s.commands.Submit(ctx, input)
		require.NoError(s.T(), err)
		s.Equal(commands.CodeEmptyRange, result.ErrorCode)
	})

	s.Run("failure: balance unavailable aborts without creating anything", func() {
		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(employee, nil).Times(1)
		s.mockHolidays.EXPECT().FindDatesInRange(ctx, input.StartDate, input.EndDate).Return(nil, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForRequestingUser(ctx, employeeID, "session-1").
			Return(unavailableComputation("External balance system unavailable"), nil).Times(1)
		s.mockEvents.EXPECT().PublishImmediate(commands.EventBalanceSystemUnavailable, gomock.Any()).Times(1)
		s.mockAudit.EXPECT().RecordSubmissionBlocked(ctx, employeeID, "External balance system unavailable").Times(1)

		result, err := s.commands.Submit(ctx, input)
		require.NoError(s.T(), err)
		s.False(result.Success)
		s.True(result.ExternalUnavailable)
		s.Equal(commands.CodeExternalUnavailable, result.ErrorCode)
	})

	s.Run("failure: requested days exceed the official balance", func() {
		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(employee, nil).Times(1)
		s.mockHolidays.EXPECT().FindDatesInRange(ctx, input.StartDate, input.EndDate).Return(nil, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForRequestingUser(ctx, employeeID, "session-1").Return(computation(1, 0), nil).Times(1)
		s.mockAudit.EXPECT().RecordSubmissionBlocked(ctx, employeeID, "insufficient balance").Times(1)

		result, err := s.commands.Submit(ctx, input)
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInsufficientBalance, result.ErrorCode)
	})

	s.Run("failure: unknown employee", func() {
		s.mockUsers.EXPECT().FindByID(ctx, employeeID).Return(nil, notFoundErr()).Times(1)

		result, err := s.commands.Submit(ctx, input)
		require.NoError(s.T(), err)
		s.True(result.NotFound)
		s.Equal(commands.CodeUserNotFound, result.ErrorCode)
	})
}

func (s *VacationCommandsTestSuite) TestApprove() {
	ctx := context.Background()
	requestID := uuid.New()

	pendingRequest := func() *vacation.Request {
		req, err := builder.NewVacationRequestBuilder().BuildDomain()
		require.NoError(s.T(), err)
		return req
	}

	s.Run("success: approves after re-checking the owner's balance", func() {
		req := pendingRequest()
		input := commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID, Note: "enjoy"}

		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForObserverView(ctx, req.EmployeeID()).Return(computation(10, 8), nil).Times(1)
		s.mockRequests.EXPECT().UpdateDecision(ctx, req).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishPostCommit(commands.EventVacationApproved, gomock.Any()).Times(1)
		s.mockAudit.EXPECT().RecordDecision(ctx, input.ActorID, req.ID(), true, "enjoy").Times(1)

		result, err := s.commands.Approve(ctx, input)
		require.NoError(s.T(), err)
		require.True(s.T(), result.Success)
		s.Equal(vacation.StatusApproved.String(), result.Request.Status)
		s.Equal("enjoy", result.Request.ManagerNote)
	})

	s.Run("failure: request is no longer pending", func() {
		req, err := builder.NewVacationRequestBuilder().AsDenied().BuildDomain()
		require.NoError(s.T(), err)

		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)

		result, err := s.commands.Approve(ctx, commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID})
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInvalidState, result.ErrorCode)
	})

	s.Run("failure: balance unavailable blocks the approval", func() {
		req := pendingRequest()

		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForObserverView(ctx, req.EmployeeID()).
			Return(unavailableComputation("down"), nil).Times(1)
		s.mockEvents.EXPECT().PublishImmediate(commands.EventBalanceSystemUnavailable, gomock.Any()).Times(1)

		result, err := s.commands.Approve(ctx, commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID})
		require.NoError(s.T(), err)
		s.True(result.ExternalUnavailable)
		s.Equal(vacation.StatusPending, req.Status())
	})

	s.Run("failure: insufficient official balance at approval time", func() {
		req := pendingRequest()

		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForObserverView(ctx, req.EmployeeID()).Return(computation(1, 0), nil).Times(1)

		result, err := s.commands.Approve(ctx, commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID})
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInsufficientBalance, result.ErrorCode)
		s.Equal(vacation.StatusPending, req.Status())
	})

	s.Run("failure: concurrent decision loses the conditional update", func() {
		req := pendingRequest()

		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockReconciler.EXPECT().ComputeForObserverView(ctx, req.EmployeeID()).Return(computation(10, 8), nil).Times(1)
		s.mockRequests.EXPECT().UpdateDecision(ctx, req).Return(conflictErr()).Times(1)

		result, err := s.commands.Approve(ctx, commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID})
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInvalidState, result.ErrorCode)
		s.Contains(result.Message, "concurrently")
	})

	s.Run("failure: unknown request", func() {
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(nil, notFoundErr()).Times(1)

		result, err := s.commands.Approve(ctx, commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID})
		require.NoError(s.T(), err)
		s.True(result.NotFound)
		s.Equal(commands.CodeNotFound, result.ErrorCode)
	})
}

func (s *VacationCommandsTestSuite) TestDeny() {
	ctx := context.Background()
	requestID := uuid.New()

	s.Run("success: denies without consulting the external system", func() {
		req, err := builder.NewVacationRequestBuilder().BuildDomain()
		require.NoError(s.T(), err)
		input := commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID, Note: "short staffed"}

		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockRequests.EXPECT().UpdateDecision(ctx, req).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishPostCommit(commands.EventVacationDenied, gomock.Any()).Times(1)
		s.mockAudit.EXPECT().RecordDecision(ctx, input.ActorID, req.ID(), false, "short staffed").Times(1)

		result, err := s.commands.Deny(ctx, input)
		require.NoError(s.T(), err)
		require.True(s.T(), result.Success)
		s.Equal(vacation.StatusDenied.String(), result.Request.Status)
		s.Nil(result.Balance)
	})

	s.Run("failure: already decided", func() {
		req, err := builder.NewVacationRequestBuilder().AsApproved().BuildDomain()
		require.NoError(s.T(), err)

		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)

		result, err := s.commands.Deny(ctx, commands.DecisionInput{ActorID: uuid.New(), RequestID: requestID})
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInvalidState, result.ErrorCode)
	})
}

func (s *VacationCommandsTestSuite) TestProcess() {
	ctx := context.Background()
	requestID := uuid.New()
	hrID := uuid.New()
	hrUser := builder.NewUserBuilder().WithID(hrID).WithRole("hr").BuildReadModel()
	input := commands.DecisionInput{ActorID: hrID, RequestID: requestID}

	approvedRequest := func() *vacation.Request {
		req, err := builder.NewVacationRequestBuilder().AsApproved().BuildDomain()
		require.NoError(s.T(), err)
		return req
	}

	s.Run("success: deducts externally and marks the request processed", func() {
		req := approvedRequest()

		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(hrUser, nil).Times(1)
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockGateway.EXPECT().Deduct(ctx, req.ID(), req.EmployeeID(), req.Days()).
			Return(balance.DeductionSuccess()).Times(1)
		s.mockRequests.EXPECT().MarkProcessed(ctx, req).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishPostCommit(commands.EventVacationProcessed, gomock.Any()).Times(1)
		s.mockAudit.EXPECT().RecordProcessingSuccess(ctx, hrID, req.ID()).Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		require.True(s.T(), result.Success)
		s.Equal(vacation.StatusProcessed.String(), result.Request.Status)
		require.NotNil(s.T(), result.Request.ProcessedAt)
		s.Equal(s.now, *result.Request.ProcessedAt)
		s.Equal(vacation.DeductionSuccess.String(), result.Request.DeductionOutcome)
	})

	s.Run("failure: unknown HR actor", func() {
		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(nil, notFoundErr()).Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		s.True(result.NotFound)
		s.Equal(commands.CodeHRNotFound, result.ErrorCode)
	})

	s.Run("failure: unknown request", func() {
		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(hrUser, nil).Times(1)
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(nil, notFoundErr()).Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		s.True(result.NotFound)
		s.Equal(commands.CodeNotFound, result.ErrorCode)
	})

	s.Run("failure: pending request cannot be processed", func() {
		req, err := builder.NewVacationRequestBuilder().BuildDomain()
		require.NoError(s.T(), err)

		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(hrUser, nil).Times(1)
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInvalidState, result.ErrorCode)
	})

	s.Run("failure: processed request is never deducted twice", func() {
		req, err := builder.NewVacationRequestBuilder().AsProcessed().BuildDomain()
		require.NoError(s.T(), err)

		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(hrUser, nil).Times(1)
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInvalidState, result.ErrorCode)
	})

	s.Run("failure: unavailable deduction leaves the request approved", func() {
		req := approvedRequest()
		outcome := balance.DeductionUnavailable("External balance system unavailable: unexpected status 502")

		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(hrUser, nil).Times(1)
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockGateway.EXPECT().Deduct(ctx, req.ID(), req.EmployeeID(), req.Days()).Return(outcome).Times(1)
		s.mockRequests.EXPECT().RecordDeductionFailure(ctx, req.ID(), outcome.Message).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishImmediate(commands.EventBalanceSystemUnavailable, gomock.Any()).Times(1)
		s.mockAudit.EXPECT().RecordProcessingFailure(ctx, hrID, req.ID(), outcome.Message).Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		s.False(result.Success)
		s.True(result.ExternalUnavailable)
		s.Equal(vacation.StatusApproved, req.Status())
	})

	s.Run("failure: explicit rejection is final", func() {
		req := approvedRequest()
		outcome := balance.DeductionFailure("insufficient balance")

		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(hrUser, nil).Times(1)
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockGateway.EXPECT().Deduct(ctx, req.ID(), req.EmployeeID(), req.Days()).Return(outcome).Times(1)
		s.mockRequests.EXPECT().RecordDeductionFailure(ctx, req.ID(), "insufficient balance").Return(nil).Times(1)
		s.mockAudit.EXPECT().RecordProcessingFailure(ctx, hrID, req.ID(), "insufficient balance").Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		s.False(result.ExternalUnavailable)
		s.Equal(commands.CodeDeductionFailed, result.ErrorCode)
		s.Equal(vacation.StatusApproved, req.Status())
	})

	s.Run("failure: concurrent processing loses the conditional update", func() {
		req := approvedRequest()

		s.mockUsers.EXPECT().FindByID(ctx, hrID).Return(hrUser, nil).Times(1)
		s.mockRequests.EXPECT().FindByID(ctx, requestID).Return(req, nil).Times(1)
		s.mockGateway.EXPECT().Deduct(ctx, req.ID(), req.EmployeeID(), req.Days()).
			Return(balance.DeductionSuccess()).Times(1)
		s.mockRequests.EXPECT().MarkProcessed(ctx, req).Return(conflictErr()).Times(1)

		result, err := s.commands.Process(ctx, input)
		require.NoError(s.T(), err)
		s.Equal(commands.CodeInvalidState, result.ErrorCode)
		s.Contains(result.Message, "concurrently")
	})
}
