//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"leaveflow/internal/handler/api"
	reqdto "leaveflow/internal/handler/dto/request"
	resdto "leaveflow/internal/handler/dto/response"
	"leaveflow/internal/usecase/balance"
	"leaveflow/internal/usecase/commands"
	"leaveflow/internal/usecase/queries"
	"leaveflow/tests/common/httptest"
	commandsmock "leaveflow/tests/mock/commands"
	queriesmock "leaveflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VacationHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockVacationCommands
	mockDashboard *queriesmock.MockDashboardQueries
	handler       *api.VacationHandler

	userID    uuid.UUID
	sessionID string
}

func TestVacationHandlerSuite(t *testing.T) {
	suite.Run(t, new(VacationHandlerTestSuite))
}

func (s *VacationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVacationCommands(s.mockCtrl)
	s.mockDashboard = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.handler = api.NewVacationHandler(s.mockCommands, s.mockDashboard)

	s.userID = uuid.New()
	s.sessionID = "session-1"

	// Mock the auth middleware: any bearer token binds the test identity.
	authStub := func(handle gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
				c.Set("session_id", s.sessionID)
			}
			handle(c)
		}
	}
	s.router.POST("/api/vacations", authStub(s.handler.SubmitVacation))
	s.router.GET("/api/dashboard", authStub(s.handler.GetDashboard))
}

func (s *VacationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *VacationHandlerTestSuite) TestSubmitVacation() {
	url := "/api/vacations"
	reqBody := reqdto.SubmitVacationRequest{StartDate: "2026-03-20", EndDate: "2026-03-21"}

	official := decimal.NewFromInt(5)
	tentative := decimal.NewFromInt(3)
	successResult := &commands.LifecycleResult{
		Success: true,
		Request: &commands.RequestView{
			ID:               uuid.New(),
			EmployeeID:       s.userID,
			StartDate:        time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC),
			NumberOfDays:     2,
			Status:           "PENDING",
			RequestCode:      "VR-test-2026-03-20-1",
			SubmittedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			DeductionOutcome: "NONE",
		},
		Balance: &balance.Computation{Official: &official, Tentative: &tentative},
	}

	s.Run("success: returns 201 Created with the new request and balance", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), commands.SubmitInput{
			EmployeeID: s.userID,
			SessionID:  s.sessionID,
			StartDate:  time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC),
		}).Return(successResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.LifecycleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(2, response.Request.NumberOfDays)
		s.Equal("PENDING", response.Request.Status)
		s.True(response.Balance.Official.Equal(official))
	})

	s.Run("error: 503 when the external balance system is unavailable", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(&commands.LifecycleResult{
				ExternalUnavailable: true,
				ErrorCode:           commands.CodeExternalUnavailable,
				Message:             "External balance system unavailable",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "External balance system unavailable")
	})

	s.Run("error: 404 when the employee is unknown", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(&commands.LifecycleResult{
				NotFound:  true,
				ErrorCode: commands.CodeUserNotFound,
				Message:   "employee not found",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "employee not found")
	})

	s.Run("error: 400 for business rule failures", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(&commands.LifecycleResult{
				ErrorCode: commands.CodeInsufficientNotice,
				Message:   "start date must be at least 14 days from now",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "14 days")
	})

	s.Run("error: 400 for a malformed date without invoking the command", func() {
		malformed := map[string]any{"start_date": "20/03/2026", "end_date": "2026-03-21"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, malformed, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when the auth context is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *VacationHandlerTestSuite) TestGetDashboard() {
	url := "/api/dashboard"

	s.Run("success: returns the dashboard view", func() {
		official := decimal.NewFromInt(10)
		tentative := decimal.NewFromInt(8)
		s.mockDashboard.EXPECT().GetDashboard(gomock.Any(), s.userID, s.sessionID).
			Return(&queries.DashboardView{
				Balance: queries.BalanceSummary{Official: &official, Tentative: &tentative},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.DashboardView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Balance.Official.Equal(official))
	})

	s.Run("error: 500 when the auth context is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
