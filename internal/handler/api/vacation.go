package api

import (
	"net/http"

	reqdto "leaveflow/internal/handler/dto/request"
	resdto "leaveflow/internal/handler/dto/response"
	"leaveflow/internal/handler/middleware"
	"leaveflow/internal/usecase/commands"
	"leaveflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VacationHandler struct {
	vacationCommands commands.VacationCommands
	dashboard        queries.DashboardQueries
}

func NewVacationHandler(vacationCommands commands.VacationCommands, dashboard queries.DashboardQueries) *VacationHandler {
	return &VacationHandler{
		vacationCommands: vacationCommands,
		dashboard:        dashboard,
	}
}

func (h *VacationHandler) SubmitVacation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	result, err := h.vacationCommands.Submit(c.Request.Context(), commands.SubmitInput{
		EmployeeID: userID,
		SessionID:  sessionID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	writeLifecycleResult(c, result, http.StatusCreated)
}

func (h *VacationHandler) GetDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.dashboard.GetDashboard(c.Request.Context(), userID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// writeLifecycleResult maps the uniform lifecycle result to a transport
// response: notFound to 404, externalUnavailable to 503, any other failure
// to 400.
func writeLifecycleResult(c *gin.Context, result *commands.LifecycleResult, successStatus int) {
	switch {
	case result.Success:
		c.JSON(successStatus, resdto.FromLifecycleResult(result))
	case result.NotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"error": result.Message,
			"code":  result.ErrorCode,
		})
	case result.ExternalUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": result.Message,
			"code":  result.ErrorCode,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": result.Message,
			"code":  result.ErrorCode,
		})
	}
}
