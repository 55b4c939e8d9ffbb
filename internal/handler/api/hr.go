package api

import (
	"net/http"

	"leaveflow/internal/usecase/commands"
	"leaveflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HRHandler struct {
	vacationCommands commands.VacationCommands
	hrQueries        queries.HRQueries
}

func NewHRHandler(vacationCommands commands.VacationCommands, hrQueries queries.HRQueries) *HRHandler {
	return &HRHandler{
		vacationCommands: vacationCommands,
		hrQueries:        hrQueries,
	}
}

func (h *HRHandler) ListUnprocessed(c *gin.Context) {
	items, err := h.hrQueries.ListApprovedUnprocessed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *HRHandler) Process(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}
	req, ok := bindDecision(c)
	if !ok {
		return
	}

	result, err := h.vacationCommands.Process(c.Request.Context(), commands.DecisionInput{
		ActorID:   actorID,
		RequestID: requestID,
		Note:      req.Note,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	writeLifecycleResult(c, result, http.StatusOK)
}
