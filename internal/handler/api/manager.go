package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "leaveflow/internal/handler/dto/request"
	"leaveflow/internal/handler/middleware"
	"leaveflow/internal/pkg/errs"
	"leaveflow/internal/usecase/commands"
	"leaveflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ManagerHandler struct {
	vacationCommands commands.VacationCommands
	managerQueries   queries.ManagerQueries
}

func NewManagerHandler(vacationCommands commands.VacationCommands, managerQueries queries.ManagerQueries) *ManagerHandler {
	return &ManagerHandler{
		vacationCommands: vacationCommands,
		managerQueries:   managerQueries,
	}
}

func (h *ManagerHandler) ListPending(c *gin.Context) {
	items, err := h.managerQueries.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ManagerHandler) GetRequestDetail(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	detail, err := h.managerQueries.GetRequestDetail(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, errs.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vacation request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ManagerHandler) Approve(c *gin.Context) {
	h.decide(c, h.vacationCommands.Approve)
}

func (h *ManagerHandler) Deny(c *gin.Context) {
	h.decide(c, h.vacationCommands.Deny)
}

func (h *ManagerHandler) decide(c *gin.Context, op func(ctx context.Context, input commands.DecisionInput) (*commands.LifecycleResult, error)) {
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

	result, err := op(c.Request.Context(), commands.DecisionInput{
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

func parseRequestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func bindDecision(c *gin.Context) (reqdto.DecisionRequest, bool) {
	var req reqdto.DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return req, false
		}
	}
	return req, true
}

func actorFromContext(c *gin.Context) (uuid.UUID, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, false
	}
	return actorID, true
}
