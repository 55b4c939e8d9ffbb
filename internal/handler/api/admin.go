package api

import (
	"net/http"

	"leaveflow/internal/domain/integration"
	reqdto "leaveflow/internal/handler/dto/request"
	resdto "leaveflow/internal/handler/dto/response"
	"leaveflow/internal/usecase/commands"
	"leaveflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	integrationCommands commands.IntegrationCommands
	integrationQueries  queries.IntegrationQueries
	holidayCommands     commands.HolidayCommands
}

func NewAdminHandler(
	integrationCommands commands.IntegrationCommands,
	integrationQueries queries.IntegrationQueries,
	holidayCommands commands.HolidayCommands,
) *AdminHandler {
	return &AdminHandler{
		integrationCommands: integrationCommands,
		integrationQueries:  integrationQueries,
		holidayCommands:     holidayCommands,
	}
}

func (h *AdminHandler) ListIntegrations(c *gin.Context) {
	views, err := h.integrationQueries.ListEndpoints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AdminHandler) UpsertIntegration(c *gin.Context) {
	integrationType, ok := parseIntegrationType(c)
	if !ok {
		return
	}

	var req reqdto.UpsertIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.integrationCommands.ConfigureEndpoint(c.Request.Context(), integrationType, req.EndpointURL, req.AuthToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DisableIntegration(c *gin.Context) {
	integrationType, ok := parseIntegrationType(c)
	if !ok {
		return
	}

	if err := h.integrationCommands.DisableEndpoint(c.Request.Context(), integrationType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ImportHolidays(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.ImportHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.holidayCommands.ImportForYear(c.Request.Context(), actorID, req.Year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	switch {
	case result.Success:
		c.JSON(http.StatusOK, resdto.FromHolidayImportResult(result))
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

func parseIntegrationType(c *gin.Context) (integration.Type, bool) {
	integrationType, err := integration.NewType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid integration type",
		})
		return "", false
	}
	return integrationType, true
}
