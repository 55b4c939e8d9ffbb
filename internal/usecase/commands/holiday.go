package commands

import (
	"context"
	"fmt"
	"log/slog"

	"leaveflow/internal/domain/integration"

	"github.com/google/uuid"
)

// Importable year bounds; the calendar source publishes nothing outside them.
const (
	minImportYear = 1950
	maxImportYear = 2100
)

const CodeInvalidYear = "invalid_year"

type HolidayImportResult struct {
	Success             bool
	ExternalUnavailable bool
	ErrorCode           string
	Imported            int
	Skipped             int
	Message             string
}

type HolidayCommands interface {
	ImportForYear(ctx context.Context, actorID uuid.UUID, year int) (*HolidayImportResult, error)
}

type holidayCommandsImpl struct {
	endpoints EndpointResolver
	client    HolidayImportClient
	holidays  HolidayWriter
	audit     AuditRecorder
	logger    *slog.Logger
}

func NewHolidayCommands(
	endpoints EndpointResolver,
	client HolidayImportClient,
	holidays HolidayWriter,
	audit AuditRecorder,
	logger *slog.Logger,
) HolidayCommands {
	return &holidayCommandsImpl{
		endpoints: endpoints,
		client:    client,
		holidays:  holidays,
		audit:     audit,
		logger:    logger,
	}
}

// ImportForYear pulls the external holiday calendar for one year and upserts
// each entry. Entries that fail to persist are skipped and the import
// continues; a partial import still succeeds with a skipped count.
func (c *holidayCommandsImpl) ImportForYear(ctx context.Context, actorID uuid.UUID, year int) (*HolidayImportResult, error) {
	if year < minImportYear || year > maxImportYear {
		return &HolidayImportResult{
			ErrorCode: CodeInvalidYear,
			Message:   fmt.Sprintf("year must be between %d and %d", minImportYear, maxImportYear),
		}, nil
	}

	endpoint, err := c.endpoints.FindActive(ctx, integration.TypeHolidayAPI)
	if err != nil {
		return nil, err
	}
	if endpoint == nil {
		return &HolidayImportResult{
			ExternalUnavailable: true,
			ErrorCode:           CodeExternalUnavailable,
			Message:             "Integration not configured",
		}, nil
	}

	entries, skipped, err := c.client.FetchYear(ctx, endpoint, year)
	if err != nil {
		return &HolidayImportResult{
			ExternalUnavailable: true,
			ErrorCode:           CodeExternalUnavailable,
			Message:             "holiday calendar unavailable: " + err.Error(),
		}, nil
	}

	imported := 0
	for _, entry := range entries {
		if err := c.holidays.Upsert(ctx, entry.Date, entry.Name); err != nil {
			c.logger.Warn("failed to upsert holiday",
				"date", entry.Date.Format("2006-01-02"),
				"error", err.Error(),
			)
			skipped++
			continue
		}
		imported++
	}

	c.audit.RecordHolidayImport(ctx, actorID, year, imported, skipped)

	return &HolidayImportResult{
		Success:  true,
		Imported: imported,
		Skipped:  skipped,
	}, nil
}
