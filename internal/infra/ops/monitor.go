package ops

import (
	"log/slog"

	"github.com/google/uuid"
)

// Monitor is the permanent-failure observability sink. Callers treat every
// method as fire-and-forget.
type Monitor interface {
	RecordDeductionFailure(requestID uuid.UUID, reason string)
	RecordEventFailure(eventType string, attempts int)
}

type logMonitor struct {
	logger *slog.Logger
}

func NewMonitor(logger *slog.Logger) Monitor {
	return &logMonitor{logger: logger}
}

func (m *logMonitor) RecordDeductionFailure(requestID uuid.UUID, reason string) {
	m.logger.Error("external deduction failed after retries",
		"request_id", requestID.String(),
		"reason", reason,
	)
}

func (m *logMonitor) RecordEventFailure(eventType string, attempts int) {
	m.logger.Error("event publish permanently failed",
		"event_type", eventType,
		"attempts", attempts,
	)
}
