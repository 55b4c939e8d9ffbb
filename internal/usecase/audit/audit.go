package audit

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Action codes recorded in the audit trail.
const (
	ActionSubmitted        = "vacation_request.submitted"
	ActionSubmissionDenied = "vacation_request.submission_blocked"
	ActionApproved         = "vacation_request.approved"
	ActionDenied           = "vacation_request.denied"
	ActionProcessed        = "vacation_request.processed"
	ActionProcessingFailed = "vacation_request.processing_failed"
	ActionHolidaysImported = "holidays.imported"
)

type LogStore interface {
	Insert(ctx context.Context, actorID *uuid.UUID, action string, subjectID *uuid.UUID, detail []byte) error
}

// Service writes the audit trail. Writes are best-effort: a failed insert is
// logged and swallowed so it can never mask or alter the caller's own result.
type Service struct {
	store  LogStore
	logger *slog.Logger
}

func NewService(store LogStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) RecordSubmission(ctx context.Context, employeeID, requestID uuid.UUID, days int) {
	s.record(ctx, &employeeID, ActionSubmitted, &requestID, map[string]any{
		"days": days,
	})
}

func (s *Service) RecordSubmissionBlocked(ctx context.Context, employeeID uuid.UUID, reason string) {
	s.record(ctx, &employeeID, ActionSubmissionDenied, nil, map[string]any{
		"reason": reason,
	})
}

func (s *Service) RecordDecision(ctx context.Context, actorID, requestID uuid.UUID, approved bool, note string) {
	action := ActionDenied
	if approved {
		action = ActionApproved
	}
	detail := map[string]any{}
	if note != "" {
		detail["note"] = note
	}
	s.record(ctx, &actorID, action, &requestID, detail)
}

func (s *Service) RecordProcessingSuccess(ctx context.Context, hrID, requestID uuid.UUID) {
	s.record(ctx, &hrID, ActionProcessed, &requestID, nil)
}

func (s *Service) RecordProcessingFailure(ctx context.Context, hrID, requestID uuid.UUID, reason string) {
	s.record(ctx, &hrID, ActionProcessingFailed, &requestID, map[string]any{
		"reason": reason,
	})
}

func (s *Service) RecordHolidayImport(ctx context.Context, actorID uuid.UUID, year, imported, skipped int) {
	s.record(ctx, &actorID, ActionHolidaysImported, nil, map[string]any{
		"year":     strconv.Itoa(year),
		"imported": imported,
		"skipped":  skipped,
	})
}

func (s *Service) record(ctx context.Context, actorID *uuid.UUID, action string, subjectID *uuid.UUID, detail map[string]any) {
	var payload []byte
	if detail != nil {
		var err error
		payload, err = json.Marshal(detail)
		if err != nil {
			s.logger.Error("failed to marshal audit detail", "action", action, "error", err.Error())
			payload = nil
		}
	}
	if err := s.store.Insert(ctx, actorID, action, subjectID, payload); err != nil {
		s.logger.Error("failed to write audit log", "action", action, "error", err.Error())
	}
}
