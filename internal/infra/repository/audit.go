package repository

import (
	"context"

	"leaveflow/internal/infra"

	"github.com/google/uuid"
)

type AuditLogRepository struct {
	db DBTX
}

func NewAuditLogRepository(db DBTX) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Insert appends one audit entry. detail is pre-marshaled JSON; pgx sends it
// straight into the JSONB column.
func (r *AuditLogRepository) Insert(ctx context.Context, actorID *uuid.UUID, action string, subjectID *uuid.UUID, detail []byte) error {
	if len(detail) == 0 {
		detail = []byte("{}")
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_logs (actor_id, action, subject_id, detail)
		VALUES ($1, $2, $3, $4)`,
		actorID,
		action,
		subjectID,
		detail,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert audit log", err)
	}
	return nil
}
