package repository

import (
	"context"
	"errors"

	"leaveflow/internal/infra"
	"leaveflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, display_name, role, is_active
		FROM users
		WHERE id = $1`,
		id,
	)

	var user queries.AuthorizedUserView
	if err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.Role, &user.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &user, nil
}

// FindByEmail returns the user view plus the stored password hash for
// credential verification. Inactive users are filtered out here so login
// never has to special-case them.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, display_name, role, is_active, password_hash
		FROM users
		WHERE email = $1 AND is_active = TRUE`,
		email,
	)

	var (
		user queries.AuthorizedUserView
		hash string
	)
	if err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.Role, &user.IsActive, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &user, hash, nil
}
