package commands

import (
	"context"

	"leaveflow/internal/domain/user"
	"leaveflow/internal/infra"
	"leaveflow/internal/pkg/errs"
	"leaveflow/internal/pkg/password"
	"leaveflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type LoginResult struct {
	Token string
	User  queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users  UserReader
	tokens TokenIssuer
}

func NewAuthCommands(users UserReader, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{users: users, tokens: tokens}
}

// Login verifies credentials and issues a token whose jti becomes the
// session key for the balance snapshot store. Unknown emails and wrong
// passwords collapse into one error so the response does not leak which
// accounts exist.
func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	view, hash, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := c.tokens.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	return &LoginResult{Token: token, User: *view}, nil
}
