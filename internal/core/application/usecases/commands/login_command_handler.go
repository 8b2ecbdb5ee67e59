package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for an unknown email and a wrong password
// alike.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", identity.ErrUnauthenticated)

// LoginResult carries the issued token and the signed-in account.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

type LoginCommandHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewLoginCommandHandler(
	store ports.Store,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{users: store.UserRepository(), hasher: hasher, tokens: tokens}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := h.users.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, errs.WrapDeadline("login", err)
	}

	if !h.hasher.Check(cmd.Password(), u.PasswordHash()) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := h.tokens.Issue(u.ID())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}
