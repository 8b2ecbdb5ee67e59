package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RegisterUserCommandHandler stores a new non-administrator account. A taken
// email surfaces as errs.ErrConflict from the repository.
type RegisterUserCommandHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegisterUserCommandHandler(store ports.Store, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{users: store.UserRepository(), hasher: hasher}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Email(), hash, time.Now())
	if err != nil {
		return nil, err
	}

	if err = h.users.Add(ctx, u); err != nil {
		return nil, errs.WrapDeadline("register user", err)
	}

	return u, nil
}
