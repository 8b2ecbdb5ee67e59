package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var ErrSelfDeletion = fmt.Errorf("%w: administrators cannot delete their own account", identity.ErrForbidden)

type DeleteUserCommandHandler struct {
	users ports.UserRepository
}

func NewDeleteUserCommandHandler(store ports.Store) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{users: store.UserRepository()}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := identity.RequireAdministrator(cmd.Caller()); err != nil {
		return err
	}

	if cmd.Caller().UserID == cmd.UserID() {
		return ErrSelfDeletion
	}

	return errs.WrapDeadline("delete user", h.users.Delete(ctx, cmd.UserID()))
}
