package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrSelfDemotion keeps at least the acting administrator in place.
var ErrSelfDemotion = fmt.Errorf("%w: administrators cannot change their own role", identity.ErrForbidden)

type ToggleAdminCommandHandler struct {
	users ports.UserRepository
}

func NewToggleAdminCommandHandler(store ports.Store) ToggleAdminCommandHandler {
	return ToggleAdminCommandHandler{users: store.UserRepository()}
}

func (h ToggleAdminCommandHandler) Handle(ctx context.Context, cmd ToggleAdminCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAdministrator(cmd.Caller()); err != nil {
		return nil, err
	}

	if cmd.Caller().UserID == cmd.UserID() {
		return nil, ErrSelfDemotion
	}

	u, err := h.users.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, errs.WrapDeadline("toggle admin", err)
	}

	u.ToggleAdmin()

	if err = h.users.Update(ctx, u); err != nil {
		return nil, errs.WrapDeadline("toggle admin", err)
	}

	return u, nil
}
