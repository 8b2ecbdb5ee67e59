package commands

import (
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrToggleAdminCommandIsNotConstructed = errors.New(
	"ToggleAdminCommand must be created via NewToggleAdminCommand constructor",
)

// ToggleAdminCommand flips the administrator flag of a user.
type ToggleAdminCommand struct {
	caller identity.Caller
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleAdminCommand(caller identity.Caller, userID kernel.UUID) (ToggleAdminCommand, error) {
	if err := userID.Validate(); err != nil {
		return ToggleAdminCommand{}, err
	}

	return ToggleAdminCommand{caller: caller, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleAdminCommand) Validate() error {
	return c.guard.Validate(ErrToggleAdminCommandIsNotConstructed)
}

func (c ToggleAdminCommand) Caller() identity.Caller {
	return c.caller
}

func (c ToggleAdminCommand) UserID() kernel.UUID {
	return c.userID
}
