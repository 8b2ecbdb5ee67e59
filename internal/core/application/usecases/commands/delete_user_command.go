package commands

import (
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes an account. Shipments created by the account are
// kept and keep pointing at the removed user id.
type DeleteUserCommand struct {
	caller identity.Caller
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(caller identity.Caller, userID kernel.UUID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{caller: caller, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Caller() identity.Caller {
	return c.caller
}

func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}
