package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates a client account. Passwords are 6 to 72 bytes.
type RegisterUserCommand struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(email, password string) (RegisterUserCommand, error) {
	creds, err := newCredentials(email, password)
	if err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		email:    creds.Email,
		password: creds.Password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the normalized address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}
