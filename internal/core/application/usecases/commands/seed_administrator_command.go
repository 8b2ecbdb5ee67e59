package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrSeedAdministratorCommandIsNotConstructed = errors.New(
	"SeedAdministratorCommand must be created via NewSeedAdministratorCommand constructor",
)

// SeedAdministratorCommand provisions the first administrator. It is run by
// the migration tool, never by the HTTP server.
type SeedAdministratorCommand struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewSeedAdministratorCommand(email, password string) (SeedAdministratorCommand, error) {
	creds, err := newCredentials(email, password)
	if err != nil {
		return SeedAdministratorCommand{}, err
	}

	return SeedAdministratorCommand{
		email:    creds.Email,
		password: creds.Password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SeedAdministratorCommand) Validate() error {
	return c.guard.Validate(ErrSeedAdministratorCommandIsNotConstructed)
}

type SeedAdministratorCommandHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewSeedAdministratorCommandHandler(store ports.Store, hasher ports.PasswordHasher) SeedAdministratorCommandHandler {
	return SeedAdministratorCommandHandler{users: store.UserRepository(), hasher: hasher}
}

// Handle creates the account as administrator, or promotes it and resets the
// password when it already exists. Running it twice is harmless.
func (h SeedAdministratorCommandHandler) Handle(ctx context.Context, cmd SeedAdministratorCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.password)
	if err != nil {
		return nil, err
	}

	existing, err := h.users.GetByEmail(ctx, cmd.email)
	switch {
	case err == nil:
		existing.Promote()
		if err = existing.ChangePasswordHash(hash); err != nil {
			return nil, err
		}
		if err = h.users.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.email, hash, time.Now())
	if err != nil {
		return nil, err
	}
	u.Promote()

	if err = h.users.Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
