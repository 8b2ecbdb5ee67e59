package commands_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports/mocks"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("should normalize email", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand("  Ada@Example.COM ", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", cmd.Email())
	})

	t.Run("should reject bad email and short password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("not-an-email", "12345")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("should reject passwords beyond the bcrypt limit", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("ada@example.com", strings.Repeat("x", commands.MaxPasswordLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should count multibyte passwords in bytes", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("ada@example.com", strings.Repeat("é", 40))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("should accept multibyte passwords within the limit", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("ada@example.com", strings.Repeat("é", 36))

		require.NoError(t, err)
	})
}

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	t.Run("should store hashed client account", func(t *testing.T) {
		store := mocks.NewStore()
		hasher := new(mocks.PasswordHasher)
		cmd, _ := commands.NewRegisterUserCommand("ada@example.com", "secret1")
		hasher.On("Hash", "secret1").Return("$2a$hash", nil).Once()
		store.Users.On("Add", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Email() == "ada@example.com" && u.PasswordHash() == "$2a$hash" && !u.IsAdmin()
		})).Return(nil).Once()

		u, err := commands.NewRegisterUserCommandHandler(store, hasher).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.False(t, u.IsAdmin())
		hasher.AssertExpectations(t)
		store.Users.AssertExpectations(t)
	})

	t.Run("should surface duplicate email as conflict", func(t *testing.T) {
		store := mocks.NewStore()
		hasher := new(mocks.PasswordHasher)
		cmd, _ := commands.NewRegisterUserCommand("ada@example.com", "secret1")
		hasher.On("Hash", "secret1").Return("$2a$hash", nil).Once()
		store.Users.On("Add", mock.Anything, mock.Anything).
			Return(errs.NewConflictError("email", "ada@example.com")).Once()

		_, err := commands.NewRegisterUserCommandHandler(store, hasher).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	account := newTestUser(t, "ada@example.com", false)

	t.Run("should issue token for valid credentials", func(t *testing.T) {
		store := mocks.NewStore()
		hasher := new(mocks.PasswordHasher)
		tokens := new(mocks.TokenService)
		expires := time.Now().Add(time.Hour)
		cmd, err := commands.NewLoginCommand("ADA@example.com", "secret1")
		require.NoError(t, err)
		store.Users.On("GetByEmail", mock.Anything, "ada@example.com").Return(account, nil).Once()
		hasher.On("Check", "secret1", account.PasswordHash()).Return(true).Once()
		tokens.On("Issue", account.ID()).Return("signed", expires, nil).Once()

		res, err := commands.NewLoginCommandHandler(store, hasher, tokens).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "signed", res.Token)
		assert.Equal(t, expires, res.ExpiresAt)
		assert.Same(t, account, res.User)
	})

	t.Run("should give the same error for unknown email and wrong password", func(t *testing.T) {
		store := mocks.NewStore()
		hasher := new(mocks.PasswordHasher)
		tokens := new(mocks.TokenService)
		unknown, _ := commands.NewLoginCommand("bob@example.com", "secret1")
		wrong, _ := commands.NewLoginCommand("ada@example.com", "nope!!")
		store.Users.On("GetByEmail", mock.Anything, "bob@example.com").
			Return(nil, errs.NewObjectNotFoundError("user", "bob@example.com")).Once()
		store.Users.On("GetByEmail", mock.Anything, "ada@example.com").Return(account, nil).Once()
		hasher.On("Check", "nope!!", account.PasswordHash()).Return(false).Once()
		h := commands.NewLoginCommandHandler(store, hasher, tokens)

		_, errUnknown := h.Handle(t.Context(), unknown)
		_, errWrong := h.Handle(t.Context(), wrong)

		require.ErrorIs(t, errUnknown, identity.ErrUnauthenticated)
		require.ErrorIs(t, errWrong, identity.ErrUnauthenticated)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("should require both fields", func(t *testing.T) {
		_, err := commands.NewLoginCommand(" ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestToggleAdminCommandHandler_Handle(t *testing.T) {
	t.Run("should promote a client", func(t *testing.T) {
		store := mocks.NewStore()
		target := newTestUser(t, "client@example.com", false)
		cmd, _ := commands.NewToggleAdminCommand(adminCaller(), target.ID())
		store.Users.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
		store.Users.On("Update", mock.Anything, target).Return(nil).Once()

		u, err := commands.NewToggleAdminCommandHandler(store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
		store.Users.AssertExpectations(t)
	})

	t.Run("should refuse self demotion", func(t *testing.T) {
		store := mocks.NewStore()
		admin := adminCaller()
		cmd, _ := commands.NewToggleAdminCommand(admin, admin.UserID)

		_, err := commands.NewToggleAdminCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, identity.ErrForbidden)
		require.ErrorIs(t, err, commands.ErrSelfDemotion)
	})

	t.Run("should return not found for unknown user", func(t *testing.T) {
		store := mocks.NewStore()
		id := kernel.NewUUID()
		cmd, _ := commands.NewToggleAdminCommand(adminCaller(), id)
		store.Users.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("user", id)).Once()

		_, err := commands.NewToggleAdminCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should forbid clients", func(t *testing.T) {
		cmd, _ := commands.NewToggleAdminCommand(clientCaller(), kernel.NewUUID())

		_, err := commands.NewToggleAdminCommandHandler(mocks.NewStore()).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, identity.ErrForbidden)
	})
}

func TestDeleteUserCommandHandler_Handle(t *testing.T) {
	t.Run("should delete account", func(t *testing.T) {
		store := mocks.NewStore()
		id := kernel.NewUUID()
		cmd, _ := commands.NewDeleteUserCommand(adminCaller(), id)
		store.Users.On("Delete", mock.Anything, id).Return(nil).Once()

		require.NoError(t, commands.NewDeleteUserCommandHandler(store).Handle(t.Context(), cmd))
		store.Users.AssertExpectations(t)
	})

	t.Run("should refuse self deletion", func(t *testing.T) {
		admin := adminCaller()
		cmd, _ := commands.NewDeleteUserCommand(admin, admin.UserID)

		err := commands.NewDeleteUserCommandHandler(mocks.NewStore()).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrSelfDeletion)
	})

	t.Run("should return not found for unknown user", func(t *testing.T) {
		store := mocks.NewStore()
		id := kernel.NewUUID()
		cmd, _ := commands.NewDeleteUserCommand(adminCaller(), id)
		store.Users.On("Delete", mock.Anything, id).Return(errs.NewObjectNotFoundError("user", id)).Once()

		err := commands.NewDeleteUserCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSeedAdministratorCommandHandler_Handle(t *testing.T) {
	t.Run("should create administrator when missing", func(t *testing.T) {
		store := mocks.NewStore()
		hasher := new(mocks.PasswordHasher)
		cmd, err := commands.NewSeedAdministratorCommand("root@example.com", "changeme")
		require.NoError(t, err)
		hasher.On("Hash", "changeme").Return("h", nil).Once()
		store.Users.On("GetByEmail", mock.Anything, "root@example.com").
			Return(nil, errs.NewObjectNotFoundError("user", "root@example.com")).Once()
		store.Users.On("Add", mock.Anything, mock.MatchedBy(func(u *user.User) bool { return u.IsAdmin() })).
			Return(nil).Once()

		u, err := commands.NewSeedAdministratorCommandHandler(store, hasher).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
		store.Users.AssertExpectations(t)
	})

	t.Run("should promote existing account", func(t *testing.T) {
		store := mocks.NewStore()
		hasher := new(mocks.PasswordHasher)
		existing := newTestUser(t, "root@example.com", false)
		cmd, _ := commands.NewSeedAdministratorCommand("root@example.com", "changeme")
		hasher.On("Hash", "changeme").Return("h2", nil).Once()
		store.Users.On("GetByEmail", mock.Anything, "root@example.com").Return(existing, nil).Once()
		store.Users.On("Update", mock.Anything, existing).Return(nil).Once()

		u, err := commands.NewSeedAdministratorCommandHandler(store, hasher).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
		assert.Equal(t, "h2", u.PasswordHash())
		store.Users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestCreateCompanyCommandHandler_Handle(t *testing.T) {
	t.Run("should store company", func(t *testing.T) {
		store := mocks.NewStore()
		cmd, err := commands.NewCreateCompanyCommand(adminCaller(), " Acme Logistics ")
		require.NoError(t, err)
		store.Companies.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

		c, err := commands.NewCreateCompanyCommandHandler(store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "Acme Logistics", c.Name())
		assert.Empty(t, c.ShipmentIDs())
	})

	t.Run("should surface duplicate name as conflict", func(t *testing.T) {
		store := mocks.NewStore()
		cmd, _ := commands.NewCreateCompanyCommand(adminCaller(), "Acme")
		store.Companies.On("Add", mock.Anything, mock.Anything).Return(errs.NewConflictError("company name", "Acme")).Once()

		_, err := commands.NewCreateCompanyCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should forbid clients and require a name", func(t *testing.T) {
		cmd, _ := commands.NewCreateCompanyCommand(clientCaller(), "Acme")
		_, err := commands.NewCreateCompanyCommandHandler(mocks.NewStore()).Handle(t.Context(), cmd)
		require.ErrorIs(t, err, identity.ErrForbidden)

		_, err = commands.NewCreateCompanyCommand(adminCaller(), "   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
