package user_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should create a client account", func(t *testing.T) {
		u, err := user.NewUser(id, "  Client@Example.COM ", "$2a$10$hash", time.Now())

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "client@example.com", u.Email())
		assert.False(t, u.IsAdmin())
		assert.Empty(t, u.ShipmentIDs())
	})

	t.Run("should reject malformed emails", func(t *testing.T) {
		for _, email := range []string{"plain", "@example.com", "client@"} {
			_, err := user.NewUser(id, email, "hash", time.Now())

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, email)
		}
	})

	t.Run("should require email and hash", func(t *testing.T) {
		_, err := user.NewUser(id, " ", "", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password hash")
	})
}

func TestUser_ToggleAdmin(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "a@b.c", "hash", time.Now())
	require.NoError(t, err)

	assert.True(t, u.ToggleAdmin())
	assert.True(t, u.IsAdmin())
	assert.False(t, u.ToggleAdmin())
	assert.False(t, u.IsAdmin())

	u.Promote()
	assert.True(t, u.IsAdmin())
}

func TestRestoreUser_CopiesShipmentIDs(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	u, err := user.RestoreUser(kernel.NewUUID(), "a@b.c", "hash", true, ids, time.Now())
	require.NoError(t, err)

	ids[0] = kernel.NewUUID()
	got := u.ShipmentIDs()
	got[1] = kernel.NewUUID()

	assert.Len(t, u.ShipmentIDs(), 2)
	assert.False(t, u.ShipmentIDs()[0].IsEqual(ids[0]))
	assert.False(t, u.ShipmentIDs()[1].IsEqual(got[1]))
}
