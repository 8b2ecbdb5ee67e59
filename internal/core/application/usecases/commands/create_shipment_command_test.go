package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand(t *testing.T) {
	caller := clientCaller()
	companyID := kernel.NewUUID()

	t.Run("should accept custom destination", func(t *testing.T) {
		cmd, err := commands.NewCreateShipmentCommand(caller, companyID, "  12 Quay Street ", 2)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, caller, cmd.Caller())
		assert.Equal(t, companyID, cmd.CompanyID())
		assert.True(t, cmd.Destination().IsCustom())
		assert.Equal(t, "12 Quay Street", cmd.Destination().Address())
		assert.InDelta(t, 2.0, cmd.Weight(), 0)
	})

	t.Run("should accept company destination", func(t *testing.T) {
		target := kernel.NewUUID()

		cmd, err := commands.NewCreateShipmentCommand(caller, companyID, target.String(), 2)

		require.NoError(t, err)
		id, ok := cmd.Destination().CompanyID()
		assert.True(t, ok)
		assert.Equal(t, target, id)
	})

	t.Run("should reject zero company id and empty destination", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(caller, kernel.UUID{}, "", 2)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should report unconstructed command", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateShipmentCommand{}.Validate(), commands.ErrCreateShipmentCommandIsNotConstructed)
	})
}
