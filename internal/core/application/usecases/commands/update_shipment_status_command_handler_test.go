package commands_test

import (
	"testing"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports/mocks"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should transition and compare-and-swap on previous status", func(t *testing.T) {
		store := mocks.NewStore()
		s := newTestShipment(t, shipment.Preparing)
		cmd, err := commands.NewUpdateShipmentStatusCommand(adminCaller(), s.ID(), "shipped")
		require.NoError(t, err)
		store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()
		store.Shipments.On("UpdateStatus", mock.Anything, s, shipment.Preparing).Return(nil).Once()

		updated, err := commands.NewUpdateShipmentStatusCommandHandler(store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, shipment.Shipped, updated.Status())
		store.Shipments.AssertExpectations(t)
	})

	t.Run("should forbid clients", func(t *testing.T) {
		store := mocks.NewStore()
		cmd, _ := commands.NewUpdateShipmentStatusCommand(clientCaller(), kernel.NewUUID(), "shipped")

		_, err := commands.NewUpdateShipmentStatusCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, identity.ErrForbidden)
	})

	t.Run("should reject unknown label before loading", func(t *testing.T) {
		store := mocks.NewStore()
		cmd, _ := commands.NewUpdateShipmentStatusCommand(adminCaller(), kernel.NewUUID(), "Shipped")

		_, err := commands.NewUpdateShipmentStatusCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, shipment.ErrInvalidStatusValue)
		store.Shipments.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should reject illegal and same-state transitions", func(t *testing.T) {
		cases := []struct {
			from shipment.Status
			to   string
		}{
			{shipment.Delivered, "shipped"},
			{shipment.Cancelled, "preparing"},
			{shipment.Preparing, "delivered"},
			{shipment.Shipped, "shipped"},
		}
		for _, tc := range cases {
			store := mocks.NewStore()
			s := newTestShipment(t, tc.from)
			cmd, _ := commands.NewUpdateShipmentStatusCommand(adminCaller(), s.ID(), tc.to)
			store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()

			_, err := commands.NewUpdateShipmentStatusCommandHandler(store).Handle(t.Context(), cmd)

			require.ErrorIs(t, err, shipment.ErrIllegalTransition, "%s -> %s", tc.from, tc.to)
			store.Shipments.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("should surface lost race as conflict", func(t *testing.T) {
		store := mocks.NewStore()
		s := newTestShipment(t, shipment.Shipped)
		cmd, _ := commands.NewUpdateShipmentStatusCommand(adminCaller(), s.ID(), "delivered")
		store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()
		store.Shipments.On("UpdateStatus", mock.Anything, s, shipment.Shipped).
			Return(errs.NewConflictError("shipment", s.ID())).Once()

		_, err := commands.NewUpdateShipmentStatusCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should return not found for missing shipment", func(t *testing.T) {
		store := mocks.NewStore()
		id := kernel.NewUUID()
		cmd, _ := commands.NewUpdateShipmentStatusCommand(adminCaller(), id, "cancelled")
		store.Shipments.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("shipment", id)).Once()

		_, err := commands.NewUpdateShipmentStatusCommandHandler(store).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewUpdateShipmentStatusCommand_InvalidID(t *testing.T) {
	_, err := commands.NewUpdateShipmentStatusCommand(adminCaller(), kernel.UUID{}, "shipped")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
