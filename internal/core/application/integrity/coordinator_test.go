package integrity_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/integrity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/repair"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports/mocks"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	dest, err := kernel.NewCustomDestination("221B Baker Street")
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), dest, 2.5, 2.5, time.Now())
	require.NoError(t, err)
	return s
}

func newCoordinator(store *mocks.Store) *integrity.Coordinator {
	return integrity.NewCoordinator(store, slog.New(slog.DiscardHandler))
}

func assertAll(t *testing.T, store *mocks.Store) {
	t.Helper()
	store.Shipments.AssertExpectations(t)
	store.Companies.AssertExpectations(t)
	store.Users.AssertExpectations(t)
	store.Repairs.AssertExpectations(t)
}

func TestCoordinator_LinkCreated(t *testing.T) {
	t.Run("should append to company then user", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		mock.InOrder(
			store.Companies.On("AppendShipment", mock.Anything, s.CompanyID(), s.ID()).Return(nil).Once(),
			store.Users.On("AppendShipment", mock.Anything, s.CreatedBy(), s.ID()).Return(nil).Once(),
		)

		err := newCoordinator(store).LinkCreated(t.Context(), s)

		require.NoError(t, err)
		assertAll(t, store)
	})

	t.Run("should record failed company append and still update user", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		store.Companies.On("AppendShipment", mock.Anything, s.CompanyID(), s.ID()).
			Return(errors.New("connection reset")).Once()
		store.Users.On("AppendShipment", mock.Anything, s.CreatedBy(), s.ID()).Return(nil).Once()
		store.Repairs.On("Add", mock.Anything, mock.MatchedBy(func(r *repair.Repair) bool {
			return r.Target() == repair.TargetCompany &&
				r.TargetID() == s.CompanyID() &&
				r.ShipmentID() == s.ID() &&
				r.Action() == repair.ActionAppend &&
				r.Reason() == "connection reset"
		})).Return(nil).Once()

		err := newCoordinator(store).LinkCreated(t.Context(), s)

		require.ErrorIs(t, err, integrity.ErrPartialConsistency)
		assert.True(t, integrity.IsPartial(err))
		var partial *integrity.PartialConsistencyError
		require.ErrorAs(t, err, &partial)
		require.Len(t, partial.Failed, 1)
		assert.True(t, partial.Failed[0].Recorded)
		assert.Equal(t, s.ID(), partial.ShipmentID)
		assertAll(t, store)
	})

	t.Run("should report unrecorded step when repair log is down", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		store.Companies.On("AppendShipment", mock.Anything, s.CompanyID(), s.ID()).Return(nil).Once()
		store.Users.On("AppendShipment", mock.Anything, s.CreatedBy(), s.ID()).
			Return(errors.New("timeout")).Once()
		store.Repairs.On("Add", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		err := newCoordinator(store).LinkCreated(t.Context(), s)

		var partial *integrity.PartialConsistencyError
		require.ErrorAs(t, err, &partial)
		require.Len(t, partial.Failed, 1)
		assert.Equal(t, repair.TargetUser, partial.Failed[0].Target)
		assert.False(t, partial.Failed[0].Recorded)
		assert.Contains(t, err.Error(), "append on user")
	})
}

func TestCoordinator_Delete(t *testing.T) {
	t.Run("should delete then pull from both lists", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		mock.InOrder(
			store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Once(),
			store.Shipments.On("Delete", mock.Anything, s.ID()).Return(nil).Once(),
			store.Companies.On("RemoveShipment", mock.Anything, s.CompanyID(), s.ID()).Return(nil).Once(),
			store.Users.On("RemoveShipment", mock.Anything, s.CreatedBy(), s.ID()).Return(nil).Once(),
		)

		require.NoError(t, newCoordinator(store).Delete(t.Context(), s.ID()))
		assertAll(t, store)
	})

	t.Run("should return not found for missing shipment", func(t *testing.T) {
		store := mocks.NewStore()
		id := kernel.NewUUID()
		store.Shipments.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("shipment", id)).Once()

		err := newCoordinator(store).Delete(t.Context(), id)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assertAll(t, store)
	})

	t.Run("should return not found when concurrent delete won", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()
		store.Shipments.On("Delete", mock.Anything, s.ID()).
			Return(errs.NewObjectNotFoundError("shipment", s.ID())).Once()

		err := newCoordinator(store).Delete(t.Context(), s.ID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assertAll(t, store)
	})

	t.Run("should keep delete when list pull fails", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()
		store.Shipments.On("Delete", mock.Anything, s.ID()).Return(nil).Once()
		store.Companies.On("RemoveShipment", mock.Anything, s.CompanyID(), s.ID()).Return(errors.New("boom")).Once()
		store.Users.On("RemoveShipment", mock.Anything, s.CreatedBy(), s.ID()).Return(errors.New("boom")).Once()
		store.Repairs.On("Add", mock.Anything, mock.MatchedBy(func(r *repair.Repair) bool {
			return r.Action() == repair.ActionRemove
		})).Return(nil).Twice()

		err := newCoordinator(store).Delete(t.Context(), s.ID())

		require.True(t, integrity.IsPartial(err))
		assertAll(t, store)
	})
}

func TestCoordinator_Repair(t *testing.T) {
	t.Run("should re-append when shipment still exists", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		r, err := repair.NewRepair(kernel.NewUUID(), s.ID(), repair.TargetCompany, s.CompanyID(),
			repair.ActionAppend, "", time.Now())
		require.NoError(t, err)
		store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Twice()
		store.Companies.On("AppendShipment", mock.Anything, s.CompanyID(), s.ID()).Return(nil).Once()

		require.NoError(t, newCoordinator(store).Repair(t.Context(), r))
		assertAll(t, store)
	})

	t.Run("should pull the id back out when shipment is deleted during the append", func(t *testing.T) {
		store := mocks.NewStore()
		s := newShipment(t)
		r, err := repair.NewRepair(kernel.NewUUID(), s.ID(), repair.TargetCompany, s.CompanyID(),
			repair.ActionAppend, "", time.Now())
		require.NoError(t, err)
		store.Shipments.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()
		store.Companies.On("AppendShipment", mock.Anything, s.CompanyID(), s.ID()).Return(nil).Once()
		store.Shipments.On("Get", mock.Anything, s.ID()).
			Return(nil, errs.NewObjectNotFoundError("shipment", s.ID())).Once()
		store.Companies.On("RemoveShipment", mock.Anything, s.CompanyID(), s.ID()).Return(nil).Once()

		require.NoError(t, newCoordinator(store).Repair(t.Context(), r))
		assert.Equal(t, repair.ActionRemove, r.Action())
		assertAll(t, store)
	})

	t.Run("should turn append into removal when shipment is gone", func(t *testing.T) {
		store := mocks.NewStore()
		shipmentID, userID := kernel.NewUUID(), kernel.NewUUID()
		r, err := repair.NewRepair(kernel.NewUUID(), shipmentID, repair.TargetUser, userID,
			repair.ActionAppend, "", time.Now())
		require.NoError(t, err)
		store.Shipments.On("Get", mock.Anything, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipment", shipmentID)).Once()
		store.Users.On("RemoveShipment", mock.Anything, userID, shipmentID).Return(nil).Once()

		require.NoError(t, newCoordinator(store).Repair(t.Context(), r))
		assert.Equal(t, repair.ActionRemove, r.Action())
		assertAll(t, store)
	})

	t.Run("should treat missing target as repaired", func(t *testing.T) {
		store := mocks.NewStore()
		shipmentID, userID := kernel.NewUUID(), kernel.NewUUID()
		r, err := repair.NewRepair(kernel.NewUUID(), shipmentID, repair.TargetUser, userID,
			repair.ActionRemove, "", time.Now())
		require.NoError(t, err)
		store.Users.On("RemoveShipment", mock.Anything, userID, shipmentID).
			Return(errs.NewObjectNotFoundError("user", userID)).Once()

		require.NoError(t, newCoordinator(store).Repair(t.Context(), r))
		assertAll(t, store)
	})
}

func TestCoordinator_Reconcile(t *testing.T) {
	store := mocks.NewStore()
	companyID, userID := kernel.NewUUID(), kernel.NewUUID()
	ok, err := repair.NewRepair(kernel.NewUUID(), kernel.NewUUID(), repair.TargetCompany, companyID,
		repair.ActionRemove, "", time.Now())
	require.NoError(t, err)
	bad, err := repair.NewRepair(kernel.NewUUID(), kernel.NewUUID(), repair.TargetUser, userID,
		repair.ActionRemove, "", time.Now())
	require.NoError(t, err)

	store.Repairs.On("ListPending", mock.Anything, 10).Return([]*repair.Repair{ok, bad}, nil).Once()
	store.Companies.On("RemoveShipment", mock.Anything, companyID, ok.ShipmentID()).Return(nil).Once()
	store.Repairs.On("Resolve", mock.Anything, ok.ID()).Return(nil).Once()
	store.Users.On("RemoveShipment", mock.Anything, userID, bad.ShipmentID()).Return(errors.New("still down")).Once()
	store.Repairs.On("RecordFailure", mock.Anything, bad.ID(), "still down").Return(nil).Once()

	resolved, failed, err := newCoordinator(store).Reconcile(t.Context(), 10)

	require.NoError(t, err)
	assert.Equal(t, 1, resolved)
	assert.Equal(t, 1, failed)
	assertAll(t, store)
}
