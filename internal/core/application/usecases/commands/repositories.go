// Package commands contains business operations that modify system state.
// Every handler follows the same order: constructor guard, capability check
// through the identity gate, domain validation, then persistence.
//
// Writes are never wrapped in a cross-row transaction. Shipment creation and
// deletion delegate back-reference maintenance to the integrity coordinator,
// whose partial failures are logged and do not fail the command.
package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

type (
	// ShipmentLinker adds a persisted shipment to its company and owner lists.
	ShipmentLinker interface {
		LinkCreated(ctx context.Context, s *shipment.Shipment) error
	}

	// ShipmentRemover deletes a shipment and pulls it from both lists.
	ShipmentRemover interface {
		Delete(ctx context.Context, id kernel.UUID) error
	}

	// Reconciler re-applies pending back-reference repairs.
	Reconciler interface {
		Reconcile(ctx context.Context, limit int) (resolved, failed int, err error)
	}

	// Pricer computes the price of a shipment from its weight.
	Pricer interface {
		Price(weight float64) (float64, error)
	}
)
