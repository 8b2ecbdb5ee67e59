// Package ports defines the contracts between the application core and its
// adapters: persistence, token issuing and password hashing.
//
// The store offers per-row atomic writes only. No contract here spans more
// than one row, which is why back-reference maintenance is expressed as
// separate idempotent Append/Remove calls.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment aggregates. It is the source of truth
// for ownership and routing; back-reference lists are derived from it.
type ShipmentRepository interface {
	// Add persists a new shipment.
	Add(ctx context.Context, s *shipment.Shipment) error

	// Get returns the shipment or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// UpdateStatus writes s.Status() only if the persisted status still equals
	// expected. A lost race yields errs.ConflictError; a concurrently deleted
	// shipment yields errs.ObjectNotFoundError.
	UpdateStatus(ctx context.Context, s *shipment.Shipment, expected shipment.Status) error

	// Delete removes the shipment. Returns errs.ObjectNotFoundError when no row
	// was deleted, which includes losing a race against another delete.
	Delete(ctx context.Context, id kernel.UUID) error
}
