package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// UserRepository persists user accounts and their owned-shipment list.
type UserRepository interface {
	// Add persists a new user. A taken email yields errs.ConflictError.
	Add(ctx context.Context, u *user.User) error

	// Update writes the admin flag and password hash.
	Update(ctx context.Context, u *user.User) error

	// Get returns the user or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks up by normalized email or returns errs.ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*user.User, error)


	// Delete removes the user or returns errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// AppendShipment adds shipmentID to the user's list unless already present.
	// Returns errs.ObjectNotFoundError if the user does not exist.
	AppendShipment(ctx context.Context, userID, shipmentID kernel.UUID) error

	// RemoveShipment drops shipmentID from the user's list; absent ids are a no-op.
	// Returns errs.ObjectNotFoundError if the user does not exist.
	RemoveShipment(ctx context.Context, userID, shipmentID kernel.UUID) error
}
