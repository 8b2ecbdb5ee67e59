package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/repair"
)

// RepairRepository stores back-reference repairs awaiting reconciliation.
type RepairRepository interface {
	// Add records a pending repair.
	Add(ctx context.Context, r *repair.Repair) error

	// ListPending returns up to limit unresolved repairs, fewest attempts
	// first and then oldest first, so repairs that keep failing do not starve
	// newer ones.
	ListPending(ctx context.Context, limit int) ([]*repair.Repair, error)

	// Resolve marks the repair done.
	Resolve(ctx context.Context, id kernel.UUID) error

	// RecordFailure increments the attempt counter and stores the last error.
	RecordFailure(ctx context.Context, id kernel.UUID, lastError string) error
}
