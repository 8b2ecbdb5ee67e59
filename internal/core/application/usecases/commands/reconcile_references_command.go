package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrReconcileReferencesCommandIsNotConstructed = errors.New(
	"ReconcileReferencesCommand must be created via NewReconcileReferencesCommand constructor",
)

// ReconcileReferencesCommand runs one batch of pending list repairs. It is
// issued by the scheduler, not by users, so it carries no caller.
type ReconcileReferencesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewReconcileReferencesCommand(batchSize int) (ReconcileReferencesCommand, error) {
	if batchSize <= 0 {
		return ReconcileReferencesCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}
	return ReconcileReferencesCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcileReferencesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileReferencesCommandIsNotConstructed)
}

func (c ReconcileReferencesCommand) BatchSize() int {
	return c.batchSize
}

type ReconcileReferencesCommandHandler struct {
	reconciler Reconciler
	logger     *slog.Logger
}

func NewReconcileReferencesCommandHandler(reconciler Reconciler, logger *slog.Logger) ReconcileReferencesCommandHandler {
	return ReconcileReferencesCommandHandler{
		reconciler: reconciler,
		logger:     logger.With("component", "ReconcileReferencesCommandHandler"),
	}
}

// Handle fails only when the pending repairs cannot be read. Repairs that
// fail again stay pending with a higher attempt count.
func (h ReconcileReferencesCommandHandler) Handle(ctx context.Context, cmd ReconcileReferencesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	resolved, failed, err := h.reconciler.Reconcile(ctx, cmd.BatchSize())
	if err != nil {
		return errs.WrapDeadline("reconcile references", err)
	}

	if resolved > 0 || failed > 0 {
		h.logger.InfoContext(ctx, "back-references reconciled", "resolved", resolved, "failed", failed)
	}
	return nil
}
