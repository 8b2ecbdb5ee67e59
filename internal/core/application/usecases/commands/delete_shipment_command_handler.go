package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/application/integrity"
	"logistics/internal/pkg/errs"
)

type DeleteShipmentCommandHandler struct {
	remover ShipmentRemover
	logger  *slog.Logger
}

func NewDeleteShipmentCommandHandler(remover ShipmentRemover, logger *slog.Logger) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		remover: remover,
		logger:  logger.With("component", "DeleteShipmentCommandHandler"),
	}
}

// Handle deletes the shipment. A second delete of the same id fails with
// errs.ErrObjectNotFound.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := identity.RequireAdministrator(cmd.Caller()); err != nil {
		return err
	}

	err := h.remover.Delete(ctx, cmd.ShipmentID())
	if integrity.IsPartial(err) {
		h.logger.WarnContext(ctx, "shipment deleted with stale back-references",
			"shipment_id", cmd.ShipmentID().String(),
			"error", err,
		)
		return nil
	}

	return errs.WrapDeadline("delete shipment", err)
}
