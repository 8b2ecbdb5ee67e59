package commands

import (
	"context"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// UpdateShipmentStatusCommandHandler applies a status transition with a
// compare-and-swap on the status that was read.
//
// Example:
//
//	cmd, _ := NewUpdateShipmentStatusCommand(admin, shipmentID, "shipped")
//	s, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, shipment.ErrIllegalTransition):
//	    // 400
//	case errors.Is(err, errs.ErrConflict):
//	    // another request changed the status first
//	}
type UpdateShipmentStatusCommandHandler struct {
	shipments ports.ShipmentRepository
}

func NewUpdateShipmentStatusCommandHandler(store ports.Store) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{shipments: store.ShipmentRepository()}
}

func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAdministrator(cmd.Caller()); err != nil {
		return nil, err
	}

	next, err := shipment.ParseStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	s, err := h.shipments.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, errs.WrapDeadline("update shipment status", err)
	}

	previous := s.Status()
	if err = s.TransitionTo(next); err != nil {
		return nil, err
	}

	if err = h.shipments.UpdateStatus(ctx, s, previous); err != nil {
		return nil, errs.WrapDeadline("update shipment status", err)
	}

	return s, nil
}
