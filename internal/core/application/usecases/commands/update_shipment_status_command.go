package commands

import (
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand moves a shipment to a new lifecycle status. The
// label is kept raw and parsed after the administrator check.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	shipmentID kernel.UUID
	status     string

	guard guard.ConstructorGuard
}

func NewUpdateShipmentStatusCommand(
	caller identity.Caller,
	shipmentID kernel.UUID,
	status string,
) (UpdateShipmentStatusCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		caller:     caller,
		shipmentID: shipmentID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) Caller() identity.Caller {
	return c.caller
}

func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c UpdateShipmentStatusCommand) Status() string {
	return c.status
}
