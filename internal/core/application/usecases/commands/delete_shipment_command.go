package commands

import (
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand removes a shipment and its back-references.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShipmentCommand(caller identity.Caller, shipmentID kernel.UUID) (DeleteShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		caller:     caller,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

func (c DeleteShipmentCommand) Caller() identity.Caller {
	return c.caller
}

func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
