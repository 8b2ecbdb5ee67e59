package commands

import (
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand asks to register a shipment owned by the caller.
// There is no price input: the price is always derived from the weight.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(caller, companyID, "Warehouse 7, Dock B", 3.2)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//	s, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	caller      identity.Caller
	companyID   kernel.UUID
	destination kernel.Destination
	weight      float64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the identifiers and the destination. The
// destination is either a company id or a free-form address. Weight is checked
// by the pricing engine during Handle.
func NewCreateShipmentCommand(
	caller identity.Caller,
	companyID kernel.UUID,
	destination string,
	weight float64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		caller: caller,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setDestination(destination),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Caller() identity.Caller {
	return c.caller
}

func (c CreateShipmentCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c CreateShipmentCommand) Destination() kernel.Destination {
	return c.destination
}

func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

func (c *CreateShipmentCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *CreateShipmentCommand) setDestination(raw string) error {
	destination, err := kernel.ParseDestination(raw)
	if err != nil {
		return err
	}

	c.destination = destination
	return nil
}
