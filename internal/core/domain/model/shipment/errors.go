package shipment

import (
	"errors"

	"logistics/internal/pkg/errs"
)

var (
	// ErrInvalidWeight is returned for weights that are not finite or not above zero.
	ErrInvalidWeight = errs.NewValueIsInvalidError("weight")

	// ErrInvalidStatusValue is returned for labels outside the four known statuses.
	ErrInvalidStatusValue = errs.NewValueIsInvalidError("status")

	// ErrIllegalTransition is returned when the transition table has no such move.
	ErrIllegalTransition = errs.NewValueIsInvalidError("status transition")

	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)
