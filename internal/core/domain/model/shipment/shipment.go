package shipment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Shipment is the aggregate root of the shipment lifecycle.
//
// Invariants:
//   - id, owner and company are valid identifiers
//   - weight is finite and > 0; price is finite and >= 1; both are immutable
//   - status only changes through TransitionTo
type Shipment struct {
	id          kernel.UUID
	createdBy   kernel.UUID
	companyID   kernel.UUID
	destination kernel.Destination
	weight      float64
	price       float64
	status      Status
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in Preparing status. The price must come from
// the pricing engine; it is checked for plausibility only.
//
//	price, err := services.NewPricingEngine().Price(weight)
//	s, err := shipment.NewShipment(kernel.NewUUID(), callerID, companyID, dest, weight, price, time.Now())
func NewShipment(
	id, createdBy, companyID kernel.UUID,
	destination kernel.Destination,
	weight, price float64,
	createdAt time.Time,
) (*Shipment, error) {
	return RestoreShipment(id, createdBy, companyID, destination, weight, price, Preparing, createdAt)
}

// RestoreShipment rebuilds a shipment from persistence in any valid status.
func RestoreShipment(
	id, createdBy, companyID kernel.UUID,
	destination kernel.Destination,
	weight, price float64,
	status Status,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCreatedBy(createdBy),
		s.setCompanyID(companyID),
		s.setDestination(destination),
		s.setWeight(weight),
		s.setPrice(price),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}
	s.createdAt = createdAt.UTC()

	return s, nil
}

// ValidateWeight returns ErrInvalidWeight unless weight is finite and > 0.
func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("%w: %v is not a finite number greater than 0", ErrInvalidWeight, weight)
	}
	return nil
}

// Validate ensures the shipment was built by NewShipment or RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// CreatedBy returns the owning user.
func (s *Shipment) CreatedBy() kernel.UUID {
	return s.createdBy
}

// CompanyID returns the company the shipment is routed through.
func (s *Shipment) CompanyID() kernel.UUID {
	return s.companyID
}

func (s *Shipment) Destination() kernel.Destination {
	return s.destination
}

func (s *Shipment) Weight() float64 {
	return s.weight
}

func (s *Shipment) Price() float64 {
	return s.price
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// TransitionTo moves the shipment to next. On error the shipment is unchanged.
func (s *Shipment) TransitionTo(next Status) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCreatedBy(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	s.createdBy = userID
	return nil
}

func (s *Shipment) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company", err)
	}
	s.companyID = companyID
	return nil
}

func (s *Shipment) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 1 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is below the minimum price of 1", price))
	}
	s.price = price
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
