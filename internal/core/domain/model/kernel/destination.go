package kernel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// MaxDestinationLength bounds a free-form destination, in runes.
const MaxDestinationLength = 512

var ErrDestinationIsNotConstructed = errors.New(
	"destination must be created via NewCompanyDestination, NewCustomDestination or ParseDestination",
)

// Destination is where a shipment is headed: either a registered company or a
// free-form address for custom destinations. Exactly one of the two is set.
type Destination struct {
	companyID *UUID
	address   string

	guard guard.ConstructorGuard
}

// NewCompanyDestination points the shipment at a registered company.
func NewCompanyDestination(companyID UUID) (Destination, error) {
	if err := companyID.Validate(); err != nil {
		return Destination{}, err
	}
	return Destination{companyID: &companyID, guard: guard.NewConstructorGuard()}, nil
}

// NewCustomDestination accepts a free-form address. Surrounding whitespace is
// trimmed; the result must be non-empty and at most MaxDestinationLength runes.
func NewCustomDestination(address string) (Destination, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Destination{}, errs.NewValueIsRequiredError("destination")
	}
	if n := utf8.RuneCountInString(address); n > MaxDestinationLength {
		return Destination{}, errs.NewValueIsOutOfRangeError("destination length", n, 1, MaxDestinationLength)
	}
	return Destination{address: address, guard: guard.NewConstructorGuard()}, nil
}

// ParseDestination reads the wire form: a UUID names a company, anything else
// is a custom address.
func ParseDestination(raw string) (Destination, error) {
	if id, err := UUIDFromString(strings.TrimSpace(raw)); err == nil {
		return NewCompanyDestination(id)
	}
	return NewCustomDestination(raw)
}

// RestoreDestination rebuilds a destination from its persisted columns.
func RestoreDestination(companyID *UUID, address string) (Destination, error) {
	if companyID != nil {
		if address != "" {
			return Destination{}, errs.NewValueIsInvalidErrorWithCause("destination",
				fmt.Errorf("both company %s and address %q are set", companyID, address))
		}
		return NewCompanyDestination(*companyID)
	}
	return NewCustomDestination(address)
}

func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// CompanyID returns the destination company, if the destination is one.
func (d Destination) CompanyID() (UUID, bool) {
	if d.companyID == nil {
		return UUID{}, false
	}
	return *d.companyID, true
}

// Address returns the free-form address; empty for company destinations.
func (d Destination) Address() string {
	return d.address
}

// IsCustom reports whether the destination is a free-form address.
func (d Destination) IsCustom() bool {
	return d.companyID == nil
}

// String returns the wire form accepted by ParseDestination.
func (d Destination) String() string {
	if d.companyID != nil {
		return d.companyID.String()
	}
	return d.address
}

// IsEqual compares destinations by value.
func (d Destination) IsEqual(other Destination) bool {
	if d.companyID != nil || other.companyID != nil {
		return d.companyID != nil && other.companyID != nil && d.companyID.IsEqual(*other.companyID)
	}
	return d.address == other.address
}
