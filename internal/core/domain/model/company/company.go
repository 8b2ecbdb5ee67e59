// Package company provides the Company aggregate: a carrier or hub that
// shipments are routed through.
package company

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const MaxNameLength = 200

var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany or RestoreCompany")

// Company holds a unique name and the back-reference list of shipments routed
// through it.
type Company struct {
	id          kernel.UUID
	name        string
	shipmentIDs []kernel.UUID
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewCompany(id kernel.UUID, name string, createdAt time.Time) (*Company, error) {
	return RestoreCompany(id, name, nil, createdAt)
}

func RestoreCompany(id kernel.UUID, name string, shipmentIDs []kernel.UUID, createdAt time.Time) (*Company, error) {
	c := &Company{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}
	c.shipmentIDs = append([]kernel.UUID(nil), shipmentIDs...)

	return c, nil
}

func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

func (c *Company) ID() kernel.UUID {
	return c.id
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) CreatedAt() time.Time {
	return c.createdAt
}

// ShipmentIDs returns a copy of the back-reference list.
func (c *Company) ShipmentIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.shipmentIDs...)
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	c.name = name
	return nil
}
