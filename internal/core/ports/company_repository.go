package ports

import (
	"context"

	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
)

// CompanyRepository persists companies and their shipment list.
type CompanyRepository interface {
	// Add persists a new company. A taken name yields errs.ConflictError.
	Add(ctx context.Context, c *company.Company) error

	// Get returns the company or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)


	// AppendShipment adds shipmentID to the company's list unless already present.
	// Returns errs.ObjectNotFoundError if the company does not exist.
	AppendShipment(ctx context.Context, companyID, shipmentID kernel.UUID) error

	// RemoveShipment drops shipmentID from the company's list; absent ids are a no-op.
	// Returns errs.ObjectNotFoundError if the company does not exist.
	RemoveShipment(ctx context.Context, companyID, shipmentID kernel.UUID) error
}
