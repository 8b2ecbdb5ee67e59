// Package companyrepo maps the Company aggregate to the companies table.
package companyrepo

import (
	"time"

	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CompanyDTO struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Name        string         `gorm:"column:name;uniqueIndex:companies_name_key"`
	ShipmentIDs pq.StringArray `gorm:"column:shipment_ids;type:text[]"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(c *company.Company) CompanyDTO {
	ids := pq.StringArray{}
	for _, id := range c.ShipmentIDs() {
		ids = append(ids, id.String())
	}

	return CompanyDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		ShipmentIDs: ids,
		CreatedAt:   c.CreatedAt(),
	}
}

func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentIDs := make([]kernel.UUID, 0, len(dto.ShipmentIDs))
	for _, raw := range dto.ShipmentIDs {
		sid, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		shipmentIDs = append(shipmentIDs, sid)
	}

	return company.RestoreCompany(id, dto.Name, shipmentIDs, dto.CreatedAt)
}
