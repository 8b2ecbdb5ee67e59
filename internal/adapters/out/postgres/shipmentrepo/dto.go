// Package shipmentrepo maps the Shipment aggregate to the shipments table.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is one row of shipments. The destination is split into a
// nullable company id and an address; exactly one of them is set.
type ShipmentDTO struct {
	ID                   uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CreatedBy            uuid.UUID  `gorm:"column:created_by;type:uuid;index"`
	CompanyID            uuid.UUID  `gorm:"column:company_id;type:uuid;index"`
	DestinationCompanyID *uuid.UUID `gorm:"column:destination_company_id;type:uuid"`
	DestinationAddress   string     `gorm:"column:destination_address"`
	Weight               float64    `gorm:"column:weight"`
	Price                float64    `gorm:"column:price"`
	Status               int        `gorm:"column:status;type:smallint"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var destCompanyID *uuid.UUID
	if id, ok := s.Destination().CompanyID(); ok {
		raw := id.Bytes()
		destCompanyID = &raw
	}

	return ShipmentDTO{
		ID:                   s.ID().Bytes(),
		CreatedBy:            s.CreatedBy().Bytes(),
		CompanyID:            s.CompanyID().Bytes(),
		DestinationCompanyID: destCompanyID,
		DestinationAddress:   s.Destination().Address(),
		Weight:               s.Weight(),
		Price:                s.Price(),
		Status:               int(s.Status()),
		CreatedAt:            s.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	var destCompanyID *kernel.UUID
	if dto.DestinationCompanyID != nil {
		parsed, idErr := kernel.UUIDFromBytes((*dto.DestinationCompanyID)[:])
		if idErr != nil {
			return nil, idErr
		}
		destCompanyID = &parsed
	}

	destination, err := kernel.RestoreDestination(destCompanyID, dto.DestinationAddress)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		createdBy,
		companyID,
		destination,
		dto.Weight,
		dto.Price,
		shipment.Status(dto.Status),
		dto.CreatedAt,
	)
}
