// Package repairrepo stores pending back-reference repairs in reference_repairs.
package repairrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/repair"

	"github.com/google/uuid"
)

type RepairDTO struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ShipmentID uuid.UUID  `gorm:"column:shipment_id;type:uuid"`
	Target     string     `gorm:"column:target"`
	TargetID   uuid.UUID  `gorm:"column:target_id;type:uuid"`
	Action     string     `gorm:"column:action"`
	Reason     string     `gorm:"column:reason"`
	Attempts   int        `gorm:"column:attempts"`
	LastError  string     `gorm:"column:last_error"`
	ResolvedAt *time.Time `gorm:"column:resolved_at"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (RepairDTO) TableName() string {
	return "reference_repairs"
}

func fromDomain(r *repair.Repair) RepairDTO {
	return RepairDTO{
		ID:         r.ID().Bytes(),
		ShipmentID: r.ShipmentID().Bytes(),
		Target:     string(r.Target()),
		TargetID:   r.TargetID().Bytes(),
		Action:     string(r.Action()),
		Reason:     r.Reason(),
		Attempts:   r.Attempts(),
		CreatedAt:  r.CreatedAt(),
	}
}

func toDomain(dto RepairDTO) (*repair.Repair, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	targetID, err := kernel.UUIDFromBytes(dto.TargetID[:])
	if err != nil {
		return nil, err
	}

	return repair.RestoreRepair(
		id,
		shipmentID,
		repair.Target(dto.Target),
		targetID,
		repair.Action(dto.Action),
		dto.Reason,
		dto.Attempts,
		dto.CreatedAt,
	)
}
