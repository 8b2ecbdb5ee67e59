// Package userrepo maps the User aggregate to the users table.
package userrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserDTO struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Email        string         `gorm:"column:email;uniqueIndex:users_email_key"`
	PasswordHash string         `gorm:"column:password_hash"`
	IsAdmin      bool           `gorm:"column:is_admin"`
	ShipmentIDs  pq.StringArray `gorm:"column:shipment_ids;type:text[]"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	ids := pq.StringArray{}
	for _, id := range u.ShipmentIDs() {
		ids = append(ids, id.String())
	}

	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		IsAdmin:      u.IsAdmin(),
		ShipmentIDs:  ids,
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
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

	return user.RestoreUser(id, dto.Email, dto.PasswordHash, dto.IsAdmin, shipmentIDs, dto.CreatedAt)
}
