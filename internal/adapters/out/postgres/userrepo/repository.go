package userrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add stores a new account. The shipment list starts out as stored on the
// aggregate and is only changed by AppendShipment and RemoveShipment after.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("email", aggregate.Email(), err)
		}
		return err
	}

	return nil
}

// Update writes the role and credential only; the shipment list is left to
// the single-statement list operations.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"is_admin":      aggregate.IsAdmin(),
			"password_hash": aggregate.PasswordHash(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	return nil
}

func (r *GormUserRepository) AppendShipment(ctx context.Context, userID, shipmentID kernel.UUID) error {
	sid := shipmentID.String()
	return r.exec(ctx, userID, `
		UPDATE users
		SET shipment_ids = CASE
			WHEN ?::text = ANY(shipment_ids) THEN shipment_ids
			ELSE array_append(shipment_ids, ?::text)
		END
		WHERE id = ?`, sid, sid, userID.String())
}

func (r *GormUserRepository) RemoveShipment(ctx context.Context, userID, shipmentID kernel.UUID) error {
	return r.exec(ctx, userID, `
		UPDATE users
		SET shipment_ids = array_remove(shipment_ids, ?::text)
		WHERE id = ?`, shipmentID.String(), userID.String())
}

func (r *GormUserRepository) exec(ctx context.Context, userID kernel.UUID, sql string, args ...any) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(sql, args...)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", userID.String())
	}
	return nil
}
