package companyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCompanyRepository implements ports.CompanyRepository.
type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("company name", aggregate.Name(), err)
		}
		return err
	}

	return nil
}

func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AppendShipment is a set-union on the list: appending twice leaves one entry.
func (r *GormCompanyRepository) AppendShipment(ctx context.Context, companyID, shipmentID kernel.UUID) error {
	sid := shipmentID.String()
	return r.exec(ctx, companyID, `
		UPDATE companies
		SET shipment_ids = CASE
			WHEN ?::text = ANY(shipment_ids) THEN shipment_ids
			ELSE array_append(shipment_ids, ?::text)
		END
		WHERE id = ?`, sid, sid, companyID.String())
}

func (r *GormCompanyRepository) RemoveShipment(ctx context.Context, companyID, shipmentID kernel.UUID) error {
	return r.exec(ctx, companyID, `
		UPDATE companies
		SET shipment_ids = array_remove(shipment_ids, ?::text)
		WHERE id = ?`, shipmentID.String(), companyID.String())
}

func (r *GormCompanyRepository) exec(ctx context.Context, companyID kernel.UUID, sql string, args ...any) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(sql, args...)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("company", companyID.String())
	}
	return nil
}
