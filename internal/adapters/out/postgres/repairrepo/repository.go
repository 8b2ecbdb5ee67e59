package repairrepo

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/repair"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRepairRepository implements ports.RepairRepository.
type GormRepairRepository struct {
	db *gorm.DB
}

func NewGormRepairRepository(db *gorm.DB) *GormRepairRepository {
	return &GormRepairRepository{db: db}
}

func (r *GormRepairRepository) Add(ctx context.Context, aggregate *repair.Repair) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRepairRepository) ListPending(ctx context.Context, limit int) ([]*repair.Repair, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []RepairDTO
	if err := r.db.WithContext(ctx).
		Where("resolved_at IS NULL").
		Order("attempts, created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	repairs := make([]*repair.Repair, 0, len(dtos))
	for _, dto := range dtos {
		rep, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, rep)
	}

	return repairs, nil
}

func (r *GormRepairRepository) Resolve(ctx context.Context, id kernel.UUID) error {
	return r.update(ctx, id, map[string]any{"resolved_at": time.Now().UTC()})
}

func (r *GormRepairRepository) RecordFailure(ctx context.Context, id kernel.UUID, lastError string) error {
	return r.update(ctx, id, map[string]any{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastError,
	})
}

func (r *GormRepairRepository) update(ctx context.Context, id kernel.UUID, values map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RepairDTO{}).Where("id = ?", id.Bytes()).Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("repair", id.String())
	}
	return nil
}
