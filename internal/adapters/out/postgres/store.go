package postgres

import (
	"logistics/internal/adapters/out/postgres/companyrepo"
	"logistics/internal/adapters/out/postgres/repairrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// GormStore hands out repositories sharing one connection pool. It opens no
// transactions: each repository call commits on its own.
//
// Example:
//
//	db, err := postgres.Open(dsn, logger.Warn)
//	store := postgres.NewGormStore(db)
//	err = store.ShipmentRepository().Add(ctx, s)
type GormStore struct {
	db *gorm.DB
}

var _ ports.Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(s.db)
}

func (s *GormStore) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(s.db)
}

func (s *GormStore) CompanyRepository() ports.CompanyRepository {
	return companyrepo.NewGormCompanyRepository(s.db)
}

func (s *GormStore) RepairRepository() ports.RepairRepository {
	return repairrepo.NewGormRepairRepository(s.db)
}

// DB exposes the pool for query handlers, which read with raw SQL.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}
