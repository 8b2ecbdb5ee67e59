// Package mocks holds testify mocks of the ports used by application tests.
package mocks

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/repair"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type ShipmentRepository struct{ mock.Mock }

var _ ports.ShipmentRepository = (*ShipmentRepository)(nil)

func (m *ShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *ShipmentRepository) UpdateStatus(ctx context.Context, s *shipment.Shipment, expected shipment.Status) error {
	return m.Called(ctx, s, expected).Error(0)
}

func (m *ShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type UserRepository struct{ mock.Mock }

var _ ports.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserRepository) AppendShipment(ctx context.Context, userID, shipmentID kernel.UUID) error {
	return m.Called(ctx, userID, shipmentID).Error(0)
}

func (m *UserRepository) RemoveShipment(ctx context.Context, userID, shipmentID kernel.UUID) error {
	return m.Called(ctx, userID, shipmentID).Error(0)
}

type CompanyRepository struct{ mock.Mock }

var _ ports.CompanyRepository = (*CompanyRepository)(nil)

func (m *CompanyRepository) Add(ctx context.Context, c *company.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*company.Company)
	return c, args.Error(1)
}

func (m *CompanyRepository) AppendShipment(ctx context.Context, companyID, shipmentID kernel.UUID) error {
	return m.Called(ctx, companyID, shipmentID).Error(0)
}

func (m *CompanyRepository) RemoveShipment(ctx context.Context, companyID, shipmentID kernel.UUID) error {
	return m.Called(ctx, companyID, shipmentID).Error(0)
}

type RepairRepository struct{ mock.Mock }

var _ ports.RepairRepository = (*RepairRepository)(nil)

func (m *RepairRepository) Add(ctx context.Context, r *repair.Repair) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RepairRepository) ListPending(ctx context.Context, limit int) ([]*repair.Repair, error) {
	args := m.Called(ctx, limit)
	repairs, _ := args.Get(0).([]*repair.Repair)
	return repairs, args.Error(1)
}

func (m *RepairRepository) Resolve(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *RepairRepository) RecordFailure(ctx context.Context, id kernel.UUID, lastError string) error {
	return m.Called(ctx, id, lastError).Error(0)
}

type TokenService struct{ mock.Mock }

var _ ports.TokenService = (*TokenService)(nil)

func (m *TokenService) Issue(userID kernel.UUID) (string, time.Time, error) {
	args := m.Called(userID)
	expiresAt, _ := args.Get(1).(time.Time)
	return args.String(0), expiresAt, args.Error(2)
}

func (m *TokenService) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type PasswordHasher struct{ mock.Mock }

var _ ports.PasswordHasher = (*PasswordHasher)(nil)

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// Store bundles repository mocks behind ports.Store.
type Store struct {
	Shipments *ShipmentRepository
	Users     *UserRepository
	Companies *CompanyRepository
	Repairs   *RepairRepository
}

var _ ports.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		Shipments: new(ShipmentRepository),
		Users:     new(UserRepository),
		Companies: new(CompanyRepository),
		Repairs:   new(RepairRepository),
	}
}

func (s *Store) ShipmentRepository() ports.ShipmentRepository { return s.Shipments }
func (s *Store) UserRepository() ports.UserRepository         { return s.Users }
func (s *Store) CompanyRepository() ports.CompanyRepository   { return s.Companies }
func (s *Store) RepairRepository() ports.RepairRepository     { return s.Repairs }
