package companyrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/companyrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CompanyRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *companyrepo.GormCompanyRepository
}

func (suite *CompanyRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CompanyRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(context.Background(), "companies"))
	suite.repository = companyrepo.NewGormCompanyRepository(suite.database.DB)
}

func (suite *CompanyRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *CompanyRepositoryIntegrationTestSuite) addCompany(name string) *company.Company {
	c, err := company.NewCompany(kernel.NewUUID(), name, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CompanyRepositoryIntegrationTestSuite) TestAddAndGet() {
	c := suite.addCompany("Maersk")

	got, err := suite.repository.Get(context.Background(), c.ID())

	suite.Require().NoError(err)
	suite.Equal("Maersk", got.Name())
	suite.Empty(got.ShipmentIDs())
}

func (suite *CompanyRepositoryIntegrationTestSuite) TestAdd_DuplicateName_Conflict() {
	suite.addCompany("Maersk")
	dup, err := company.NewCompany(kernel.NewUUID(), "Maersk", time.Now())
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Add(context.Background(), dup), errs.ErrConflict)
}

func (suite *CompanyRepositoryIntegrationTestSuite) TestGet_Missing_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CompanyRepositoryIntegrationTestSuite) TestAppendAndRemove_AreIdempotent() {
	ctx := context.Background()
	c := suite.addCompany("Maersk")
	id := kernel.NewUUID()

	suite.Require().NoError(suite.repository.AppendShipment(ctx, c.ID(), id))
	suite.Require().NoError(suite.repository.AppendShipment(ctx, c.ID(), id))
	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{id}, got.ShipmentIDs())

	suite.Require().NoError(suite.repository.RemoveShipment(ctx, c.ID(), id))
	suite.Require().NoError(suite.repository.RemoveShipment(ctx, c.ID(), id))
	got, err = suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Empty(got.ShipmentIDs())
}

func (suite *CompanyRepositoryIntegrationTestSuite) TestAppend_MissingCompany_NotFound() {
	err := suite.repository.AppendShipment(context.Background(), kernel.NewUUID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCompanyRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepositoryIntegrationTestSuite))
}
