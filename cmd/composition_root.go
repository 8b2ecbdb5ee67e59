package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/auth"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/identity"
	"logistics/internal/core/application/integrity"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	store       *postgres.GormStore
	logger      *slog.Logger
	tokens      *auth.JWTService
	hasher      *auth.BcryptHasher
	coordinator *integrity.Coordinator
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	store := postgres.NewGormStore(gormDB)
	return CompositionRoot{
		cfg:         cfg,
		gormDB:      gormDB,
		store:       store,
		logger:      logger,
		tokens:      tokens,
		hasher:      auth.NewBcryptHasher(),
		coordinator: integrity.NewCoordinator(store, logger),
	}, nil
}

func (c *CompositionRoot) CreateGate() *identity.Gate {
	return identity.NewGate(c.tokens, c.store.UserRepository())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.store, services.NewPricingEngine(), c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.store)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateCreateCompanyCommandHandler() commands.CreateCompanyCommandHandler {
	return commands.NewCreateCompanyCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.store, c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.store, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateToggleAdminCommandHandler() commands.ToggleAdminCommandHandler {
	return commands.NewToggleAdminCommandHandler(c.store)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.store)
}

func (c *CompositionRoot) CreateReconcileReferencesCommandHandler() commands.ReconcileReferencesCommandHandler {
	return commands.NewReconcileReferencesCommandHandler(c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCallerShipmentsQueryHandler() queries.ListCallerShipmentsQueryHandler {
	return queries.NewListCallerShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCompanyShipmentsQueryHandler() queries.ListCompanyShipmentsQueryHandler {
	return queries.NewListCompanyShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCompaniesQueryHandler() queries.ListCompaniesQueryHandler {
	return queries.NewListCompaniesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the echo router.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		ListShipments:        c.CreateListShipmentsQueryHandler(),
		ListCallerShipments:  c.CreateListCallerShipmentsQueryHandler(),
		ListCompanyShipments: c.CreateListCompanyShipmentsQueryHandler(),
		CreateShipment:       c.CreateCreateShipmentCommandHandler(),
		UpdateShipmentStatus: c.CreateUpdateShipmentStatusCommandHandler(),
		DeleteShipment:       c.CreateDeleteShipmentCommandHandler(),
		ListCompanies:        c.CreateListCompaniesQueryHandler(),
		CreateCompany:        c.CreateCreateCompanyCommandHandler(),
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		Login:                c.CreateLoginCommandHandler(),
		ListUsers:            c.CreateListUsersQueryHandler(),
		ToggleAdmin:          c.CreateToggleAdminCommandHandler(),
		DeleteUser:           c.CreateDeleteUserCommandHandler(),
	}, c.logger)

	return httpin.NewRouter(server, httpin.RouterConfig{
		RequestTimeout: c.cfg.RequestTimeout,
		Resolver:       c.CreateGate(),
		Logger:         c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileReferencesCommandHandler(), jobs.Config{
		ReconcileSchedule:  c.cfg.ReconcileSchedule,
		ReconcileBatchSize: c.cfg.ReconcileBatchSize,
		ReconcileTimeout:   c.cfg.ReconcileTimeout,
	}, c.logger)
}
