package http

import (
	"context"
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/identity"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler is a use case that produces a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Executor is a use case with no result.
type Executor[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers are the use cases behind the routes.
type Handlers struct {
	ListShipments        Handler[queries.ListShipmentsQuery, []queries.ShipmentView]
	ListCallerShipments  Handler[queries.ListCallerShipmentsQuery, []queries.ShipmentView]
	ListCompanyShipments Handler[queries.ListCompanyShipmentsQuery, []queries.ShipmentView]
	CreateShipment       Handler[commands.CreateShipmentCommand, *shipment.Shipment]
	UpdateShipmentStatus Handler[commands.UpdateShipmentStatusCommand, *shipment.Shipment]
	DeleteShipment       Executor[commands.DeleteShipmentCommand]

	ListCompanies Handler[queries.ListCompaniesQuery, []queries.CompanyView]
	CreateCompany Handler[commands.CreateCompanyCommand, *company.Company]

	RegisterUser Handler[commands.RegisterUserCommand, *user.User]
	Login        Handler[commands.LoginCommand, commands.LoginResult]
	ListUsers    Handler[queries.ListUsersQuery, []queries.UserView]
	ToggleAdmin  Handler[commands.ToggleAdminCommand, *user.User]
	DeleteUser   Executor[commands.DeleteUserCommand]
}

// Server implements api.ServerInterface on top of the application use cases.
// The caller is read from the request context. ValidateRequests rejects
// callers that lack the operation's role and the use cases check again.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "HTTPServer")}
}

// ListShipments handles GET /api/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	views, err := s.h.ListShipments.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery(callerOf(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shipmentViewsResponse(views))
}

// ListClientShipments handles GET /api/client/shipments.
func (s *Server) ListClientShipments(ctx echo.Context) error {
	views, err := s.h.ListCallerShipments.Handle(ctx.Request().Context(),
		queries.NewListCallerShipmentsQuery(callerOf(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shipmentViewsResponse(views))
}

// ListCompanyShipments handles GET /api/companies/{id}/shipments.
func (s *Server) ListCompanyShipments(ctx echo.Context, id openapi_types.UUID) error {
	query, err := queries.NewListCompanyShipmentsQuery(callerOf(ctx), toKernelID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListCompanyShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shipmentViewsResponse(views))
}

// CreateShipment handles POST /api/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body api.NewShipment
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(callerOf(ctx), toKernelID(body.Company), body.Destination, body.Weight)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, shipmentResponse(created))
}

// UpdateShipmentStatus handles PATCH /api/shipments/{id}/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body api.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(callerOf(ctx), toKernelID(id), body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shipmentResponse(updated))
}

// DeleteShipment handles DELETE /api/shipments/{id}.
func (s *Server) DeleteShipment(ctx echo.Context, id openapi_types.UUID) error {
	cmd, err := commands.NewDeleteShipmentCommand(callerOf(ctx), toKernelID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.Message{Message: "Shipment deleted"})
}

// ListCompanies handles GET /api/companies.
func (s *Server) ListCompanies(ctx echo.Context) error {
	views, err := s.h.ListCompanies.Handle(ctx.Request().Context(), queries.NewListCompaniesQuery(callerOf(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.Company, len(views))
	for i, v := range views {
		count := v.ShipmentCount
		response[i] = api.Company{Id: v.ID.Bytes(), Name: v.Name, ShipmentCount: &count, CreatedAt: v.CreatedAt}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCompany handles POST /api/companies.
func (s *Server) CreateCompany(ctx echo.Context) error {
	var body api.NewCompany
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCompanyCommand(callerOf(ctx), body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateCompany.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	count := len(created.ShipmentIDs())
	return ctx.JSON(http.StatusCreated, api.Company{
		Id:            created.ID().Bytes(),
		Name:          created.Name(),
		ShipmentCount: &count,
		CreatedAt:     created.CreatedAt(),
	})
}

// Register handles POST /api/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var body api.Credentials
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(body.Email, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	registered, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, userResponse(registered))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body api.Credentials
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.Session{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      userResponse(result.User),
	})
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	views, err := s.h.ListUsers.Handle(ctx.Request().Context(), queries.NewListUsersQuery(callerOf(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.User, len(views))
	for i, v := range views {
		count := v.ShipmentCount
		response[i] = api.User{
			Id:            v.ID.Bytes(),
			Email:         v.Email,
			IsAdmin:       v.IsAdmin,
			ShipmentCount: &count,
			CreatedAt:     v.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ToggleUserAdmin handles PATCH /api/users/{id}/admin.
func (s *Server) ToggleUserAdmin(ctx echo.Context, id openapi_types.UUID) error {
	cmd, err := commands.NewToggleAdminCommand(callerOf(ctx), toKernelID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.ToggleAdmin.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, userResponse(updated))
}

// DeleteUser handles DELETE /api/users/{id}.
func (s *Server) DeleteUser(ctx echo.Context, id openapi_types.UUID) error {
	cmd, err := commands.NewDeleteUserCommand(callerOf(ctx), toKernelID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.Message{Message: "User deleted"})
}

func callerOf(ctx echo.Context) identity.Caller {
	return identity.CallerFrom(ctx.Request().Context())
}

// toKernelID accepts the nil UUID too; the constructors reject it with a
// validation error.
func toKernelID(id openapi_types.UUID) kernel.UUID {
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return kid
}
