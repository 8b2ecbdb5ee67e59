// Package api holds the HTTP contract: the embedded OpenAPI document, the
// wire types and the echo server interface with its parameter-binding
// wrapper, laid out the way oapi-codegen emits them.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const BearerAuthScopes = "bearerAuth.Scopes"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Message struct {
	Message string `json:"message"`
}

type NewShipment struct {
	Company     openapi_types.UUID `json:"company"`
	Destination string             `json:"destination"`
	Weight      float64            `json:"weight"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type Shipment struct {
	Id              openapi_types.UUID `json:"id"`
	CreatedBy       openapi_types.UUID `json:"createdBy"`
	OwnerEmail      *string            `json:"ownerEmail,omitempty"`
	Company         openapi_types.UUID `json:"company"`
	CompanyName     *string            `json:"companyName,omitempty"`
	Destination     string             `json:"destination"`
	DestinationName *string            `json:"destinationName,omitempty"`
	Weight          float64            `json:"weight"`
	Price           float64            `json:"price"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type User struct {
	Id            openapi_types.UUID `json:"id"`
	Email         string             `json:"email"`
	IsAdmin       bool               `json:"isAdmin"`
	ShipmentCount *int               `json:"shipmentCount,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type NewCompany struct {
	Name string `json:"name"`
}

type Company struct {
	Id            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	ShipmentCount *int               `json:"shipmentCount,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/shipments)
	ListShipments(ctx echo.Context) error
	// (POST /api/shipments)
	CreateShipment(ctx echo.Context) error
	// (GET /api/client/shipments)
	ListClientShipments(ctx echo.Context) error
	// (DELETE /api/shipments/{id})
	DeleteShipment(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /api/shipments/{id}/status)
	UpdateShipmentStatus(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/companies)
	ListCompanies(ctx echo.Context) error
	// (POST /api/companies)
	CreateCompany(ctx echo.Context) error
	// (GET /api/companies/{id}/shipments)
	ListCompanyShipments(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/auth/register)
	Register(ctx echo.Context) error
	// (POST /api/auth/login)
	Login(ctx echo.Context) error
	// (GET /api/users)
	ListUsers(ctx echo.Context) error
	// (PATCH /api/users/{id}/admin)
	ToggleUserAdmin(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /api/users/{id})
	DeleteUser(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListShipments(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.ListShipments(ctx)
}

func (w *ServerInterfaceWrapper) CreateShipment(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateShipment(ctx)
}

func (w *ServerInterfaceWrapper) ListClientShipments(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListClientShipments(ctx)
}

func (w *ServerInterfaceWrapper) DeleteShipment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.DeleteShipment(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateShipmentStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.UpdateShipmentStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) ListCompanies(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListCompanies(ctx)
}

func (w *ServerInterfaceWrapper) CreateCompany(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.CreateCompany(ctx)
}

func (w *ServerInterfaceWrapper) ListCompanyShipments(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.ListCompanyShipments(ctx, id)
}

func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	return w.Handler.Register(ctx)
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.ListUsers(ctx)
}

func (w *ServerInterfaceWrapper) ToggleUserAdmin(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.ToggleUserAdmin(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{"admin"})
	return w.Handler.DeleteUser(ctx, id)
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/shipments", wrapper.ListShipments)
	router.POST(baseURL+"/api/shipments", wrapper.CreateShipment)
	router.GET(baseURL+"/api/client/shipments", wrapper.ListClientShipments)
	router.DELETE(baseURL+"/api/shipments/:id", wrapper.DeleteShipment)
	router.PATCH(baseURL+"/api/shipments/:id/status", wrapper.UpdateShipmentStatus)
	router.GET(baseURL+"/api/companies", wrapper.ListCompanies)
	router.POST(baseURL+"/api/companies", wrapper.CreateCompany)
	router.GET(baseURL+"/api/companies/:id/shipments", wrapper.ListCompanyShipments)
	router.POST(baseURL+"/api/auth/register", wrapper.Register)
	router.POST(baseURL+"/api/auth/login", wrapper.Login)
	router.GET(baseURL+"/api/users", wrapper.ListUsers)
	router.PATCH(baseURL+"/api/users/:id/admin", wrapper.ToggleUserAdmin)
	router.DELETE(baseURL+"/api/users/:id", wrapper.DeleteUser)
}

//go:embed openapi.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The result is
// shared; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading Swagger: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			swaggerErr = fmt.Errorf("invalid Swagger: %w", err)
			return
		}
		swagger = doc
	})
	return swagger, swaggerErr
}
