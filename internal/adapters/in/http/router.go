package http

import (
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const specPath = "/api/openapi.json"

type RouterConfig struct {
	RequestTimeout time.Duration
	Resolver       CallerResolver
	Logger         *slog.Logger
}

// NewRouter builds the echo instance: health and documentation routes, then
// the API behind logging, panic recovery, the request deadline,
// authentication and request validation.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validate, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(NewRequestLogger(cfg.Logger).Handle)
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(specPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL(specPath)))

	group := e.Group("", Timeout(cfg.RequestTimeout), Authenticate(cfg.Resolver), validate)
	api.RegisterHandlers(group, server)

	return e, nil
}
