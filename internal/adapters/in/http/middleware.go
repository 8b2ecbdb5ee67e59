package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"logistics/internal/core/application/identity"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

const adminScope = "admin"

// CallerResolver turns an Authorization header into a caller.
type CallerResolver interface {
	Resolve(ctx context.Context, bearerToken string) (identity.Caller, error)
}

// Authenticate resolves the bearer token, when one is sent, and stores the
// caller on the request context. Requests without a token proceed as
// anonymous; the operation's security requirement decides whether that is
// enough.
func Authenticate(resolver CallerResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			req := c.Request()
			caller, err := resolver.Resolve(req.Context(), header)
			if err != nil {
				return err
			}

			c.SetRequest(req.WithContext(identity.WithCaller(req.Context(), caller)))
			return next(c)
		}
	}
}

// Timeout bounds every request with a deadline. Storage calls that run past
// it fail with a timeout error.
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// ValidateRequests checks requests for documented routes against the OpenAPI
// document. Undocumented routes pass through.
func ValidateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: authorizeOperation,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				if authErr := securityError(err); authErr != nil {
					return authErr
				}
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(c)
		}
	}, nil
}

// authorizeOperation checks the caller resolved by Authenticate against the
// operation's bearerAuth requirement. The admin scope marks administrator
// operations.
func authorizeOperation(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	caller := identity.CallerFrom(ctx)
	if slices.Contains(input.Scopes, adminScope) {
		return identity.RequireAdministrator(caller)
	}
	return identity.RequireAuthenticated(caller)
}

// securityError returns the identity error behind a failed security
// requirement, or nil when validation failed for another reason.
func securityError(err error) error {
	var secErr *openapi3filter.SecurityRequirementsError
	if !errors.As(err, &secErr) {
		return nil
	}
	for _, e := range secErr.Errors {
		if errors.Is(e, identity.ErrForbidden) || errors.Is(e, identity.ErrUnauthenticated) {
			return e
		}
	}
	return identity.ErrUnauthenticated
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return "invalid request"
	}

	reason := reqErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if reason == "" && schemaErr.Origin != nil {
			reason = schemaErr.Origin.Error()
		}
		if path := schemaErr.JSONPointer(); len(path) > 0 {
			reason = strings.Join(path, ".") + ": " + reason
		}
	}
	if reason == "" {
		reason = "invalid value"
	}

	switch {
	case reqErr.Parameter != nil:
		return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, reason)
	case reqErr.RequestBody != nil:
		return "request body: " + reason
	default:
		return reason
	}
}

// RequestLogger logs one line per request, at warn for 4xx and error for 5xx.
type RequestLogger struct {
	logger *slog.Logger
}

func NewRequestLogger(logger *slog.Logger) *RequestLogger {
	return &RequestLogger{logger: logger.With("component", "HTTPRequestLogger")}
}

func (m *RequestLogger) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Render now so the logged status is the one sent.
			c.Error(err)
		}
		m.log(c, start, err)
		return nil
	}
}

func (m *RequestLogger) log(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	if res.Status >= http.StatusBadRequest {
		level = slog.LevelWarn
	}
	if res.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	m.logger.LogAttrs(context.WithoutCancel(req.Context()), level, "HTTP Request", fields...)
}
