package http

import (
	"errors"
	"fmt"
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/identity"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an application error to its HTTP status. Unknown errors are
// internal.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, identity.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, identity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) api.Error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		return api.Error{Code: code, Message: "Internal server error"}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return api.Error{Code: code, Message: fmt.Sprint(httpErr.Message)}
	}
	return api.Error{Code: code, Message: err.Error()}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	body := errorBody(err)
	if body.Code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(body.Code, body)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, api.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders errors returned by middleware and routing in the same
// body shape the handlers use.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	body := errorBody(err)
	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(body.Code)
		return
	}
	_ = ctx.JSON(body.Code, body)
}
