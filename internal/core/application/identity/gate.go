// Package identity resolves bearer credentials into a Caller and checks
// capabilities. Every use case goes through the same two checks, so
// authorization is decided in one place.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Caller is the resolved identity of a request. The zero value is an
// anonymous caller.
type Caller struct {
	UserID  kernel.UUID
	IsAdmin bool
}

func (c Caller) IsAuthenticated() bool {
	return c.UserID.Validate() == nil
}

// Gate turns bearer tokens into callers.
type Gate struct {
	tokens ports.TokenService
	users  ports.UserRepository
}

func NewGate(tokens ports.TokenService, users ports.UserRepository) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Resolve verifies the token and loads the named user. The administrator flag
// comes from the stored user, not from the token, so role changes apply to
// tokens already issued. A "Bearer" scheme word is accepted and stripped.
func (g *Gate) Resolve(ctx context.Context, bearerToken string) (Caller, error) {
	parts := strings.Fields(bearerToken)
	if len(parts) > 0 && strings.EqualFold(parts[0], "bearer") {
		parts = parts[1:]
	}
	switch len(parts) {
	case 0:
		return Caller{}, fmt.Errorf("%w: missing token", ErrUnauthenticated)
	case 1:
	default:
		return Caller{}, fmt.Errorf("%w: malformed authorization header", ErrUnauthenticated)
	}
	token := parts[0]

	userID, err := g.tokens.Verify(token)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	u, err := g.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Caller{}, fmt.Errorf("%w: user no longer exists", ErrUnauthenticated)
		}
		return Caller{}, errs.WrapDeadline("resolve caller", err)
	}

	return Caller{UserID: u.ID(), IsAdmin: u.IsAdmin()}, nil
}

func RequireAuthenticated(c Caller) error {
	if !c.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// RequireAdministrator fails with ErrUnauthenticated for anonymous callers
// and ErrForbidden for authenticated non-administrators.
func RequireAdministrator(c Caller) error {
	if err := RequireAuthenticated(c); err != nil {
		return err
	}
	if !c.IsAdmin {
		return fmt.Errorf("%w: administrator role required", ErrForbidden)
	}
	return nil
}

type callerKey struct{}

// WithCaller stores c in ctx for handlers downstream of authentication.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller stored by WithCaller or an anonymous caller.
func CallerFrom(ctx context.Context) Caller {
	c, _ := ctx.Value(callerKey{}).(Caller)
	return c
}
