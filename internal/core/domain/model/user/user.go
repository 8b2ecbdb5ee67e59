// Package user provides the User aggregate: an account that owns shipments and
// may hold the administrator role.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an account. The shipment list is a denormalized back-reference
// index maintained by the integrity coordinator; it is read-only here.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	isAdmin      bool
	shipmentIDs  []kernel.UUID
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a client (non-administrator) account with no shipments.
// The email is trimmed and lower-cased.
func NewUser(id kernel.UUID, email, passwordHash string, createdAt time.Time) (*User, error) {
	return RestoreUser(id, email, passwordHash, false, nil, createdAt)
}

// RestoreUser rebuilds a user from persistence.
func RestoreUser(
	id kernel.UUID,
	email, passwordHash string,
	isAdmin bool,
	shipmentIDs []kernel.UUID,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		isAdmin:   isAdmin,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}
	u.shipmentIDs = append([]kernel.UUID(nil), shipmentIDs...)

	return u, nil
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ShipmentIDs returns a copy of the owned-shipment back-references.
func (u *User) ShipmentIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), u.shipmentIDs...)
}

// ToggleAdmin flips the administrator flag and returns the new value.
func (u *User) ToggleAdmin() bool {
	u.isAdmin = !u.isAdmin
	return u.isAdmin
}

// Promote grants the administrator role.
func (u *User) Promote() {
	u.isAdmin = true
}

// ChangePasswordHash replaces the stored credential.
func (u *User) ChangePasswordHash(hash string) error {
	return u.setPasswordHash(hash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if at := strings.IndexByte(email, '@'); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}
