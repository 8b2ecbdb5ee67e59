package ports

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// TokenService issues and verifies bearer tokens naming a user.
type TokenService interface {
	// Issue returns a signed token for userID and its expiry.
	Issue(userID kernel.UUID) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry and returns the subject.
	Verify(token string) (kernel.UUID, error)
}

// PasswordHasher hashes and checks password credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
