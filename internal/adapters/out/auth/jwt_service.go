// Package auth implements the credential ports: HS256 bearer tokens and
// bcrypt password hashes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

var ErrSecretRequired = errors.New("jwt secret must be provided")

const issuer = "logistics"

// JWTService signs tokens whose subject is the user ID. Roles are not
// embedded; they are read from storage on every request.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *JWTService) Issue(userID kernel.UUID) (string, time.Time, error) {
	if err := userID.Validate(); err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *JWTService) Verify(token string) (kernel.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromString(claims.Subject)
}
