// Package jwtmw issues the login tokens and verifies them on authenticated routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	claimSubject  = "sub"
	claimUsername = "username"
	claimIssuer   = "iss"
	claimExpires  = "exp"
	claimIssued   = "iat"

	// Issuer is stamped on every token and required by AuthRequired.
	Issuer = "quiz_backend"
)

// ErrEmptySecret is returned when a generator or middleware is built without a signing key.
var ErrEmptySecret = errors.New("jwt secret must not be empty")

// generator signs HS256 tokens for logged-in users.
type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) (*generator, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// GenerateToken creates a signed JWT whose subject is userID.
func (g *generator) GenerateToken(userID uint, username string) (string, error) {
	now := g.now()
	claims := jwt.MapClaims{
		claimSubject:  userID,
		claimUsername: username,
		claimIssuer:   Issuer,
		claimExpires:  now.Add(g.expiration).Unix(),
		claimIssued:   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
