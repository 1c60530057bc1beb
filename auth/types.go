package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes of an identity
type Identity interface {
	ID() string
	Username() string
	Email() string
	PasswordHash() string
}

// IdentityProvider ensure we have a store to retrieve auth identities.
// Implementations must treat soft deleted records as nonexistent: a lookup
// for a deleted identity returns ErrIdentityNotFound.
type IdentityProvider interface {
	FindIdentityByUsername(ctx context.Context, username string) (Identity, error)
	FindIdentityByID(ctx context.Context, id string) (Identity, error)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, username, password string) (Identity, string, error)
}

// TokenService handles JWT issuance and validation
type TokenService interface {
	Generate(identity Identity) (string, error)
	SignClaims(claims *JWTClaims) (string, error)
	Validate(tokenString string) (AuthClaims, error)
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetTokenExpirationDays() int
	GetPasswordHashCost() int
	GetContextKey() string
	GetTokenLookup() string
	GetAuthScheme() string
}

// DefaultLogger returns the fallback logger used when none is injected
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
