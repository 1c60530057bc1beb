package auth

import (
	"context"
	"fmt"
)

// Auther is the username/password authenticator. It owns no state beyond
// its collaborators; every login is a pure read followed by a token mint.
type Auther struct {
	provider     IdentityProvider
	tokenService TokenService
	logger       Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, cfg Config) *Auther {
	tokenService := NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpirationDays(),
		defLogger{},
	)

	return &Auther{
		provider:     provider,
		tokenService: tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithTokenService overrides the token service, mostly for tests
func (s *Auther) WithTokenService(tokenService TokenService) *Auther {
	s.tokenService = tokenService
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login resolves the identity by username, verifies the password, and on
// success issues a token. Every credential failure, unknown username,
// missing password, or mismatch, returns the same ErrInvalidCredentials so
// a caller cannot tell which factor was wrong. A missing username is a
// broken caller and surfaces as an internal error instead.
func (s *Auther) Login(ctx context.Context, username, password string) (Identity, string, error) {
	if username == "" {
		s.logger.Error("Login called without a username")
		return nil, "", ErrMissingUsername
	}

	identity, err := s.provider.FindIdentityByUsername(ctx, username)
	if err != nil && !IsIdentityNotFoundError(err) {
		s.logger.Error("Login identity lookup error", "error", err)
		return nil, "", fmt.Errorf("login lookup: %w", err)
	}

	// A failed lookup does not short circuit: we fall through to the same
	// uniform rejection as a password mismatch.
	if password == "" || identity == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, identity.PasswordHash()); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return nil, "", fmt.Errorf("login token: %w", err)
	}

	return identity, token, nil
}

// Verify interface compliance
var _ Authenticator = (*Auther)(nil)
