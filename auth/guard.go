package auth

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultClaimsKey is where the JWT middleware leaves validated claims
	DefaultClaimsKey = "claims"
	// DefaultIdentityKey is where RequireSelf leaves the resolved identity
	DefaultIdentityKey = "identity"
	// DefaultUserParam is the route parameter naming the target identity
	DefaultUserParam = "userId"
)

// Guard enforces the self access rule on identity scoped routes
type Guard struct {
	provider     IdentityProvider
	claimsKey    string
	identityKey  string
	userParam    string
	logger       Logger
	errorHandler func(c *fiber.Ctx, err error) error
}

type GuardOption func(*Guard)

func WithGuardLogger(logger Logger) GuardOption {
	return func(g *Guard) {
		g.logger = logger
	}
}

func WithGuardClaimsKey(key string) GuardOption {
	return func(g *Guard) {
		g.claimsKey = key
	}
}

func WithGuardUserParam(param string) GuardOption {
	return func(g *Guard) {
		g.userParam = param
	}
}

func WithGuardErrorHandler(handler func(c *fiber.Ctx, err error) error) GuardOption {
	return func(g *Guard) {
		g.errorHandler = handler
	}
}

// NewGuard creates a self access guard backed by the given identity store
func NewGuard(provider IdentityProvider, opts ...GuardOption) *Guard {
	g := &Guard{
		provider:    provider,
		claimsKey:   DefaultClaimsKey,
		identityKey: DefaultIdentityKey,
		userParam:   DefaultUserParam,
		logger:      defLogger{},
	}

	g.errorHandler = g.defaultErrorHandler

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// RequireSelf returns the middleware enforcing that the token's subject is
// the identity addressed by the route. It expects the JWT middleware to
// have already validated the token and stored its claims; a request that
// reaches this point without claims is treated as unauthenticated.
//
// Ordering matters: the subject is resolved against the live store before
// the path comparison, so a token whose subject no longer exists (or was
// soft deleted) is a 401, while a live subject acting on someone else's
// resource is a 403.
func (g *Guard) RequireSelf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(g.claimsKey).(AuthClaims)
		if !ok || claims == nil {
			return g.errorHandler(c, ErrUnableToDecodeToken)
		}

		identity, err := g.provider.FindIdentityByID(c.UserContext(), claims.Subject())
		if err != nil {
			if !IsIdentityNotFoundError(err) {
				g.logger.Error("RequireSelf identity lookup error", "error", err)
			}
			return g.errorHandler(c, ErrIdentityNotFound)
		}

		if identity.ID() != c.Params(g.userParam) {
			return g.errorHandler(c, ErrForbidden)
		}

		c.Locals(g.identityKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the identity attached by RequireSelf, if any
func IdentityFromCtx(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(DefaultIdentityKey).(Identity)
	return identity, ok
}

func (g *Guard) defaultErrorHandler(c *fiber.Ctx, err error) error {
	if IsForbiddenError(err) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"statusCode": fiber.StatusForbidden,
			"message":    "Forbidden",
		})
	}

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"statusCode": fiber.StatusUnauthorized,
		"message":    "Unauthorized",
	})
}
