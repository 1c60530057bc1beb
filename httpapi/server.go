package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/goliatone/go-forum/auth"
	"github.com/goliatone/go-forum/middleware/jwtware"
	"github.com/goliatone/go-forum/repository"
)

// Server wires the REST routes over the auth core and the repositories
type Server struct {
	app    *fiber.App
	cfg    auth.Config
	users  repository.Users
	posts  repository.Posts
	auther auth.Authenticator
	tokens auth.TokenService
	guard  *auth.Guard
	logger auth.Logger
}

type Option func(*Server)

func WithLogger(l auth.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithAuthenticator overrides the authenticator, mostly for tests
func WithAuthenticator(a auth.Authenticator) Option {
	return func(s *Server) {
		s.auther = a
	}
}

// New builds the fiber application: generic HTTP plumbing first, then the
// public routes, then the identity scoped group behind the JWT middleware
// and the self access guard.
func New(cfg auth.Config, users repository.Users, posts repository.Posts, opts ...Option) *Server {
	provider := repository.NewIdentityProvider(users)
	auther := auth.NewAuthenticator(provider, cfg)

	s := &Server{
		cfg:    cfg,
		users:  users,
		posts:  posts,
		auther: auther,
		tokens: auther.TokenService(),
		logger: auth.DefaultLogger(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.guard = auth.NewGuard(provider,
		auth.WithGuardClaimsKey(cfg.GetContextKey()),
		auth.WithGuardLogger(s.logger),
	)

	s.app = fiber.New(fiber.Config{
		ErrorHandler: s.errorHandler,
	})

	s.routes()

	return s
}

// App exposes the underlying fiber application, used by tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given address
func (s *Server) Listen(address string) error {
	return s.app.Listen(address)
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) routes() {
	s.app.Use(helmet.New())
	s.app.Use(cors.New())
	s.app.Use(requestid.New())
	s.app.Use(logger.New())
	s.app.Use(compress.New())
	s.app.Use(recover.New())

	v1 := s.app.Group("/api/v1")

	v1.Get("/health-check", s.HealthCheck)
	v1.Post("/auth/login", s.Login)
	v1.Post("/users", s.Signup)

	protected := v1.Group("/users/:userId", s.protect(), s.guard.RequireSelf())
	protected.Get("/", s.GetUser)
	protected.Put("/", s.UpdateUser)
	protected.Delete("/", s.DeleteUser)
	protected.Get("/posts", s.UserPosts)

	s.app.Use(s.notFound)
}

func (s *Server) protect() fiber.Handler {
	return jwtware.New(jwtware.Config{
		ContextKey:  s.cfg.GetContextKey(),
		TokenLookup: s.cfg.GetTokenLookup(),
		AuthScheme:  s.cfg.GetAuthScheme(),
		TokenValidator: jwtware.ValidateFunc(func(raw string) (jwtware.AuthClaims, error) {
			return s.tokens.Validate(raw)
		}),
	})
}

// HealthCheck answers a plain OK so load balancers stay cheap
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func (s *Server) notFound(c *fiber.Ctx) error {
	return respond(c, fiber.StatusNotFound, "Not found", nil, "")
}
