package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-forum/repository"
)

// userCarrier lets us unwrap the persisted record from an identity
// without the auth core knowing about repository types.
type userCarrier interface {
	User() *repository.User
}

// Login authenticates username+password and answers the user plus a fresh
// token. Credential failures are uniform by design; only validation
// errors name a field.
func (s *Server) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		s.logger.Debug("Login body parse error", "error", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil, "")
	}

	if err := payload.Validate(); err != nil {
		return s.respondError(c, err)
	}

	identity, token, err := s.auther.Login(c.UserContext(), payload.Username, payload.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	var user any = identity
	if carrier, ok := identity.(userCarrier); ok {
		user = carrier.User()
	}

	return respond(c, fiber.StatusOK, "successfully logged in", user, token)
}
