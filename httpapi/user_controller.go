package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-forum/auth"
	"github.com/goliatone/go-forum/repository"
)

// Signup creates a new user and issues a token so the client is logged in
// right away. Uniqueness is checked before persistence, username first,
// and conflicts name the offending field.
func (s *Server) Signup(c *fiber.Ctx) error {
	payload := new(SignupRequest)

	if err := c.BodyParser(payload); err != nil {
		s.logger.Debug("Signup body parse error", "error", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil, "")
	}

	if err := payload.Validate(); err != nil {
		return s.respondError(c, err)
	}

	user, err := s.users.Register(c.UserContext(), &repository.User{
		Name:     payload.Name,
		Username: payload.Username,
		Phone:    payload.Phone,
		Email:    payload.Email,
	}, payload.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	token, err := s.tokens.Generate(repository.NewIdentityFromUser(user))
	if err != nil {
		return s.respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "success", user, token)
}

// GetUser answers the profile of the path addressed user. The guard has
// already resolved the record, so this is a read of the request locals.
func (s *Server) GetUser(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return s.respondError(c, auth.ErrIdentityNotFound)
	}

	var user any = identity
	if carrier, ok := identity.(userCarrier); ok {
		user = carrier.User()
	}

	return respond(c, fiber.StatusOK, "success", user, "")
}

// UpdateUser applies the mutable profile fields to the addressed user
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	payload := new(UpdateRequest)

	if err := c.BodyParser(payload); err != nil {
		s.logger.Debug("UpdateUser body parse error", "error", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil, "")
	}

	if err := payload.Validate(); err != nil {
		return s.respondError(c, err)
	}

	user, err := s.users.Update(c.UserContext(), c.Params("userId"), repository.UserUpdate{
		Name:  payload.Name,
		Phone: payload.Phone,
		Email: payload.Email,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "success", user, "")
}

// DeleteUser soft deletes the addressed user. The record stays in the
// store but becomes invisible to authentication and resolution, and its
// username and email are freed for reuse.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	user, err := s.users.SoftDelete(c.UserContext(), c.Params("userId"))
	if err != nil {
		return s.respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "success", user, "")
}

// UserPosts lists the addressed user's posts, newest first, excluding
// deleted ones
func (s *Server) UserPosts(c *fiber.Ctx) error {
	posts, err := s.posts.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return s.respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "success", posts, "")
}
