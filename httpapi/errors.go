package httpapi

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-forum/auth"
	"github.com/goliatone/go-forum/repository"
)

// respondError is the single boundary where core errors become HTTP
// responses. Nothing below this layer writes status codes, and no
// internal detail (driver errors, stack traces) crosses it.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrUsernameTaken),
		errors.Is(err, repository.ErrEmailTaken):
		return respond(c, fiber.StatusBadRequest, err.Error(), nil, "")

	case auth.IsInvalidCredentialsError(err):
		return respond(c, fiber.StatusUnauthorized, err.Error(), nil, "")

	case auth.IsForbiddenError(err):
		return respond(c, fiber.StatusForbidden, "Forbidden", nil, "")

	case auth.IsTokenDecodeError(err):
		return respond(c, fiber.StatusUnauthorized, "Unauthorized", nil, "")

	case auth.IsIdentityNotFoundError(err):
		return respond(c, fiber.StatusNotFound, "No such user exists!", nil, "")
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return respondFieldErrors(c, fiber.StatusBadRequest, "Invalid fields", fieldErrs)
	}

	s.logger.Error("unhandled request error", "error", err)
	return respond(c, fiber.StatusInternalServerError, "Internal server error", nil, "")
}

// errorHandler backs fiber's centralized error handling for errors that
// escape the handlers, including routing level ones.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		message := fiberErr.Message
		if fiberErr.Code >= fiber.StatusInternalServerError {
			message = "Internal server error"
		}
		return respond(c, fiberErr.Code, message, nil, "")
	}

	return s.respondError(c, err)
}
