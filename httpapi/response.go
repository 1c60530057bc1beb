// Package httpapi exposes the REST surface of the forum backend: route
// wiring, request validation, and the translation of core errors into
// HTTP responses.
package httpapi

import "github.com/gofiber/fiber/v2"

// Envelope is the uniform response body. statusCode mirrors the HTTP
// status so clients reading only the body still see the outcome.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Payload    any    `json:"payload,omitempty"`
	Error      any    `json:"error,omitempty"`
	Token      string `json:"token,omitempty"`
}

func respond(c *fiber.Ctx, statusCode int, message string, payload any, token string) error {
	return c.Status(statusCode).JSON(Envelope{
		StatusCode: statusCode,
		Message:    message,
		Payload:    payload,
		Token:      token,
	})
}

func respondFieldErrors(c *fiber.Ctx, statusCode int, message string, fields any) error {
	return c.Status(statusCode).JSON(Envelope{
		StatusCode: statusCode,
		Message:    message,
		Error:      fields,
	})
}
