package auth

import (
	"errors"
	"strings"
)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found")

// ErrInvalidCredentials is the uniform failure for every bad login,
// wrong password and unknown username included. The message is the only
// thing a client ever sees; we never reveal which factor failed.
var ErrInvalidCredentials = errors.New("Incorrect username or password")

// ErrMissingUsername indicates a broken caller, not bad user input:
// login was invoked without a username argument
var ErrMissingUsername = errors.New("a username is required to generate a token")

// ErrUnableToDecodeToken is the single undifferentiated decode failure.
// Malformed, tampered and expired tokens all collapse into this value.
var ErrUnableToDecodeToken = errors.New("unable to decode token")

// ErrForbidden is returned when a valid token acts on another identity
var ErrForbidden = errors.New("Forbidden")

// ErrNoEmptyString password hashing rejects empty input
var ErrNoEmptyString = errors.New("password must not be empty")

// ErrMismatchedHashAndPassword password did not match the stored hash
var ErrMismatchedHashAndPassword = errors.New("hashed password is not the hash of the given password")

// IsIdentityNotFoundError will check for not found identities
func IsIdentityNotFoundError(err error) bool {
	return errors.Is(err, ErrIdentityNotFound)
}

// IsInvalidCredentialsError will check for the uniform login failure
func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsForbiddenError will check for self match rejections
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsTokenDecodeError will check for token decode failures
func IsTokenDecodeError(err error) bool {
	return errors.Is(err, ErrUnableToDecodeToken)
}

// IsTokenExpiredError will check for expired tokens. Only useful for
// logging: Validate never surfaces expiry to its caller.
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}
