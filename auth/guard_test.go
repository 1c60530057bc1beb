package auth_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-forum/auth"
)

func guardApp(t *testing.T, provider auth.IdentityProvider, claims auth.AuthClaims) *fiber.App {
	t.Helper()

	app := fiber.New()
	guard := auth.NewGuard(provider)

	app.Use(func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals(auth.DefaultClaimsKey, claims)
		}
		return c.Next()
	})

	app.Get("/users/:userId", guard.RequireSelf(), func(c *fiber.Ctx) error {
		identity, ok := auth.IdentityFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(identity.ID())
	})

	return app
}

func claimsFor(t *testing.T, id string) auth.AuthClaims {
	t.Helper()

	ts := auth.NewTokenService(testSigningKey, 1, nil)
	token, err := ts.Generate(TestIdentity{id: id, email: "a@example.com"})
	require.NoError(t, err)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	return claims
}

func TestRequireSelf(t *testing.T) {
	identityA := TestIdentity{
		id:       "5d133c958563b08edb38b9d1",
		username: "usera",
		email:    "a@example.com",
	}

	t.Run("Matching subject is authorized", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("FindIdentityByID", mock.Anything, identityA.ID()).
			Return(identityA, nil).Once()

		app := guardApp(t, provider, claimsFor(t, identityA.ID()))

		res, err := app.Test(httptest.NewRequest("GET", "/users/"+identityA.ID(), nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, res.StatusCode)

		body, _ := io.ReadAll(res.Body)
		assert.Equal(t, identityA.ID(), string(body))
	})

	t.Run("Different subject is forbidden", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("FindIdentityByID", mock.Anything, identityA.ID()).
			Return(identityA, nil).Once()

		app := guardApp(t, provider, claimsFor(t, identityA.ID()))

		res, err := app.Test(httptest.NewRequest("GET", "/users/5d133c958563b08edb38b9d2", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("Missing claims is unauthorized", func(t *testing.T) {
		provider := new(MockIdentityProvider)

		app := guardApp(t, provider, nil)

		res, err := app.Test(httptest.NewRequest("GET", "/users/"+identityA.ID(), nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("Unresolvable subject is unauthorized even on mismatching path", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("FindIdentityByID", mock.Anything, identityA.ID()).
			Return(nil, auth.ErrIdentityNotFound).Once()

		app := guardApp(t, provider, claimsFor(t, identityA.ID()))

		res, err := app.Test(httptest.NewRequest("GET", "/users/5d133c958563b08edb38b9d2", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})
}
