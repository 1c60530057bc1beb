package repository_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goliatone/go-forum/repository"
)

func TestNewIdentityFromUser(t *testing.T) {
	user := &repository.User{
		ID:           primitive.NewObjectID(),
		Username:     "peperone",
		Email:        "pepe@example.com",
		PasswordHash: "$2a$10$fake",
	}

	identity := repository.NewIdentityFromUser(user)
	require.NotNil(t, identity)

	assert.Equal(t, user.ID.Hex(), identity.ID())
	assert.Equal(t, "peperone", identity.Username())
	assert.Equal(t, "pepe@example.com", identity.Email())
	assert.Equal(t, "$2a$10$fake", identity.PasswordHash())
}

func TestNewIdentityFromNilUser(t *testing.T) {
	assert.Nil(t, repository.NewIdentityFromUser(nil))
}

func TestIdentityUnwrapsUser(t *testing.T) {
	user := &repository.User{ID: primitive.NewObjectID()}

	identity := repository.NewIdentityFromUser(user)
	carrier, ok := identity.(interface{ User() *repository.User })
	require.True(t, ok)

	assert.Same(t, user, carrier.User())
}

func TestUserJSONHidesCredentials(t *testing.T) {
	user := &repository.User{
		ID:           primitive.NewObjectID(),
		Username:     "peperone",
		Email:        "pepe@example.com",
		PasswordHash: "$2a$10$fake",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$10$fake")
	assert.Contains(t, string(raw), "peperone")
}
