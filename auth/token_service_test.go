package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-forum/auth"
)

var testSigningKey = []byte("test-signing-key")

func testIdentity() TestIdentity {
	return TestIdentity{
		id:       "5d133c958563b08edb38b9d1",
		username: "testuser",
		email:    "test@example.com",
	}
}

func TestTokenServiceGenerate(t *testing.T) {
	ts := auth.NewTokenService(testSigningKey, 30, nil)

	token, err := ts.Generate(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "5d133c958563b08edb38b9d1", claims.Subject())
	assert.Equal(t, "test@example.com", claims.Email())

	// timestamps are whole second unix values and the lifetime is ttlDays
	iat := claims.IssuedAt()
	exp := claims.Expires()
	assert.True(t, iat.Equal(iat.Truncate(time.Second)))
	assert.Equal(t, 30*24*time.Hour, exp.Sub(iat))
	assert.WithinDuration(t, time.Now(), iat, 5*time.Second)
}

func TestTokenServiceGenerateNilIdentity(t *testing.T) {
	ts := auth.NewTokenService(testSigningKey, 30, nil)

	token, err := ts.Generate(nil)
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestTokenServiceValidateFailures(t *testing.T) {
	ts := auth.NewTokenService(testSigningKey, 30, nil)

	valid, err := ts.Generate(testIdentity())
	require.NoError(t, err)

	expired, err := ts.SignClaims(&auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "5d133c958563b08edb38b9d1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
		UserEmail: "test@example.com",
	})
	require.NoError(t, err)

	boundary, err := ts.SignClaims(&auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "5d133c958563b08edb38b9d1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Truncate(time.Second)),
		},
	})
	require.NoError(t, err)

	otherKey := auth.NewTokenService([]byte("other-signing-key"), 30, nil)
	foreign, err := otherKey.Generate(testIdentity())
	require.NoError(t, err)

	tampered := valid[:len(valid)-2] + flipLastChar(valid)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Malformed token", token: "not-a-token"},
		{name: "Empty token", token: ""},
		{name: "Expired token", token: expired},
		{name: "Token expiring this second", token: boundary},
		{name: "Token signed with another key", token: foreign},
		{name: "Tampered signature", token: tampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ts.Validate(tt.token)

			assert.Nil(t, claims)
			// every failure collapses into the same undifferentiated error
			assert.ErrorIs(t, err, auth.ErrUnableToDecodeToken)
		})
	}
}

func TestTokenServiceValidateRoundTrip(t *testing.T) {
	ts := auth.NewTokenService(testSigningKey, 1, nil)

	token, err := ts.Generate(testIdentity())
	require.NoError(t, err)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity().ID(), claims.Subject())
}

// flipLastChar returns a two character suffix that differs from the
// token's final signature characters
func flipLastChar(token string) string {
	last := token[len(token)-1]
	if last == 'A' {
		return "zB"
	}
	return "AA"
}
