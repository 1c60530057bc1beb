package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/goliatone/go-forum/auth"
)

// TestIdentity is a simple implementation of Identity interface for testing
type TestIdentity struct {
	id       string
	username string
	email    string
	hash     string
}

func (t TestIdentity) ID() string           { return t.id }
func (t TestIdentity) Username() string     { return t.username }
func (t TestIdentity) Email() string        { return t.email }
func (t TestIdentity) PasswordHash() string { return t.hash }

// MockIdentityProvider mocks the IdentityProvider interface
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) FindIdentityByUsername(ctx context.Context, username string) (auth.Identity, error) {
	args := m.Called(ctx, username)
	if identity := args.Get(0); identity != nil {
		return identity.(auth.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByID(ctx context.Context, id string) (auth.Identity, error) {
	args := m.Called(ctx, id)
	if identity := args.Get(0); identity != nil {
		return identity.(auth.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockConfig mocks the Config interface
type MockConfig struct {
	mock.Mock
}

func (m *MockConfig) GetSigningKey() string {
	return m.Called().String(0)
}

func (m *MockConfig) GetTokenExpirationDays() int {
	return m.Called().Int(0)
}

func (m *MockConfig) GetPasswordHashCost() int {
	return m.Called().Int(0)
}

func (m *MockConfig) GetContextKey() string {
	return m.Called().String(0)
}

func (m *MockConfig) GetTokenLookup() string {
	return m.Called().String(0)
}

func (m *MockConfig) GetAuthScheme() string {
	return m.Called().String(0)
}

func newMockConfig() *MockConfig {
	mockConfig := new(MockConfig)
	mockConfig.On("GetSigningKey").Return("test-signing-key")
	mockConfig.On("GetTokenExpirationDays").Return(30)
	mockConfig.On("GetPasswordHashCost").Return(4)
	mockConfig.On("GetContextKey").Return("claims")
	mockConfig.On("GetTokenLookup").Return("header:Authorization")
	mockConfig.On("GetAuthScheme").Return("Bearer")
	return mockConfig
}
