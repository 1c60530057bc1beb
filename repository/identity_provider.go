package repository

import (
	"context"

	"github.com/goliatone/go-forum/auth"
)

// IdentityProvider adapts the Users store to the auth.IdentityProvider
// port. Soft deleted users are already invisible through the store, so the
// adapter only translates record types.
type IdentityProvider struct {
	users Users
}

// NewIdentityProvider creates the adapter over the given store
func NewIdentityProvider(users Users) *IdentityProvider {
	return &IdentityProvider{users: users}
}

func (p *IdentityProvider) FindIdentityByUsername(ctx context.Context, username string) (auth.Identity, error) {
	user, err := p.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return NewIdentityFromUser(user), nil
}

func (p *IdentityProvider) FindIdentityByID(ctx context.Context, id string) (auth.Identity, error) {
	user, err := p.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewIdentityFromUser(user), nil
}

// Verify interface compliance
var _ auth.IdentityProvider = (*IdentityProvider)(nil)
