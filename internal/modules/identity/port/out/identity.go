package out

import (
	"context"

	"zenpod/internal/modules/identity/domain"
)

// UserStore is the remote user account API.
type UserStore interface {
	Fetch(ctx context.Context, token string) (domain.User, error)
	Create(ctx context.Context) (domain.User, error)
}

// TokenStore persists the user token across runs under a fixed location.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	// Load returns ErrNoToken when nothing is stored.
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
