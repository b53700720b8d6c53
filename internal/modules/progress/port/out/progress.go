package out

import (
	"context"

	"zenpod/internal/modules/progress/domain"
)

// Store is the remote reading-progress API.
type Store interface {
	// Latest returns the most recent record, ErrNotFound when none exists.
	Latest(ctx context.Context, token string) (domain.Record, error)
	Save(ctx context.Context, token string, rec domain.Record) error
}
