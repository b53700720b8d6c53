package out

import (
	"context"

	"zenpod/internal/modules/catalog/domain"
)

// Store is the remote scripture catalog.
type Store interface {
	List(ctx context.Context) ([]domain.Summary, error)
	Get(ctx context.Context, id int) (domain.Scripture, error)
}

// Cache is the local read-through copy consulted when the API is unreachable.
type Cache interface {
	ReplaceAll(ctx context.Context, summaries []domain.Summary) error
	List(ctx context.Context) ([]domain.Summary, error)
	PutDetail(ctx context.Context, scripture domain.Scripture) error
	GetDetail(ctx context.Context, id int) (domain.Scripture, error)
}
