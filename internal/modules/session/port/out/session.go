package out

import (
	"context"

	"zenpod/internal/modules/session/domain"
)

// Store is the remote session API.
type Store interface {
	Create(ctx context.Context, durationHours float64, userToken string) (domain.Order, error)
	Activate(ctx context.Context, sessionID int) error
	Status(ctx context.Context, sessionID int) (domain.Status, error)
}
