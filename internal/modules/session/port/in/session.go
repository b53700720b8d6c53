package in

import (
	"context"

	"zenpod/internal/modules/session/dto"
)

type Usecase interface {
	// Purchase creates a session and activates it. The reader must not be
	// entered before activation has succeeded.
	Purchase(ctx context.Context, input dto.PurchaseInput) (dto.PurchaseOutput, error)
	Status(ctx context.Context, sessionID int) (dto.StatusOutput, error)
}
