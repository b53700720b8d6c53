package in

import (
	"context"

	"zenpod/internal/modules/identity/dto"
)

type Usecase interface {
	// Resume loads the persisted token and fetches the user behind it.
	// Returns ErrNoToken when no identity is stored.
	Resume(ctx context.Context) (dto.UserOutput, error)
	// Create registers a fresh user and persists its token.
	Create(ctx context.Context) (dto.UserOutput, error)
	// Ensure resumes the stored identity or creates one when absent.
	Ensure(ctx context.Context) (dto.UserOutput, error)
}
