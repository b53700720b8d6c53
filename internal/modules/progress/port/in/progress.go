package in

import (
	"context"

	"zenpod/internal/modules/progress/dto"
)

type Usecase interface {
	// Latest returns the most recent record; ErrNotFound when none exists
	// and ErrNoToken for anonymous readers.
	Latest(ctx context.Context, token string) (dto.RecordOutput, error)
	// Save upserts the reading position. Anonymous readers get ErrNoToken
	// without any request being issued.
	Save(ctx context.Context, input dto.SaveInput) error
}
