package in

import (
	"context"

	"zenpod/internal/modules/catalog/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.ScriptureOutput, error)
	Get(ctx context.Context, id int) (dto.ScriptureDetailOutput, error)
}
