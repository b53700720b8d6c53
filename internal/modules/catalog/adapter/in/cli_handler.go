package in

import (
	"context"

	"zenpod/internal/modules/catalog/dto"
	catalogin "zenpod/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ScriptureOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id int) (dto.ScriptureDetailOutput, error) {
	return h.usecase.Get(ctx, id)
}
