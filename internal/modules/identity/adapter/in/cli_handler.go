package in

import (
	"context"

	"zenpod/internal/modules/identity/dto"
	identityin "zenpod/internal/modules/identity/port/in"
)

type CLIHandler struct {
	usecase identityin.Usecase
}

func NewCLIHandler(usecase identityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Resume(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Create(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.Create(ctx)
}

func (h CLIHandler) Ensure(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.Ensure(ctx)
}
