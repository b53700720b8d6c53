package in

import (
	"context"

	"zenpod/internal/modules/session/dto"
	sessionin "zenpod/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Purchase(ctx context.Context, durationHours float64, userToken string) (dto.PurchaseOutput, error) {
	return h.usecase.Purchase(ctx, dto.PurchaseInput{DurationHours: durationHours, UserToken: userToken})
}

func (h CLIHandler) Status(ctx context.Context, sessionID int) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx, sessionID)
}
