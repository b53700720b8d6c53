package usecase

import (
	"context"

	"zenpod/internal/modules/session/dto"
	sessionin "zenpod/internal/modules/session/port/in"
	"zenpod/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Purchase(ctx context.Context, input dto.PurchaseInput) (dto.PurchaseOutput, error) {
	order, err := i.svc.Purchase(ctx, input.DurationHours, input.UserToken)
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	return dto.PurchaseOutput{
		SessionID:  order.SessionID,
		AmountYuan: order.AmountYuan,
		Demo:       order.Demo,
		Active:     order.Active,
	}, nil
}

func (i *Interactor) Status(ctx context.Context, sessionID int) (dto.StatusOutput, error) {
	status, err := i.svc.Status(ctx, sessionID)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return dto.StatusOutput{
		Active:    status.Active,
		Paid:      status.Paid,
		Remaining: status.Remaining,
	}, nil
}
