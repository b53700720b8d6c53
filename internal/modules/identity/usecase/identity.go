package usecase

import (
	"context"
	"errors"

	"zenpod/internal/modules/identity/domain"
	"zenpod/internal/modules/identity/dto"
	identityin "zenpod/internal/modules/identity/port/in"
	"zenpod/internal/modules/identity/service"
	apperrors "zenpod/internal/platform/errors"
)

type Interactor struct {
	svc *service.IdentityService
}

func NewInteractor(svc *service.IdentityService) identityin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Resume(ctx context.Context) (dto.UserOutput, error) {
	user, err := i.svc.Resume(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Create(ctx context.Context) (dto.UserOutput, error) {
	user, err := i.svc.Create(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Ensure(ctx context.Context) (dto.UserOutput, error) {
	out, err := i.Resume(ctx)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, apperrors.ErrNoToken) {
		return dto.UserOutput{}, err
	}
	return i.Create(ctx)
}

func toOutput(user domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:           user.ID,
		Token:        user.Token,
		Nickname:     user.Nickname,
		TotalMinutes: user.TotalMinutes,
	}
}
