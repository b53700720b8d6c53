package usecase

import (
	"context"
	"fmt"

	"zenpod/internal/modules/progress/domain"
	"zenpod/internal/modules/progress/dto"
	progressin "zenpod/internal/modules/progress/port/in"
	"zenpod/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Latest(ctx context.Context, token string) (dto.RecordOutput, error) {
	rec, err := i.svc.Latest(ctx, token)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return dto.RecordOutput{
		ScriptureID:    rec.ScriptureID,
		ScriptureTitle: rec.ScriptureTitle,
		ChapterID:      rec.ChapterID,
		Position:       rec.Position,
	}, nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) error {
	if input.ScriptureID <= 0 {
		return fmt.Errorf("scripture id must be positive")
	}
	return i.svc.Save(ctx, input.Token, domain.Record{
		ScriptureID: input.ScriptureID,
		ChapterID:   input.ChapterID,
		Position:    input.Position,
	})
}
