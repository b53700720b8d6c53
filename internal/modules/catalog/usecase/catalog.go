package usecase

import (
	"context"
	"fmt"

	"zenpod/internal/modules/catalog/dto"
	catalogin "zenpod/internal/modules/catalog/port/in"
	"zenpod/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.ScriptureOutput, error) {
	summaries, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScriptureOutput, len(summaries))
	for idx, s := range summaries {
		out[idx] = dto.ScriptureOutput{
			ID:            s.ID,
			Title:         s.Title,
			Category:      s.Category,
			Description:   s.Description,
			TotalChapters: s.TotalChapters,
		}
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id int) (dto.ScriptureDetailOutput, error) {
	if id <= 0 {
		return dto.ScriptureDetailOutput{}, fmt.Errorf("scripture id must be positive")
	}
	scripture, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.ScriptureDetailOutput{}, err
	}
	chapters := make([]dto.ChapterOutput, len(scripture.Chapters))
	for idx, c := range scripture.Chapters {
		chapters[idx] = dto.ChapterOutput{ID: c.ID, No: c.No, Title: c.Title, Content: c.Content}
	}
	return dto.ScriptureDetailOutput{
		ID:          scripture.ID,
		Title:       scripture.Title,
		Category:    scripture.Category,
		Description: scripture.Description,
		Chapters:    chapters,
	}, nil
}
