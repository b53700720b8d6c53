package in

import (
	"context"

	"zenpod/internal/modules/progress/dto"
	progressin "zenpod/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Latest(ctx context.Context, token string) (dto.RecordOutput, error) {
	return h.usecase.Latest(ctx, token)
}

func (h CLIHandler) Save(ctx context.Context, token string, scriptureID, chapterID int, position float64) error {
	return h.usecase.Save(ctx, dto.SaveInput{
		Token:       token,
		ScriptureID: scriptureID,
		ChapterID:   chapterID,
		Position:    position,
	})
}
