package in

import (
	"context"

	"zenpod/internal/modules/assist/dto"
)

type Usecase interface {
	Explain(ctx context.Context, input dto.ExplainInput) (dto.AnswerOutput, error)
	Ask(ctx context.Context, input dto.AskInput) (dto.AnswerOutput, error)
}
