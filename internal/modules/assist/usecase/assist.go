package usecase

import (
	"context"
	"fmt"
	"strings"

	"zenpod/internal/modules/assist/dto"
	assistin "zenpod/internal/modules/assist/port/in"
	assistout "zenpod/internal/modules/assist/port/out"
)

type Interactor struct {
	client assistout.Client
}

func NewInteractor(client assistout.Client) assistin.Usecase {
	return &Interactor{client: client}
}

func (i *Interactor) Explain(ctx context.Context, input dto.ExplainInput) (dto.AnswerOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return dto.AnswerOutput{}, fmt.Errorf("text is required")
	}
	answer, err := i.client.Explain(ctx, input.Text, input.Context)
	if err != nil {
		return dto.AnswerOutput{}, err
	}
	return dto.AnswerOutput{Answer: answer}, nil
}

func (i *Interactor) Ask(ctx context.Context, input dto.AskInput) (dto.AnswerOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return dto.AnswerOutput{}, fmt.Errorf("question is required")
	}
	answer, err := i.client.Ask(ctx, input.Question, input.ScriptureText)
	if err != nil {
		return dto.AnswerOutput{}, err
	}
	return dto.AnswerOutput{Answer: answer}, nil
}
