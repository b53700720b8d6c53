package in

import (
	"context"

	"zenpod/internal/modules/assist/dto"
	assistin "zenpod/internal/modules/assist/port/in"
)

type CLIHandler struct {
	usecase assistin.Usecase
}

func NewCLIHandler(usecase assistin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Explain(ctx context.Context, text, passageContext string) (dto.AnswerOutput, error) {
	return h.usecase.Explain(ctx, dto.ExplainInput{Text: text, Context: passageContext})
}

func (h CLIHandler) Ask(ctx context.Context, question, scriptureText string) (dto.AnswerOutput, error) {
	return h.usecase.Ask(ctx, dto.AskInput{Question: question, ScriptureText: scriptureText})
}
