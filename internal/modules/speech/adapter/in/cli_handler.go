package in

import (
	"context"

	"zenpod/internal/modules/speech/dto"
	speechin "zenpod/internal/modules/speech/port/in"
)

type CLIHandler struct {
	usecase speechin.Usecase
}

func NewCLIHandler(usecase speechin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Voices(ctx context.Context) ([]dto.VoiceOutput, error) {
	return h.usecase.Voices(ctx)
}

func (h CLIHandler) Speak(ctx context.Context, text string) error {
	return h.usecase.Speak(ctx, dto.SpeakInput{Key: "cli", Text: text})
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}
