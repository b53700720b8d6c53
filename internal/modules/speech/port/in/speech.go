package in

import (
	"context"

	"zenpod/internal/modules/speech/dto"
)

type Usecase interface {
	Preload(ctx context.Context)
	Speak(ctx context.Context, input dto.SpeakInput) error
	Stop(ctx context.Context) error
	Speaking(key string) bool
	Voices(ctx context.Context) ([]dto.VoiceOutput, error)
}
