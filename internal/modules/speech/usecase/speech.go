package usecase

import (
	"context"
	"fmt"

	"zenpod/internal/modules/speech/dto"
	speechin "zenpod/internal/modules/speech/port/in"
	"zenpod/internal/modules/speech/service"
)

type Interactor struct {
	ctl *service.Controller
}

func NewInteractor(ctl *service.Controller) speechin.Usecase {
	return &Interactor{ctl: ctl}
}

func (i *Interactor) Preload(ctx context.Context) {
	i.ctl.PreloadVoices(ctx)
}

func (i *Interactor) Speak(ctx context.Context, input dto.SpeakInput) error {
	if input.Text == "" {
		return fmt.Errorf("text is required")
	}
	return i.ctl.Speak(ctx, input.Key, input.Text)
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.ctl.Stop(ctx)
}

func (i *Interactor) Speaking(key string) bool {
	return i.ctl.Speaking(key)
}

func (i *Interactor) Voices(ctx context.Context) ([]dto.VoiceOutput, error) {
	voices, err := i.ctl.Voices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoiceOutput, 0, len(voices))
	for _, v := range voices {
		out = append(out, dto.VoiceOutput{ID: v.ID, Name: v.Name, Lang: v.Lang, Default: v.Default})
	}
	return out, nil
}
