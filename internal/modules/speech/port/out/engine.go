package out

import (
	"context"

	"zenpod/internal/modules/speech/domain"
)

// Engine is the platform synthesis capability. Implementations may load
// voices asynchronously: an early Voices call can legitimately return an
// empty list that fills in later.
type Engine interface {
	Voices(ctx context.Context) ([]domain.Voice, error)
	// Speak starts playback and returns once the utterance is underway.
	Speak(ctx context.Context, req domain.Request) error
	Status(ctx context.Context) (domain.PlaybackStatus, error)
	// Resume continues an utterance the platform silently paused.
	Resume(ctx context.Context) error
	// Cancel stops any in-flight utterance. Idempotent.
	Cancel(ctx context.Context) error
}
