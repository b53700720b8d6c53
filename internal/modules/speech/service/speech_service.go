package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"zenpod/internal/modules/speech/domain"
	speechout "zenpod/internal/modules/speech/port/out"
	apperrors "zenpod/internal/platform/errors"
	"zenpod/internal/platform/id"
)

const (
	defaultVoiceWait = 300 * time.Millisecond
	defaultKeepAlive = 3 * time.Second
	voicePollStep    = 50 * time.Millisecond
)

// Controller owns playback state. It serializes speak/stop transitions and
// runs a keep-alive watchdog while an utterance is active, because some
// engines silently pause long utterances.
type Controller struct {
	engine    speechout.Engine
	ids       id.Generator
	logger    *slog.Logger
	lang      string
	rate      float64
	pitch     float64
	voiceWait time.Duration
	keepAlive time.Duration

	mu        sync.Mutex
	voices    []domain.Voice
	speaking  bool
	activeKey string
	watchdog  chan struct{}
}

type Option func(*Controller)

// WithVoiceWait bounds how long a first speak waits for voices to load.
func WithVoiceWait(d time.Duration) Option {
	return func(c *Controller) { c.voiceWait = d }
}

// WithKeepAliveInterval sets how often the watchdog polls the engine.
func WithKeepAliveInterval(d time.Duration) Option {
	return func(c *Controller) { c.keepAlive = d }
}

func NewController(engine speechout.Engine, ids id.Generator, lang string, rate, pitch float64, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		engine:    engine,
		ids:       ids,
		logger:    logger,
		lang:      lang,
		rate:      rate,
		pitch:     pitch,
		voiceWait: defaultVoiceWait,
		keepAlive: defaultKeepAlive,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PreloadVoices warms the voice cache. Failures are logged and ignored so
// startup never blocks on the engine.
func (c *Controller) PreloadVoices(ctx context.Context) {
	if c.engine == nil {
		return
	}
	voices, err := c.engine.Voices(ctx)
	if err != nil {
		c.logger.Warn("voice preload failed", "error", err)
		return
	}
	c.mu.Lock()
	c.voices = voices
	c.mu.Unlock()
}

// Voices returns the cached voice list, fetching once if the cache is empty.
func (c *Controller) Voices(ctx context.Context) ([]domain.Voice, error) {
	if c.engine == nil {
		return nil, apperrors.ErrSpeechUnavailable
	}
	c.mu.Lock()
	cached := c.voices
	c.mu.Unlock()
	if len(cached) > 0 {
		return cached, nil
	}
	voices, err := c.engine.Voices(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.voices = voices
	c.mu.Unlock()
	return voices, nil
}

// Speaking reports whether an utterance is active for the given key. An
// empty key matches any active utterance.
func (c *Controller) Speaking(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.speaking {
		return false
	}
	return key == "" || key == c.activeKey
}

// Speak starts reading text aloud. A second call with the same key while
// that utterance is active toggles it off; a different key replaces the
// current utterance. Engine failures are logged, never surfaced: playback
// is a convenience, not a required path.
func (c *Controller) Speak(ctx context.Context, key, text string) error {
	if c.engine == nil {
		return apperrors.ErrSpeechUnavailable
	}

	// Always cancel first so a replaced utterance never overlaps the new one.
	if err := c.engine.Cancel(ctx); err != nil {
		c.logger.Warn("speech cancel failed", "error", err)
	}
	c.stopWatchdog()

	c.mu.Lock()
	toggledOff := c.speaking && c.activeKey == key
	c.speaking = false
	c.activeKey = ""
	c.mu.Unlock()
	if toggledOff {
		return nil
	}

	clean := domain.Sanitize(text, c.lang)
	if clean == "" {
		return nil
	}

	voices := c.awaitVoices(ctx)
	voice, _ := domain.SelectVoice(voices, c.lang)

	req := domain.Request{
		ID:    c.ids.New(),
		Text:  clean,
		Lang:  c.lang,
		Rate:  c.rate,
		Pitch: c.pitch,
		Voice: voice,
	}
	if err := c.engine.Speak(ctx, req); err != nil {
		c.logger.Warn("speech start failed", "utterance_id", req.ID, "error", err)
		return nil
	}

	stop := make(chan struct{})
	c.mu.Lock()
	c.speaking = true
	c.activeKey = key
	c.watchdog = stop
	c.mu.Unlock()
	go c.keepAliveLoop(stop)
	return nil
}

// Stop cancels any active utterance. Idempotent.
func (c *Controller) Stop(ctx context.Context) error {
	if c.engine == nil {
		return nil
	}
	if err := c.engine.Cancel(ctx); err != nil {
		c.logger.Warn("speech cancel failed", "error", err)
	}
	c.stopWatchdog()
	c.mu.Lock()
	c.speaking = false
	c.activeKey = ""
	c.mu.Unlock()
	return nil
}

// Close stops playback and releases the engine if it holds resources.
func (c *Controller) Close() error {
	_ = c.Stop(context.Background())
	if closer, ok := c.engine.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// awaitVoices returns the cached voices, polling the engine briefly when the
// cache is empty. On timeout it gives up and lets the engine pick a voice.
func (c *Controller) awaitVoices(ctx context.Context) []domain.Voice {
	c.mu.Lock()
	cached := c.voices
	c.mu.Unlock()
	if len(cached) > 0 {
		return cached
	}

	deadline := time.Now().Add(c.voiceWait)
	for {
		voices, err := c.engine.Voices(ctx)
		if err == nil && len(voices) > 0 {
			c.mu.Lock()
			c.voices = voices
			c.mu.Unlock()
			return voices
		}
		if time.Now().After(deadline) {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(voicePollStep):
		}
	}
}

func (c *Controller) keepAliveLoop(stop chan struct{}) {
	ticker := time.NewTicker(c.keepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			status, err := c.engine.Status(context.Background())
			if err != nil {
				c.logger.Warn("speech status poll failed", "error", err)
				c.clearAfter(stop)
				return
			}
			if !status.Speaking {
				c.clearAfter(stop)
				return
			}
			if status.Paused {
				if err := c.engine.Resume(context.Background()); err != nil {
					c.logger.Warn("speech resume failed", "error", err)
				}
			}
		}
	}
}

func (c *Controller) stopWatchdog() {
	c.mu.Lock()
	if c.watchdog != nil {
		close(c.watchdog)
		c.watchdog = nil
	}
	c.mu.Unlock()
}

// clearAfter resets playback state when this watchdog observed the
// utterance finish. A newer watchdog's state is left untouched.
func (c *Controller) clearAfter(stop chan struct{}) {
	c.mu.Lock()
	if c.watchdog == stop {
		c.watchdog = nil
		c.speaking = false
		c.activeKey = ""
	}
	c.mu.Unlock()
}
