package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"zenpod/internal/modules/speech/domain"
	"zenpod/internal/modules/speech/service"
	apperrors "zenpod/internal/platform/errors"
)

type fakeEngine struct {
	mu        sync.Mutex
	voices    []domain.Voice
	voicesErr error
	speakErr  error
	status    domain.PlaybackStatus
	statusErr error
	requests  []domain.Request
	cancels   int
	resumes   int
}

func (f *fakeEngine) Voices(context.Context) ([]domain.Voice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.voices, f.voicesErr
}

func (f *fakeEngine) Speak(_ context.Context, req domain.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.speakErr != nil {
		return f.speakErr
	}
	f.requests = append(f.requests, req)
	return nil
}

func (f *fakeEngine) Status(context.Context) (domain.PlaybackStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.statusErr
}

func (f *fakeEngine) Resume(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes++
	return nil
}

func (f *fakeEngine) Cancel(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return nil
}

func (f *fakeEngine) setStatus(s domain.PlaybackStatus) {
	f.mu.Lock()
	f.status = s
	f.mu.Unlock()
}

func (f *fakeEngine) counts() (requests, cancels, resumes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests), f.cancels, f.resumes
}

type seqIDs struct{ n int }

func (s *seqIDs) New() string {
	s.n++
	return "utt-" + string(rune('0'+s.n))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newController(engine *fakeEngine, opts ...service.Option) *service.Controller {
	if engine == nil {
		return service.NewController(nil, &seqIDs{}, "zh-CN", 1.0, 1.0, testLogger(), opts...)
	}
	return service.NewController(engine, &seqIDs{}, "zh-CN", 1.0, 1.0, testLogger(), opts...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestSpeakWithoutEngineIsUnavailable(t *testing.T) {
	t.Parallel()
	ctrl := newController(nil)

	if err := ctrl.Speak(context.Background(), "chapter:0", "text"); !errors.Is(err, apperrors.ErrSpeechUnavailable) {
		t.Fatalf("expected ErrSpeechUnavailable, got %v", err)
	}
	if _, err := ctrl.Voices(context.Background()); !errors.Is(err, apperrors.ErrSpeechUnavailable) {
		t.Fatalf("expected ErrSpeechUnavailable, got %v", err)
	}
	if err := ctrl.Stop(context.Background()); err != nil {
		t.Fatalf("stop without engine must be a no-op, got %v", err)
	}
}

func TestSpeakSanitizesAndSelectsVoice(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{voices: []domain.Voice{
		{ID: "en-1", Lang: "en-US", Default: true},
		{ID: "zh-1", Lang: "zh-CN"},
	}}
	ctrl := newController(engine)

	if err := ctrl.Speak(context.Background(), "chapter:0", "**安静**,等候"); err != nil {
		t.Fatalf("speak: %v", err)
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if len(engine.requests) != 1 {
		t.Fatalf("expected one utterance, got %d", len(engine.requests))
	}
	req := engine.requests[0]
	if req.Text != "安静，等候" {
		t.Fatalf("unexpected sanitized text %q", req.Text)
	}
	if req.Voice.ID != "zh-1" {
		t.Fatalf("expected locale-matched voice, got %+v", req.Voice)
	}
	if req.ID == "" {
		t.Fatalf("utterance must carry an id")
	}
	if !ctrl.Speaking("chapter:0") || !ctrl.Speaking("") {
		t.Fatalf("controller must report the utterance as active")
	}
	if ctrl.Speaking("assist") {
		t.Fatalf("a different key must not match")
	}
}

func TestSpeakSameKeyTogglesOff(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{voices: []domain.Voice{{ID: "zh-1", Lang: "zh-CN"}}}
	ctrl := newController(engine)

	if err := ctrl.Speak(context.Background(), "chapter:2", "诗篇"); err != nil {
		t.Fatalf("first speak: %v", err)
	}
	if err := ctrl.Speak(context.Background(), "chapter:2", "诗篇"); err != nil {
		t.Fatalf("toggle speak: %v", err)
	}

	requests, cancels, _ := engine.counts()
	if requests != 1 {
		t.Fatalf("toggle must not start a second utterance, got %d", requests)
	}
	if cancels != 1 {
		t.Fatalf("toggle must cancel the active utterance, got %d cancels", cancels)
	}
	if ctrl.Speaking("") {
		t.Fatalf("nothing should be speaking after a toggle")
	}
}

func TestSpeakDifferentKeyReplacesUtterance(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{voices: []domain.Voice{{ID: "zh-1", Lang: "zh-CN"}}}
	ctrl := newController(engine)

	if err := ctrl.Speak(context.Background(), "chapter:0", "第一章"); err != nil {
		t.Fatalf("first speak: %v", err)
	}
	if err := ctrl.Speak(context.Background(), "assist", "解释"); err != nil {
		t.Fatalf("second speak: %v", err)
	}

	requests, cancels, _ := engine.counts()
	if requests != 2 || cancels != 1 {
		t.Fatalf("expected 2 utterances and 1 cancel, got %d/%d", requests, cancels)
	}
	if !ctrl.Speaking("assist") || ctrl.Speaking("chapter:0") {
		t.Fatalf("only the replacement key may be active")
	}
}

func TestSpeakSkipsEmptyAfterSanitize(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{voices: []domain.Voice{{ID: "zh-1", Lang: "zh-CN"}}}
	ctrl := newController(engine)

	if err := ctrl.Speak(context.Background(), "chapter:0", "***  ---  "); err != nil {
		t.Fatalf("speak: %v", err)
	}
	requests, _, _ := engine.counts()
	if requests != 0 {
		t.Fatalf("empty utterance must never reach the engine")
	}
	if ctrl.Speaking("") {
		t.Fatalf("nothing should be active")
	}
}

func TestSpeakSwallowsEngineFailure(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{
		voices:   []domain.Voice{{ID: "zh-1", Lang: "zh-CN"}},
		speakErr: errors.New("synthesis backend gone"),
	}
	ctrl := newController(engine)

	if err := ctrl.Speak(context.Background(), "chapter:0", "text"); err != nil {
		t.Fatalf("engine failure must not surface, got %v", err)
	}
	if ctrl.Speaking("") {
		t.Fatalf("failed start must leave the controller idle")
	}
}

func TestWatchdogResumesPausedEngine(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{
		voices: []domain.Voice{{ID: "zh-1", Lang: "zh-CN"}},
		status: domain.PlaybackStatus{Speaking: true, Paused: true},
	}
	ctrl := newController(engine, service.WithKeepAliveInterval(5*time.Millisecond))
	defer ctrl.Stop(context.Background())

	if err := ctrl.Speak(context.Background(), "chapter:0", "长篇经文"); err != nil {
		t.Fatalf("speak: %v", err)
	}

	waitFor(t, func() bool {
		_, _, resumes := engine.counts()
		return resumes > 0
	})
}

func TestWatchdogClearsFinishedUtterance(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{
		voices: []domain.Voice{{ID: "zh-1", Lang: "zh-CN"}},
		status: domain.PlaybackStatus{Speaking: true},
	}
	ctrl := newController(engine, service.WithKeepAliveInterval(5*time.Millisecond))

	if err := ctrl.Speak(context.Background(), "chapter:0", "经文"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if !ctrl.Speaking("chapter:0") {
		t.Fatalf("utterance must start active")
	}

	engine.setStatus(domain.PlaybackStatus{Speaking: false})
	waitFor(t, func() bool { return !ctrl.Speaking("") })
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()
	engine := &fakeEngine{voices: []domain.Voice{{ID: "zh-1", Lang: "zh-CN"}}}
	ctrl := newController(engine)

	if err := ctrl.Speak(context.Background(), "chapter:0", "经文"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if err := ctrl.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := ctrl.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
	if ctrl.Speaking("") {
		t.Fatalf("stop must clear playback state")
	}
}
