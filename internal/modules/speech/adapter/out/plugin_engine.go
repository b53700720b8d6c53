package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	speechrpc "zenpod/internal/modules/speech/adapter/out/rpc"
	"zenpod/internal/modules/speech/domain"
	speechout "zenpod/internal/modules/speech/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// PluginEngine hosts an external speech engine binary over gRPC. The
// process stays alive between calls because the utterance plays inside it;
// killing the process cuts playback.
type PluginEngine struct {
	binary string

	mu     sync.Mutex
	client *plugin.Client
	rpc    speechrpc.SpeechEngineClient
}

func NewPluginEngine(binary string) speechout.Engine {
	return &PluginEngine{binary: binary}
}

func (e *PluginEngine) Voices(ctx context.Context) ([]domain.Voice, error) {
	client, err := e.ensureStarted()
	if err != nil {
		return nil, err
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()

	response, err := client.ListVoices(callCtx)
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	voices := make([]domain.Voice, 0, len(response.Voices))
	for _, v := range response.Voices {
		voices = append(voices, domain.Voice{ID: v.ID, Name: v.Name, Lang: v.Lang, Default: v.Default})
	}
	return voices, nil
}

func (e *PluginEngine) Speak(ctx context.Context, req domain.Request) error {
	client, err := e.ensureStarted()
	if err != nil {
		return err
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()

	if err := client.Speak(callCtx, &speechrpc.SpeakRequest{
		UtteranceID: req.ID,
		Text:        req.Text,
		Lang:        req.Lang,
		Rate:        req.Rate,
		Pitch:       req.Pitch,
		VoiceID:     req.Voice.ID,
	}); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}

func (e *PluginEngine) Status(ctx context.Context) (domain.PlaybackStatus, error) {
	client, err := e.ensureStarted()
	if err != nil {
		return domain.PlaybackStatus{}, err
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()

	response, err := client.Status(callCtx)
	if err != nil {
		return domain.PlaybackStatus{}, fmt.Errorf("status: %w", err)
	}
	return domain.PlaybackStatus{Speaking: response.Speaking, Paused: response.Paused}, nil
}

func (e *PluginEngine) Resume(ctx context.Context) error {
	client, err := e.ensureStarted()
	if err != nil {
		return err
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()

	if err := client.Resume(callCtx); err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	return nil
}

func (e *PluginEngine) Cancel(ctx context.Context) error {
	e.mu.Lock()
	client := e.rpc
	e.mu.Unlock()
	if client == nil {
		return nil
	}
	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()

	if err := client.Cancel(callCtx); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	return nil
}

// Close kills the hosted process. Safe to call more than once.
func (e *PluginEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.rpc = nil
	}
	return nil
}

func (e *PluginEngine) ensureStarted() (speechrpc.SpeechEngineClient, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rpc != nil {
		return e.rpc, nil
	}

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  speechrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          speechrpc.PluginMap(nil),
		Cmd:              exec.Command(e.binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("start speech engine: %w", err)
	}
	raw, err := rpcClient.Dispense(speechrpc.PluginMapKey)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense speech engine: %w", err)
	}
	typed, ok := raw.(speechrpc.SpeechEngineClient)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("speech engine rpc client type mismatch")
	}
	e.client = client
	e.rpc = typed
	return typed, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
