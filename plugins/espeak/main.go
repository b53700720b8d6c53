// Command espeak is a speech engine plugin backed by the espeak-ng binary.
// It is the reference engine shipped with zenpod; any process implementing
// the same gRPC contract can replace it.
package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	speechrpc "zenpod/internal/modules/speech/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	paused bool
}

func (s *server) ListVoices(_ context.Context, _ *speechrpc.Empty) (*speechrpc.ListVoicesResponse, error) {
	out, err := exec.Command("espeak-ng", "--voices").Output()
	if err != nil {
		return &speechrpc.ListVoicesResponse{}, nil
	}
	var voices []speechrpc.VoiceDescriptor
	lines := strings.Split(string(out), "\n")
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		lang, name := fields[1], fields[3]
		voices = append(voices, speechrpc.VoiceDescriptor{
			ID:      name,
			Name:    name,
			Lang:    lang,
			Default: lang == "en",
		})
	}
	return &speechrpc.ListVoicesResponse{Voices: voices}, nil
}

func (s *server) Speak(_ context.Context, in *speechrpc.SpeakRequest) (*speechrpc.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	// espeak-ng speed is words per minute; 175 is its default rate 1.0.
	args := []string{"-s", fmt.Sprintf("%.0f", in.Rate*175)}
	if in.Pitch > 0 {
		args = append(args, "-p", fmt.Sprintf("%.0f", in.Pitch*50))
	}
	if in.VoiceID != "" {
		args = append(args, "-v", in.VoiceID)
	} else if in.Lang != "" {
		args = append(args, "-v", in.Lang)
	}
	args = append(args, in.Text)

	cmd := exec.Command("espeak-ng", args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start espeak-ng: %w", err)
	}
	s.cmd = cmd
	s.paused = false
	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		if s.cmd == cmd {
			s.cmd = nil
			s.paused = false
		}
		s.mu.Unlock()
	}()
	return &speechrpc.Empty{}, nil
}

func (s *server) Status(_ context.Context, _ *speechrpc.Empty) (*speechrpc.StatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &speechrpc.StatusResponse{Speaking: s.cmd != nil, Paused: s.paused}, nil
}

func (s *server) Resume(_ context.Context, _ *speechrpc.Empty) (*speechrpc.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd != nil && s.paused {
		if err := s.cmd.Process.Signal(syscall.SIGCONT); err != nil {
			return nil, fmt.Errorf("resume: %w", err)
		}
		s.paused = false
	}
	return &speechrpc.Empty{}, nil
}

func (s *server) Cancel(_ context.Context, _ *speechrpc.Empty) (*speechrpc.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	return &speechrpc.Empty{}, nil
}

func (s *server) stopLocked() {
	if s.cmd != nil {
		_ = s.cmd.Process.Kill()
		s.cmd = nil
		s.paused = false
	}
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: speechrpc.HandshakeConfig,
		Plugins:         speechrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
