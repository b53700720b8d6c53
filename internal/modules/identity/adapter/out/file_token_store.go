package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zenpod/internal/modules/identity/domain"
	identityout "zenpod/internal/modules/identity/port/out"
	"zenpod/internal/platform/clock"
	apperrors "zenpod/internal/platform/errors"
)

// FileTokenStore keeps the user token at a fixed path so an identity
// survives restarts.
type FileTokenStore struct {
	path string
	clk  clock.Clock
}

func NewFileTokenStore(path string, clk clock.Clock) identityout.TokenStore {
	return &FileTokenStore{path: path, clk: clk}
}

func (s *FileTokenStore) Save(_ context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("token is required")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	payload, err := json.MarshalIndent(domain.StoredToken{Token: token, SavedAt: s.clk.Now()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", apperrors.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	var stored domain.StoredToken
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	if strings.TrimSpace(stored.Token) == "" {
		return "", apperrors.ErrNoToken
	}
	return stored.Token, nil
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
