package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	identityout "zenpod/internal/modules/identity/adapter/out"
	"zenpod/internal/modules/identity/domain"
	"zenpod/internal/platform/clock"
	apperrors "zenpod/internal/platform/errors"
)

func TestSaveStampsTokenWithInjectedClock(t *testing.T) {
	t.Parallel()
	frozen := clock.Frozen{T: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "token.json")
	store := identityout.NewFileTokenStore(path, frozen)

	if err := store.Save(context.Background(), "tok-frozen"); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read token file: %v", err)
	}
	var stored domain.StoredToken
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("decode token file: %v", err)
	}
	if stored.Token != "tok-frozen" {
		t.Fatalf("token = %q", stored.Token)
	}
	if !stored.SavedAt.Equal(frozen.T) {
		t.Fatalf("saved_at = %v, want %v", stored.SavedAt, frozen.T)
	}
}

func TestLoadWithoutFileReportsNoToken(t *testing.T) {
	t.Parallel()
	store := identityout.NewFileTokenStore(filepath.Join(t.TempDir(), "token.json"), clock.SystemClock{})

	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("missing file must read as no token, got %v", err)
	}
}
