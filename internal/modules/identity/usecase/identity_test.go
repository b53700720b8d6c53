package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	identityout "zenpod/internal/modules/identity/adapter/out"
	"zenpod/internal/modules/identity/domain"
	"zenpod/internal/modules/identity/service"
	"zenpod/internal/modules/identity/usecase"
	"zenpod/internal/platform/clock"
	apperrors "zenpod/internal/platform/errors"
)

type fakeUserStore struct {
	fetchUser domain.User
	fetchErr  error
	created   int
}

func (f *fakeUserStore) Fetch(_ context.Context, token string) (domain.User, error) {
	if f.fetchErr != nil {
		return domain.User{}, f.fetchErr
	}
	user := f.fetchUser
	user.Token = token
	return user, nil
}

func (f *fakeUserStore) Create(context.Context) (domain.User, error) {
	f.created++
	return domain.User{ID: 5, Token: "tok-new", Nickname: "静心读者"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token.json")
}

func TestEnsureCreatesWhenNoTokenStored(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{}
	tokens := identityout.NewFileTokenStore(tokenPath(t), clock.SystemClock{})
	uc := usecase.NewInteractor(service.NewIdentityService(users, tokens, testLogger()))

	out, err := uc.Ensure(context.Background())
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if users.created != 1 {
		t.Fatalf("expected one user creation, got %d", users.created)
	}
	if out.Token != "tok-new" || out.Nickname != "静心读者" {
		t.Fatalf("unexpected user %+v", out)
	}

	// The new token must persist so the next call resumes instead.
	stored, err := tokens.Load(context.Background())
	if err != nil || stored != "tok-new" {
		t.Fatalf("token not persisted: %q %v", stored, err)
	}
}

func TestEnsureResumesStoredIdentity(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{fetchUser: domain.User{ID: 9, Nickname: "归来者", TotalMinutes: 120}}
	tokens := identityout.NewFileTokenStore(tokenPath(t), clock.SystemClock{})
	if err := tokens.Save(context.Background(), "tok-old"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	uc := usecase.NewInteractor(service.NewIdentityService(users, tokens, testLogger()))

	out, err := uc.Ensure(context.Background())
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if users.created != 0 {
		t.Fatalf("resume must not create a new user")
	}
	if out.ID != 9 || out.Token != "tok-old" || out.TotalMinutes != 120 {
		t.Fatalf("unexpected user %+v", out)
	}
}

func TestResumeClearsTokenRejectedByServer(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{fetchErr: apperrors.ErrNotFound}
	tokens := identityout.NewFileTokenStore(tokenPath(t), clock.SystemClock{})
	if err := tokens.Save(context.Background(), "tok-dead"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	uc := usecase.NewInteractor(service.NewIdentityService(users, tokens, testLogger()))

	if _, err := uc.Resume(context.Background()); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("rejected token must surface as ErrNoToken, got %v", err)
	}
	if _, err := tokens.Load(context.Background()); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("stale token must be cleared, got %v", err)
	}
}

func TestEnsurePropagatesNetworkFailure(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{fetchErr: apperrors.ErrNetwork}
	tokens := identityout.NewFileTokenStore(tokenPath(t), clock.SystemClock{})
	if err := tokens.Save(context.Background(), "tok-old"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	uc := usecase.NewInteractor(service.NewIdentityService(users, tokens, testLogger()))

	if _, err := uc.Ensure(context.Background()); !errors.Is(err, apperrors.ErrNetwork) {
		t.Fatalf("network failure must not silently create a new identity, got %v", err)
	}
	if users.created != 0 {
		t.Fatalf("no user may be created while the server is unreachable")
	}
}
