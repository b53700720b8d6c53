package usecase_test

import (
	"context"
	"errors"
	"testing"

	"zenpod/internal/modules/progress/domain"
	progressdto "zenpod/internal/modules/progress/dto"
	"zenpod/internal/modules/progress/service"
	"zenpod/internal/modules/progress/usecase"
	apperrors "zenpod/internal/platform/errors"
)

type fakeStore struct {
	latest  domain.Record
	saved   []domain.Record
	tokens  []string
	saveErr error
}

func (f *fakeStore) Latest(_ context.Context, token string) (domain.Record, error) {
	f.tokens = append(f.tokens, token)
	return f.latest, nil
}

func (f *fakeStore) Save(_ context.Context, token string, rec domain.Record) error {
	f.tokens = append(f.tokens, token)
	f.saved = append(f.saved, rec)
	return f.saveErr
}

func TestLatestRequiresToken(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	uc := usecase.NewInteractor(service.NewProgressService(store))

	if _, err := uc.Latest(context.Background(), "  "); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if len(store.tokens) != 0 {
		t.Fatalf("anonymous lookup must not hit the store")
	}

	store.latest = domain.Record{ScriptureID: 3, ScriptureTitle: "诗篇", ChapterID: 12, Position: 0.4}
	out, err := uc.Latest(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if out.ScriptureID != 3 || out.ScriptureTitle != "诗篇" || out.ChapterID != 12 || out.Position != 0.4 {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestSaveRequiresTokenAndClampsPosition(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	uc := usecase.NewInteractor(service.NewProgressService(store))

	err := uc.Save(context.Background(), progressdto.SaveInput{ScriptureID: 3, ChapterID: 12, Position: 0.5})
	if !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("anonymous save must not reach the store")
	}

	err = uc.Save(context.Background(), progressdto.SaveInput{Token: "tok-1", ScriptureID: 3, ChapterID: 12, Position: 1.8})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(store.saved) != 1 || store.saved[0].Position != 1 {
		t.Fatalf("position must clamp to 1, got %+v", store.saved)
	}
}

func TestSaveRejectsInvalidScripture(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	uc := usecase.NewInteractor(service.NewProgressService(store))

	if err := uc.Save(context.Background(), progressdto.SaveInput{Token: "tok-1", ScriptureID: 0}); err == nil {
		t.Fatalf("missing scripture id must fail")
	}
	if len(store.saved) != 0 {
		t.Fatalf("invalid input must not reach the store")
	}
}
