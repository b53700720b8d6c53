package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	catalogout "zenpod/internal/modules/catalog/adapter/out"
	"zenpod/internal/modules/catalog/domain"
	"zenpod/internal/modules/catalog/service"
	"zenpod/internal/platform/clock"
	apperrors "zenpod/internal/platform/errors"
)

type fakeStore struct {
	summaries []domain.Summary
	scripture domain.Scripture
	listErr   error
	getErr    error
}

func (f *fakeStore) List(context.Context) ([]domain.Summary, error) {
	return f.summaries, f.listErr
}

func (f *fakeStore) Get(context.Context, int) (domain.Scripture, error) {
	return f.scripture, f.getErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListRefreshesCacheOnSuccess(t *testing.T) {
	t.Parallel()
	store := &fakeStore{summaries: []domain.Summary{
		{ID: 1, Title: "诗篇", Category: "poetry", TotalChapters: 150},
		{ID: 2, Title: "传道书", Category: "wisdom", Description: "vanity of vanities", TotalChapters: 12},
	}}
	cache, err := catalogout.NewSQLiteCache(filepath.Join(t.TempDir(), "catalog.db"), clock.SystemClock{})
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	svc := service.NewCatalogService(store, cache, testLogger())

	got, err := svc.List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("list: %v (%d items)", err, len(got))
	}

	cached, err := cache.List(context.Background())
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	if len(cached) != 2 || cached[1].Description != "vanity of vanities" {
		t.Fatalf("cache not refreshed: %+v", cached)
	}
}

func TestListServesCacheWhenNetworkIsDown(t *testing.T) {
	t.Parallel()
	store := &fakeStore{summaries: []domain.Summary{{ID: 1, Title: "诗篇", Category: "poetry", TotalChapters: 150}}}
	cache, err := catalogout.NewSQLiteCache(filepath.Join(t.TempDir(), "catalog.db"), clock.SystemClock{})
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	svc := service.NewCatalogService(store, cache, testLogger())

	// Warm the cache, then lose the network.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("warm list: %v", err)
	}
	store.listErr = fmt.Errorf("dial: %w", apperrors.ErrNetwork)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("offline list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "诗篇" {
		t.Fatalf("expected cached scripture, got %+v", got)
	}
}

func TestListDoesNotMaskNonNetworkFailures(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("malformed response")
	store := &fakeStore{listErr: sentinel}
	svc := service.NewCatalogService(store, nil, testLogger())

	if _, err := svc.List(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("non-network errors must pass through, got %v", err)
	}
}

func TestGetFallsBackToCachedDetail(t *testing.T) {
	t.Parallel()
	scripture := domain.Scripture{
		ID:    1,
		Title: "诗篇",
		Chapters: []domain.Chapter{
			{ID: 11, No: 1, Title: "第一篇", Content: "不从恶人的计谋"},
		},
	}
	store := &fakeStore{scripture: scripture}
	cache, err := catalogout.NewSQLiteCache(filepath.Join(t.TempDir(), "catalog.db"), clock.SystemClock{})
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	svc := service.NewCatalogService(store, cache, testLogger())

	if _, err := svc.Get(context.Background(), 1); err != nil {
		t.Fatalf("warm get: %v", err)
	}
	store.getErr = fmt.Errorf("dial: %w", apperrors.ErrNetwork)

	got, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("offline get: %v", err)
	}
	if len(got.Chapters) != 1 || got.Chapters[0].Content != "不从恶人的计谋" {
		t.Fatalf("expected cached detail, got %+v", got)
	}
}

func TestGetReportsNetworkErrorWhenCacheIsCold(t *testing.T) {
	t.Parallel()
	store := &fakeStore{getErr: fmt.Errorf("dial: %w", apperrors.ErrNetwork)}
	cache, err := catalogout.NewSQLiteCache(filepath.Join(t.TempDir(), "catalog.db"), clock.SystemClock{})
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	svc := service.NewCatalogService(store, cache, testLogger())

	if _, err := svc.Get(context.Background(), 404); !errors.Is(err, apperrors.ErrNetwork) {
		t.Fatalf("cold cache must surface the network error, got %v", err)
	}
}
