package service

import (
	"context"
	"errors"
	"log/slog"

	"zenpod/internal/modules/catalog/domain"
	catalogout "zenpod/internal/modules/catalog/port/out"
	apperrors "zenpod/internal/platform/errors"
)

// CatalogService fetches scriptures from the API and keeps the local cache
// warm. When the network is down it serves whatever the cache holds; a cold
// cache degrades to empty rather than failing the view.
type CatalogService struct {
	store catalogout.Store
	cache catalogout.Cache
	log   *slog.Logger
}

func NewCatalogService(store catalogout.Store, cache catalogout.Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{store: store, cache: cache, log: log}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Summary, error) {
	summaries, err := s.store.List(ctx)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.ReplaceAll(ctx, summaries); cacheErr != nil {
				s.log.Warn("catalog cache refresh failed", "error", cacheErr)
			}
		}
		return summaries, nil
	}
	if !errors.Is(err, apperrors.ErrNetwork) || s.cache == nil {
		return nil, err
	}

	s.log.Warn("scripture list unreachable, serving cache", "error", err)
	cached, cacheErr := s.cache.List(ctx)
	if cacheErr != nil {
		return nil, err
	}
	return cached, nil
}

func (s *CatalogService) Get(ctx context.Context, id int) (domain.Scripture, error) {
	scripture, err := s.store.Get(ctx, id)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.PutDetail(ctx, scripture); cacheErr != nil {
				s.log.Warn("catalog cache write failed", "scripture", id, "error", cacheErr)
			}
		}
		return scripture, nil
	}
	if !errors.Is(err, apperrors.ErrNetwork) || s.cache == nil {
		return domain.Scripture{}, err
	}

	s.log.Warn("scripture unreachable, serving cache", "scripture", id, "error", err)
	cached, cacheErr := s.cache.GetDetail(ctx, id)
	if cacheErr != nil {
		return domain.Scripture{}, err
	}
	return cached, nil
}
