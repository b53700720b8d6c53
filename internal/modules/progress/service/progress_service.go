package service

import (
	"context"
	"strings"

	"zenpod/internal/modules/progress/domain"
	progressout "zenpod/internal/modules/progress/port/out"
	apperrors "zenpod/internal/platform/errors"
)

type ProgressService struct {
	store progressout.Store
}

func NewProgressService(store progressout.Store) *ProgressService {
	return &ProgressService{store: store}
}

func (s *ProgressService) Latest(ctx context.Context, token string) (domain.Record, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Record{}, apperrors.ErrNoToken
	}
	return s.store.Latest(ctx, token)
}

// Save persists a position. Without a token no request is sent at all:
// anonymous sessions do not track progress.
func (s *ProgressService) Save(ctx context.Context, token string, rec domain.Record) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrNoToken
	}
	rec.Position = domain.ClampPosition(rec.Position)
	return s.store.Save(ctx, token, rec)
}
