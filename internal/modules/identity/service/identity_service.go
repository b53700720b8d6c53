package service

import (
	"context"
	"errors"
	"log/slog"

	"zenpod/internal/modules/identity/domain"
	identityout "zenpod/internal/modules/identity/port/out"
	apperrors "zenpod/internal/platform/errors"
)

type IdentityService struct {
	users  identityout.UserStore
	tokens identityout.TokenStore
	log    *slog.Logger
}

func NewIdentityService(users identityout.UserStore, tokens identityout.TokenStore, log *slog.Logger) *IdentityService {
	return &IdentityService{users: users, tokens: tokens, log: log}
}

// Resume loads the persisted token and resolves it against the server.
// A token the server no longer knows is cleared so the next run starts
// anonymous instead of retrying a dead identity forever.
func (s *IdentityService) Resume(ctx context.Context) (domain.User, error) {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.users.Fetch(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.log.Info("stored token rejected by server, clearing", "error", err)
			if clearErr := s.tokens.Clear(ctx); clearErr != nil {
				s.log.Warn("clear stale token failed", "error", clearErr)
			}
			return domain.User{}, apperrors.ErrNoToken
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *IdentityService) Create(ctx context.Context) (domain.User, error) {
	user, err := s.users.Create(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.tokens.Save(ctx, user.Token); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
