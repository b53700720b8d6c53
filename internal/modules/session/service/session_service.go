package service

import (
	"context"
	"fmt"

	"zenpod/internal/modules/session/domain"
	sessionout "zenpod/internal/modules/session/port/out"
)

type SessionService struct {
	store sessionout.Store
}

func NewSessionService(store sessionout.Store) *SessionService {
	return &SessionService{store: store}
}

// Purchase creates the session and activates it in that order. An order
// that cannot be activated is surfaced as an error rather than handed to
// the caller half-open.
func (s *SessionService) Purchase(ctx context.Context, durationHours float64, userToken string) (domain.Order, error) {
	if durationHours <= 0 {
		return domain.Order{}, fmt.Errorf("duration must be positive, got %v", durationHours)
	}
	order, err := s.store.Create(ctx, durationHours, userToken)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.store.Activate(ctx, order.SessionID); err != nil {
		return domain.Order{}, fmt.Errorf("activate session %d: %w", order.SessionID, err)
	}
	order.Active = true
	return order, nil
}

func (s *SessionService) Status(ctx context.Context, sessionID int) (domain.Status, error) {
	if sessionID <= 0 {
		return domain.Status{}, fmt.Errorf("session id must be positive")
	}
	return s.store.Status(ctx, sessionID)
}
