package out

import (
	"context"
	"fmt"

	"zenpod/internal/modules/session/domain"
	sessionout "zenpod/internal/modules/session/port/out"
	"zenpod/internal/platform/httpx"
)

type createPayload struct {
	DurationHours float64 `json:"duration_hours"`
	UserToken     string  `json:"user_token,omitempty"`
}

type orderPayload struct {
	SessionID  int     `json:"session_id"`
	AmountYuan float64 `json:"amount_yuan"`
	Demo       bool    `json:"demo"`
	IsActive   bool    `json:"is_active"`
}

type statusPayload struct {
	IsActive         bool     `json:"is_active"`
	IsPaid           bool     `json:"is_paid"`
	RemainingSeconds *float64 `json:"remaining_seconds"`
}

type HTTPStore struct {
	client *httpx.Client
}

func NewHTTPStore(client *httpx.Client) sessionout.Store {
	return &HTTPStore{client: client}
}

func (s *HTTPStore) Create(ctx context.Context, durationHours float64, userToken string) (domain.Order, error) {
	var payload orderPayload
	in := createPayload{DurationHours: durationHours, UserToken: userToken}
	if err := s.client.PostJSON(ctx, "/sessions/", in, &payload); err != nil {
		return domain.Order{}, err
	}
	return domain.Order{
		SessionID:  payload.SessionID,
		AmountYuan: payload.AmountYuan,
		Demo:       payload.Demo,
		Active:     payload.IsActive,
	}, nil
}

func (s *HTTPStore) Activate(ctx context.Context, sessionID int) error {
	return s.client.PostJSON(ctx, fmt.Sprintf("/sessions/%d/activate", sessionID), nil, nil)
}

func (s *HTTPStore) Status(ctx context.Context, sessionID int) (domain.Status, error) {
	var payload statusPayload
	if err := s.client.GetJSON(ctx, fmt.Sprintf("/sessions/%d/status", sessionID), &payload); err != nil {
		return domain.Status{}, err
	}
	status := domain.Status{Active: payload.IsActive, Paid: payload.IsPaid}
	if payload.RemainingSeconds != nil {
		status.Remaining = domain.ClampRemaining(*payload.RemainingSeconds)
	}
	return status, nil
}
