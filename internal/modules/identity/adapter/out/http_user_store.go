package out

import (
	"context"

	"zenpod/internal/modules/identity/domain"
	identityout "zenpod/internal/modules/identity/port/out"
	"zenpod/internal/platform/httpx"
)

type userPayload struct {
	ID           int    `json:"id"`
	Token        string `json:"token"`
	Nickname     string `json:"nickname"`
	TotalMinutes int    `json:"total_minutes"`
}

type HTTPUserStore struct {
	client *httpx.Client
}

func NewHTTPUserStore(client *httpx.Client) identityout.UserStore {
	return &HTTPUserStore{client: client}
}

func (s *HTTPUserStore) Fetch(ctx context.Context, token string) (domain.User, error) {
	var payload userPayload
	if err := s.client.GetJSON(ctx, "/users/token/"+token, &payload); err != nil {
		return domain.User{}, err
	}
	return toUser(payload), nil
}

func (s *HTTPUserStore) Create(ctx context.Context) (domain.User, error) {
	var payload userPayload
	if err := s.client.PostJSON(ctx, "/users/", nil, &payload); err != nil {
		return domain.User{}, err
	}
	return toUser(payload), nil
}

func toUser(p userPayload) domain.User {
	return domain.User{
		ID:           p.ID,
		Token:        p.Token,
		Nickname:     p.Nickname,
		TotalMinutes: p.TotalMinutes,
	}
}
