package out

import (
	"context"

	"zenpod/internal/modules/progress/domain"
	progressout "zenpod/internal/modules/progress/port/out"
	apperrors "zenpod/internal/platform/errors"
	"zenpod/internal/platform/httpx"
)

type recordPayload struct {
	ScriptureID    int     `json:"scripture_id"`
	ScriptureTitle string  `json:"scripture_title"`
	ChapterID      int     `json:"chapter_id"`
	ScrollPosition float64 `json:"scroll_position"`
}

type savePayload struct {
	ScriptureID    int     `json:"scripture_id"`
	ChapterID      int     `json:"chapter_id"`
	ScrollPosition float64 `json:"scroll_position"`
}

type HTTPStore struct {
	client *httpx.Client
}

func NewHTTPStore(client *httpx.Client) progressout.Store {
	return &HTTPStore{client: client}
}

// Latest relies on the server ordering records most-recent-first and takes
// the head of the list.
func (s *HTTPStore) Latest(ctx context.Context, token string) (domain.Record, error) {
	var payload []recordPayload
	if err := s.client.GetJSON(ctx, "/users/token/"+token+"/progress", &payload); err != nil {
		return domain.Record{}, err
	}
	if len(payload) == 0 {
		return domain.Record{}, apperrors.ErrNotFound
	}
	head := payload[0]
	return domain.Record{
		ScriptureID:    head.ScriptureID,
		ScriptureTitle: head.ScriptureTitle,
		ChapterID:      head.ChapterID,
		Position:       head.ScrollPosition,
	}, nil
}

func (s *HTTPStore) Save(ctx context.Context, token string, rec domain.Record) error {
	in := savePayload{
		ScriptureID:    rec.ScriptureID,
		ChapterID:      rec.ChapterID,
		ScrollPosition: rec.Position,
	}
	return s.client.PostJSON(ctx, "/users/token/"+token+"/progress", in, nil)
}
