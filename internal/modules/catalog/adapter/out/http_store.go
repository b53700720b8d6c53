package out

import (
	"context"
	"fmt"

	"zenpod/internal/modules/catalog/domain"
	catalogout "zenpod/internal/modules/catalog/port/out"
	"zenpod/internal/platform/httpx"
)

type summaryPayload struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	TotalChapters int    `json:"total_chapters"`
}

type chapterPayload struct {
	ID        int    `json:"id"`
	ChapterNo int    `json:"chapter_no"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type detailPayload struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Chapters    []chapterPayload `json:"chapters"`
}

type HTTPStore struct {
	client *httpx.Client
}

func NewHTTPStore(client *httpx.Client) catalogout.Store {
	return &HTTPStore{client: client}
}

func (s *HTTPStore) List(ctx context.Context) ([]domain.Summary, error) {
	var payload []summaryPayload
	if err := s.client.GetJSON(ctx, "/scriptures/", &payload); err != nil {
		return nil, err
	}
	summaries := make([]domain.Summary, len(payload))
	for i, p := range payload {
		summaries[i] = domain.Summary{
			ID:            p.ID,
			Title:         p.Title,
			Category:      p.Category,
			Description:   p.Description,
			TotalChapters: p.TotalChapters,
		}
	}
	return summaries, nil
}

func (s *HTTPStore) Get(ctx context.Context, id int) (domain.Scripture, error) {
	var payload detailPayload
	if err := s.client.GetJSON(ctx, fmt.Sprintf("/scriptures/%d", id), &payload); err != nil {
		return domain.Scripture{}, err
	}
	chapters := make([]domain.Chapter, len(payload.Chapters))
	for i, c := range payload.Chapters {
		chapters[i] = domain.Chapter{ID: c.ID, No: c.ChapterNo, Title: c.Title, Content: c.Content}
	}
	return domain.Scripture{
		ID:          payload.ID,
		Title:       payload.Title,
		Category:    payload.Category,
		Description: payload.Description,
		Chapters:    chapters,
	}, nil
}
