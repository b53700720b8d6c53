package domain

import "strings"

// Summary is the list-view projection of a scripture.
type Summary struct {
	ID            int
	Title         string
	Category      string
	Description   string
	TotalChapters int
}

// Scripture is the full text: an ordered chapter sequence. Immutable from
// the client's point of view.
type Scripture struct {
	ID          int
	Title       string
	Category    string
	Description string
	Chapters    []Chapter
}

type Chapter struct {
	ID      int
	No      int
	Title   string
	Content string
}

// Chapter returns the chapter with the given id, if present.
func (s Scripture) Chapter(id int) (Chapter, bool) {
	for _, c := range s.Chapters {
		if c.ID == id {
			return c, true
		}
	}
	return Chapter{}, false
}

// First returns the opening chapter. The zero Chapter means the scripture
// has no chapters at all.
func (s Scripture) First() (Chapter, bool) {
	if len(s.Chapters) == 0 {
		return Chapter{}, false
	}
	return s.Chapters[0], true
}

// Paragraphs splits the chapter body on the double line-break convention.
func (c Chapter) Paragraphs() []string {
	parts := strings.Split(c.Content, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Excerpt returns the first n runes of the chapter body, used when no
// explicit text selection exists.
func (c Chapter) Excerpt(n int) string {
	runes := []rune(c.Content)
	if len(runes) <= n {
		return strings.TrimSpace(c.Content)
	}
	return strings.TrimSpace(string(runes[:n]))
}
