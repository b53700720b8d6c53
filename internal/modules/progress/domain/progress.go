package domain

// Record associates a reader with the last position inside a chapter.
// Position is a scroll fraction in [0,1]; last write wins server-side.
type Record struct {
	ScriptureID    int
	ScriptureTitle string
	ChapterID      int
	Position       float64
}

// Fraction converts a scroll offset against total content height into the
// persisted [0,1] position. An unmeasurable height yields zero.
func Fraction(offset, height int) float64 {
	if height <= 0 || offset <= 0 {
		return 0
	}
	return ClampPosition(float64(offset) / float64(height))
}

// ClampPosition bounds a stored position to [0,1].
func ClampPosition(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Resolve picks the chapter to open for a scripture: the stored chapter when
// the record matches the scripture and the chapter still exists, otherwise
// the first chapter. The second return reports whether the stored position
// should be restored.
func Resolve(rec Record, scriptureID int, chapterIDs []int) (int, bool) {
	if len(chapterIDs) == 0 {
		return 0, false
	}
	if rec.ScriptureID != scriptureID {
		return chapterIDs[0], false
	}
	for _, id := range chapterIDs {
		if id == rec.ChapterID {
			return id, true
		}
	}
	return chapterIDs[0], false
}
