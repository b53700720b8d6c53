package dto

type ScriptureOutput struct {
	ID            int
	Title         string
	Category      string
	Description   string
	TotalChapters int
}

type ChapterOutput struct {
	ID      int
	No      int
	Title   string
	Content string
}

type ScriptureDetailOutput struct {
	ID          int
	Title       string
	Category    string
	Description string
	Chapters    []ChapterOutput
}
