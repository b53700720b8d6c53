package dto

type RecordOutput struct {
	ScriptureID    int
	ScriptureTitle string
	ChapterID      int
	Position       float64
}

type SaveInput struct {
	Token       string
	ScriptureID int
	ChapterID   int
	Position    float64
}
