package dto

type ExplainInput struct {
	Text    string
	Context string
}

type AskInput struct {
	Question      string
	ScriptureText string
}

type AnswerOutput struct {
	Answer string
}
