package out

import (
	"context"

	assistout "zenpod/internal/modules/assist/port/out"
	"zenpod/internal/platform/httpx"
)

type explainPayload struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

type askPayload struct {
	Question      string `json:"question"`
	ScriptureText string `json:"scripture_text"`
}

type answerPayload struct {
	Answer string `json:"answer"`
}

type HTTPClient struct {
	client *httpx.Client
}

func NewHTTPClient(client *httpx.Client) assistout.Client {
	return &HTTPClient{client: client}
}

func (c *HTTPClient) Explain(ctx context.Context, text, background string) (string, error) {
	var payload answerPayload
	if err := c.client.PostJSON(ctx, "/ai/explain", explainPayload{Text: text, Context: background}, &payload); err != nil {
		return "", err
	}
	return payload.Answer, nil
}

func (c *HTTPClient) Ask(ctx context.Context, question, scriptureText string) (string, error) {
	var payload answerPayload
	if err := c.client.PostJSON(ctx, "/ai/ask", askPayload{Question: question, ScriptureText: scriptureText}, &payload); err != nil {
		return "", err
	}
	return payload.Answer, nil
}
