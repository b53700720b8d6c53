package reader

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	catalogdto "zenpod/internal/modules/catalog/dto"
	progressdto "zenpod/internal/modules/progress/dto"
	sessiondto "zenpod/internal/modules/session/dto"
	speechdto "zenpod/internal/modules/speech/dto"
)

type fakeCatalog struct{}

func (fakeCatalog) List(context.Context) ([]catalogdto.ScriptureOutput, error) {
	return nil, nil
}

func (fakeCatalog) Get(context.Context, int) (catalogdto.ScriptureDetailOutput, error) {
	return catalogdto.ScriptureDetailOutput{}, nil
}

type fakeProgress struct {
	saves []progressdto.SaveInput
}

func (f *fakeProgress) Save(_ context.Context, input progressdto.SaveInput) error {
	f.saves = append(f.saves, input)
	return nil
}

type fakeSpeech struct {
	stops int
}

func (f *fakeSpeech) Speak(context.Context, speechdto.SpeakInput) error { return nil }
func (f *fakeSpeech) Stop(context.Context) error {
	f.stops++
	return nil
}
func (f *fakeSpeech) Speaking(string) bool { return false }

type fakeAssist struct{}

func (fakeAssist) Explain(context.Context, string, string) (string, error) { return "", nil }
func (fakeAssist) Ask(context.Context, string, string) (string, error)     { return "", nil }

type fakeSessionStatus struct{}

func (fakeSessionStatus) Status(context.Context, int) (sessiondto.StatusOutput, error) {
	return sessiondto.StatusOutput{}, nil
}

// drain executes a command tree synchronously. Every command the reader
// returns from Leave is immediate, so no scheduling is involved.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func openedModel(progress *fakeProgress, speech *fakeSpeech) Model {
	m := New(fakeCatalog{}, progress, speech, fakeAssist{}, fakeSessionStatus{})
	m.token = "tok-1"
	m.sessionID = 3
	m.detail = catalogdto.ScriptureDetailOutput{
		ID:    1,
		Title: "诗篇",
		Chapters: []catalogdto.ChapterOutput{
			{ID: 11, No: 1, Title: "第一篇", Content: "不从恶人的计谋"},
		},
	}
	m.reading = true
	return m
}

func TestLeaveSavesPositionBeforeResetting(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{}
	speech := &fakeSpeech{}
	m := openedModel(progress, speech)

	drain(m.Leave())

	if len(progress.saves) != 1 {
		t.Fatalf("expected one save on the way out, got %d", len(progress.saves))
	}
	save := progress.saves[0]
	if save.Token != "tok-1" || save.ScriptureID != 1 || save.ChapterID != 11 {
		t.Fatalf("unexpected save %+v", save)
	}
	if speech.stops != 1 {
		t.Fatalf("leaving must stop playback, got %d stops", speech.stops)
	}
	if m.reading {
		t.Fatalf("reader must reset its reading state")
	}
}

func TestLeaveWithoutOpenScriptureSkipsSave(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{}
	speech := &fakeSpeech{}
	m := New(fakeCatalog{}, progress, speech, fakeAssist{}, fakeSessionStatus{})
	m.token = "tok-1"
	m.sessionID = 3

	drain(m.Leave())

	if len(progress.saves) != 0 {
		t.Fatalf("nothing is open, nothing to save: %+v", progress.saves)
	}
	if speech.stops != 1 {
		t.Fatalf("leaving must still stop playback")
	}
}
