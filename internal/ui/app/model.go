package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assistdto "zenpod/internal/modules/assist/dto"
	assistin "zenpod/internal/modules/assist/port/in"
	catalogin "zenpod/internal/modules/catalog/port/in"
	identityin "zenpod/internal/modules/identity/port/in"
	progressin "zenpod/internal/modules/progress/port/in"
	sessionin "zenpod/internal/modules/session/port/in"
	speechin "zenpod/internal/modules/speech/port/in"
	"zenpod/internal/ui/components"
	readerview "zenpod/internal/ui/views/reader"
	splashview "zenpod/internal/ui/views/splash"
	welcomeview "zenpod/internal/ui/views/welcome"
)

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenSplash screenID = iota
	screenWelcome
	screenReader
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns screen routing: splash holds
// briefly, welcome gates the reader behind a paid session, and the reader
// returns to welcome once the session clock runs out. All business logic
// lives behind port interfaces; all rendering is delegated to the screens.
type Model struct {
	splash  splashview.Model
	welcome welcomeview.Model
	reader  readerview.Model

	screen screenID
	width  int
	height int
}

func NewModel(
	catalog catalogin.Usecase,
	identity identityin.Usecase,
	session sessionin.Usecase,
	progress progressin.Usecase,
	assist assistin.Usecase,
	speech speechin.Usecase,
) Model {
	return Model{
		splash:  splashview.New(),
		welcome: welcomeview.New(identity, session, progress),
		reader:  readerview.New(catalog, progress, speech, assistPortBridge{u: assist}, session),
		screen:  screenSplash,
	}
}

func (m Model) Init() tea.Cmd {
	return m.splash.Init()
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()
		return m, nil

	case splashview.DoneMsg:
		if m.screen == screenSplash {
			m.screen = screenWelcome
			return m, m.welcome.Init()
		}
		return m, nil

	case welcomeview.EnterReaderMsg:
		m.screen = screenReader
		return m, m.reader.Enter(msg.SessionID, msg.User.Token, msg.Resume, msg.HasResume)

	case components.SessionExpiredMsg:
		if m.screen != screenReader {
			return m, nil
		}
		leave := m.reader.Leave()
		m.welcome.SetNotice("Your reading time has ended.")
		m.screen = screenWelcome
		return m, tea.Batch(leave, m.welcome.Init())

	case tea.KeyMsg:
		if m.quitKey(msg.String()) {
			if m.screen == screenReader {
				return m, tea.Sequence(m.reader.Leave(), tea.Quit)
			}
			return m, tea.Quit
		}
	}

	return m.routeToScreen(msg)
}

func (m Model) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenSplash:
		m.splash, cmd = m.splash.Update(msg)
	case screenWelcome:
		m.welcome, cmd = m.welcome.Update(msg)
	case screenReader:
		m.reader, cmd = m.reader.Update(msg)
	}
	return m, cmd
}

// quitKey reports whether the key should terminate the program. Free-typing
// surfaces keep their keys.
func (m Model) quitKey(key string) bool {
	if key == "ctrl+c" {
		return true
	}
	if key != "q" {
		return false
	}
	switch m.screen {
	case screenWelcome:
		return true
	case screenReader:
		return !m.reader.Filtering() && !m.reader.Typing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	m.splash, _ = m.splash.Update(sz)
	m.welcome, _ = m.welcome.Update(sz)
	m.reader, _ = m.reader.Update(sz)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var content string
	switch m.screen {
	case screenSplash:
		content = m.splash.View()
	case screenWelcome:
		content = m.welcome.View()
	case screenReader:
		content = m.reader.View()
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(content)
}

// ─── port bridges ────────────────────────────────────────────────────────────
// The assist use-case speaks dto types; the overlay component wants plain
// strings. The bridge keeps the component free of module knowledge.

type assistPortBridge struct{ u assistin.Usecase }

func (b assistPortBridge) Explain(ctx context.Context, text, background string) (string, error) {
	out, err := b.u.Explain(ctx, assistdto.ExplainInput{Text: text, Context: background})
	if err != nil {
		return "", err
	}
	return out.Answer, nil
}

func (b assistPortBridge) Ask(ctx context.Context, question, scriptureText string) (string, error) {
	out, err := b.u.Ask(ctx, assistdto.AskInput{Question: question, ScriptureText: scriptureText})
	if err != nil {
		return "", err
	}
	return out.Answer, nil
}
