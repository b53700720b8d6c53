package components

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenpod/internal/ui/theme"
)

const (
	// The explain ramp advances toward rampTarget over rampDuration and only
	// reaches 100% once an answer has actually arrived.
	rampTarget   = 0.85
	rampDuration = 8 * time.Second
	rampStep     = 100 * time.Millisecond
	settleDelay  = 300 * time.Millisecond
)

// AssistPort is the minimal AI surface the panel needs.
type AssistPort interface {
	Explain(ctx context.Context, text, background string) (string, error)
	Ask(ctx context.Context, question, scriptureText string) (string, error)
}

// AssistAnswerMsg carries one AI response.
type AssistAnswerMsg struct {
	Answer string
	Err    error
}

// AssistSpeakMsg asks the owner to read the answer aloud.
type AssistSpeakMsg struct{ Text string }

// AssistClosedMsg is emitted when the panel is dismissed.
type AssistClosedMsg struct{}

type assistRampMsg struct{}

type assistSettledMsg struct{}

type assistPhase int

const (
	assistHidden assistPhase = iota
	assistInput
	assistLoading
	assistSettling
	assistDone
	assistFailed
)

var assistPaneStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Gold).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

// Assist is the explain/ask overlay. Explain renders a progress ramp while
// waiting; ask renders a plain spinner. A failed call is its own phase, not
// an answer that happens to contain error text.
type Assist struct {
	port AssistPort

	phase     assistPhase
	explain   bool
	question  textinput.Model
	spinner   spinner.Model
	ramp      progress.Model
	rampStart time.Time
	percent   float64
	scripture string
	answer    string
	errText   string
	width     int
}

func NewAssist(port AssistPort) Assist {
	ti := textinput.New()
	ti.Placeholder = "ask about this scripture…"
	ti.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Gold)

	pr := progress.New(
		progress.WithGradient(string(theme.Sand), string(theme.GoldSoft)),
		progress.WithoutPercentage(),
	)

	return Assist{port: port, question: ti, spinner: sp, ramp: pr}
}

func (a Assist) Visible() bool { return a.phase != assistHidden }

// Typing reports whether the question input currently owns the keyboard.
func (a Assist) Typing() bool { return a.phase == assistInput }

func (a *Assist) SetWidth(w int) {
	a.width = w
	inner := w - 6
	if inner < 10 {
		inner = 10
	}
	a.ramp.Width = inner
	a.question.Width = inner
}

// OpenExplain starts an explain call for the given passage.
func (a *Assist) OpenExplain(text, background string) tea.Cmd {
	a.explain = true
	a.phase = assistLoading
	a.answer = ""
	a.errText = ""
	a.percent = 0
	a.rampStart = time.Now()
	return tea.Batch(a.explainCmd(text, background), a.rampTickCmd())
}

// OpenAsk opens the question prompt against the given scripture text.
func (a *Assist) OpenAsk(scriptureText string) tea.Cmd {
	a.explain = false
	a.phase = assistInput
	a.scripture = scriptureText
	a.answer = ""
	a.errText = ""
	a.question.SetValue("")
	return a.question.Focus()
}

func (a *Assist) close() tea.Cmd {
	a.phase = assistHidden
	a.question.Blur()
	return func() tea.Msg { return AssistClosedMsg{} }
}

func (a Assist) Update(msg tea.Msg) (Assist, tea.Cmd) {
	if a.phase == assistHidden {
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch a.phase {
		case assistInput:
			switch msg.String() {
			case "esc":
				return a, a.close()
			case "enter":
				q := strings.TrimSpace(a.question.Value())
				if q == "" {
					return a, nil
				}
				a.phase = assistLoading
				a.question.Blur()
				return a, tea.Batch(a.askCmd(q), a.spinner.Tick)
			}
			var cmd tea.Cmd
			a.question, cmd = a.question.Update(msg)
			return a, cmd

		case assistDone:
			switch msg.String() {
			case "esc", "q":
				return a, a.close()
			case "s":
				return a, func() tea.Msg { return AssistSpeakMsg{Text: a.answer} }
			}
			return a, nil

		case assistFailed:
			if msg.String() == "esc" || msg.String() == "q" {
				return a, a.close()
			}
			return a, nil
		}
		// Loading and settling ignore keys; the call is already in flight.
		return a, nil

	case assistRampMsg:
		if a.phase != assistLoading || !a.explain {
			return a, nil
		}
		elapsed := time.Since(a.rampStart)
		p := rampTarget * float64(elapsed) / float64(rampDuration)
		if p > rampTarget {
			p = rampTarget
		}
		a.percent = p
		return a, a.rampTickCmd()

	case AssistAnswerMsg:
		if a.phase != assistLoading {
			return a, nil
		}
		if msg.Err != nil {
			a.phase = assistFailed
			a.errText = msg.Err.Error()
			return a, nil
		}
		a.answer = msg.Answer
		if a.explain {
			a.percent = 1
			a.phase = assistSettling
			return a, tea.Tick(settleDelay, func(time.Time) tea.Msg {
				return assistSettledMsg{}
			})
		}
		a.phase = assistDone
		return a, nil

	case assistSettledMsg:
		if a.phase == assistSettling {
			a.phase = assistDone
		}
		return a, nil

	case spinner.TickMsg:
		if a.phase == assistLoading && !a.explain {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a Assist) View() string {
	if a.phase == assistHidden {
		return ""
	}

	var sb strings.Builder
	if a.explain {
		sb.WriteString(theme.Title.Render("Explain") + "\n\n")
	} else {
		sb.WriteString(theme.Title.Render("Ask") + "\n\n")
	}

	switch a.phase {
	case assistInput:
		sb.WriteString(a.question.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("enter: ask  esc: close"))

	case assistLoading, assistSettling:
		if a.explain {
			sb.WriteString(a.ramp.ViewAs(a.percent) + "\n\n")
			sb.WriteString(theme.Muted.Render("contemplating…"))
		} else {
			sb.WriteString(a.spinner.View() + theme.Muted.Render(" contemplating…"))
		}

	case assistDone:
		sb.WriteString(a.answer + "\n\n")
		sb.WriteString(theme.Muted.Render("s: read aloud  esc: close"))

	case assistFailed:
		sb.WriteString(theme.Low.Render("The assistant is unavailable.") + "\n")
		sb.WriteString(theme.Muted.Render(a.errText) + "\n\n")
		sb.WriteString(theme.Muted.Render("esc: close"))
	}

	w := a.width
	if w < 24 {
		w = 64
	}
	return assistPaneStyle.Width(w - 2).Render(sb.String())
}

func (a Assist) explainCmd(text, background string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.port.Explain(context.Background(), text, background)
		return AssistAnswerMsg{Answer: answer, Err: err}
	}
}

func (a Assist) askCmd(question string) tea.Cmd {
	scripture := a.scripture
	return func() tea.Msg {
		answer, err := a.port.Ask(context.Background(), question, scripture)
		return AssistAnswerMsg{Answer: answer, Err: err}
	}
}

func (a Assist) rampTickCmd() tea.Cmd {
	return tea.Tick(rampStep, func(time.Time) tea.Msg {
		return assistRampMsg{}
	})
}
