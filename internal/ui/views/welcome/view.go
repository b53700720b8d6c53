package welcome

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	identitydto "zenpod/internal/modules/identity/dto"
	progressdto "zenpod/internal/modules/progress/dto"
	sessiondto "zenpod/internal/modules/session/dto"
	"zenpod/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type IdentityPort interface {
	Ensure(ctx context.Context) (identitydto.UserOutput, error)
}

type SessionPort interface {
	Purchase(ctx context.Context, input sessiondto.PurchaseInput) (sessiondto.PurchaseOutput, error)
}

type ProgressPort interface {
	Latest(ctx context.Context, token string) (progressdto.RecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type userReadyMsg struct {
	user identitydto.UserOutput
	err  error
}

type resumeLoadedMsg struct {
	record progressdto.RecordOutput
	err    error
}

type purchasedMsg struct {
	order sessiondto.PurchaseOutput
	err   error
}

// EnterReaderMsg is emitted once a session has been purchased and activated.
// The reader must never open before activation succeeded.
type EnterReaderMsg struct {
	SessionID int
	User      identitydto.UserOutput
	Resume    progressdto.RecordOutput
	HasResume bool
}

// ─── offers ──────────────────────────────────────────────────────────────────

type offer struct {
	hours float64
	label string
	price string
}

var offers = []offer{
	{hours: 1, label: "One hour", price: "¥28"},
	{hours: 2, label: "Two hours", price: "¥56"},
}

// ─── model ───────────────────────────────────────────────────────────────────

type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phasePaying
	phaseFailed
)

type Model struct {
	identity IdentityPort
	session  SessionPort
	progress ProgressPort

	phase     phase
	user      identitydto.UserOutput
	resume    progressdto.RecordOutput
	hasResume bool
	cursor    int
	notice    string
	errText   string
	spinner   spinner.Model
	width     int
	height    int
}

func New(identity IdentityPort, session SessionPort, progress ProgressPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Gold)

	return Model{
		identity: identity,
		session:  session,
		progress: progress,
		phase:    phaseLoading,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.ensureUserCmd(), m.spinner.Tick)
}

// SetNotice shows a one-line banner, used when the reader sends the user
// back here after the session clock ran out.
func (m *Model) SetNotice(text string) {
	m.notice = text
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case userReadyMsg:
		if msg.err != nil {
			m.phase = phaseFailed
			m.errText = msg.err.Error()
			return m, nil
		}
		m.phase = phaseReady
		m.user = msg.user
		return m, m.loadResumeCmd(msg.user.Token)

	case resumeLoadedMsg:
		if msg.err == nil {
			m.resume = msg.record
			m.hasResume = true
		}
		return m, nil

	case purchasedMsg:
		if msg.err != nil {
			m.phase = phaseReady
			m.errText = "purchase failed: " + msg.err.Error()
			return m, nil
		}
		m.phase = phaseReady
		m.errText = ""
		return m, func() tea.Msg {
			return EnterReaderMsg{
				SessionID: msg.order.SessionID,
				User:      m.user,
				Resume:    m.resume,
				HasResume: m.hasResume,
			}
		}

	case spinner.TickMsg:
		if m.phase == phaseLoading || m.phase == phasePaying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.phase != phaseReady {
			return m, nil
		}
		switch msg.String() {
		case "left", "h", "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "down", "j":
			if m.cursor < len(offers)-1 {
				m.cursor++
			}
		case "1":
			m.cursor = 0
		case "2":
			m.cursor = 1
		case "enter":
			m.phase = phasePaying
			m.notice = ""
			return m, tea.Batch(m.purchaseCmd(offers[m.cursor].hours), m.spinner.Tick)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("ZenPod") + "\n\n")

	switch m.phase {
	case phaseLoading:
		sb.WriteString(m.spinner.View() + theme.Muted.Render(" preparing…"))

	case phaseFailed:
		sb.WriteString(theme.Low.Render("Could not reach the service.") + "\n")
		sb.WriteString(theme.Muted.Render(m.errText))

	case phasePaying:
		sb.WriteString(m.spinner.View() + theme.Muted.Render(" confirming payment…"))

	case phaseReady:
		sb.WriteString(m.renderGreeting())
		if m.notice != "" {
			sb.WriteString(theme.Low.Render(m.notice) + "\n\n")
		}
		if m.hasResume && m.resume.ScriptureTitle != "" {
			sb.WriteString(theme.Muted.Render("Continue reading: ") +
				theme.Good.Render(m.resume.ScriptureTitle) + "\n\n")
		}
		sb.WriteString(m.renderOffers())
		if m.errText != "" {
			sb.WriteString("\n" + theme.Low.Render(m.errText))
		}
		sb.WriteString("\n\n" + theme.Muted.Render("←/→: choose  enter: begin  q: quit"))
	}

	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Padding(1, 3).
		Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderGreeting() string {
	name := m.user.Nickname
	if name == "" {
		name = "traveler"
	}
	greeting := fmt.Sprintf("Welcome back, %s.", name)
	if m.user.TotalMinutes > 0 {
		greeting += theme.Muted.Render(
			fmt.Sprintf("  %d minutes of reading so far.", m.user.TotalMinutes))
	}
	return greeting + "\n\n"
}

func (m Model) renderOffers() string {
	cards := make([]string, len(offers))
	for i, o := range offers {
		style := theme.Pane
		if i == m.cursor {
			style = theme.PaneActive
		}
		body := theme.Hot.Render(o.price) + "\n" + o.label
		cards[i] = style.Width(14).Align(lipgloss.Center).Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) ensureUserCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.identity.Ensure(context.Background())
		return userReadyMsg{user: user, err: err}
	}
}

func (m Model) loadResumeCmd(token string) tea.Cmd {
	return func() tea.Msg {
		record, err := m.progress.Latest(context.Background(), token)
		return resumeLoadedMsg{record: record, err: err}
	}
}

func (m Model) purchaseCmd(hours float64) tea.Cmd {
	token := m.user.Token
	return func() tea.Msg {
		order, err := m.session.Purchase(context.Background(), sessiondto.PurchaseInput{
			DurationHours: hours,
			UserToken:     token,
		})
		return purchasedMsg{order: order, err: err}
	}
}
