package splash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenpod/internal/ui/theme"
)

const holdDuration = 2 * time.Second

// DoneMsg is emitted once the splash has held long enough, or sooner when
// the user presses any key.
type DoneMsg struct{}

type Model struct {
	width  int
	height int
}

func New() Model { return Model{} }

func (m Model) Init() tea.Cmd {
	return tea.Tick(holdDuration, func(time.Time) tea.Msg {
		return DoneMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m, func() tea.Msg { return DoneMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	mark := theme.Title.Render("禅")
	name := theme.Hot.Render("ZenPod")
	tag := theme.Muted.Render("read in stillness")
	card := lipgloss.JoinVertical(lipgloss.Center, mark, "", name, tag)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
