package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#171512")
	Mantle   = lipgloss.Color("#12100d")
	Surface0 = lipgloss.Color("#2a2620")
	Surface1 = lipgloss.Color("#3d3830")
	Text     = lipgloss.Color("#e8e2d5")
	Subtext0 = lipgloss.Color("#a89f8d")
	Gold     = lipgloss.Color("#c9a84c")
	GoldSoft = lipgloss.Color("#f0d080")
	Sand     = lipgloss.Color("#d4c090")
	Jade     = lipgloss.Color("#9ab88a")
	Ember    = lipgloss.Color("#d98a66")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Gold)

	Title = lipgloss.NewStyle().Foreground(GoldSoft).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Jade)
	Low   = lipgloss.NewStyle().Foreground(Ember).Bold(true)
)
