package components

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	sessiondomain "zenpod/internal/modules/session/domain"
	sessiondto "zenpod/internal/modules/session/dto"
	"zenpod/internal/ui/theme"
)

const pollInterval = 10 * time.Second

// TimerPort is the minimal session surface the countdown needs.
type TimerPort interface {
	Status(ctx context.Context, sessionID int) (sessiondto.StatusOutput, error)
}

// TimerStatusMsg carries one poll result.
type TimerStatusMsg struct {
	Status sessiondto.StatusOutput
	Err    error
}

// SessionExpiredMsg is emitted on every poll that observes zero remaining
// time, not just the first one.
type SessionExpiredMsg struct{}

type timerPollMsg struct{}

// Timer polls the session clock and renders the remaining-time bar. All
// remaining-time arithmetic happens server-side; the timer only displays
// what the last poll reported.
type Timer struct {
	port      TimerPort
	sessionID int
	countdown sessiondomain.Countdown
	running   bool
	stale     bool
}

func NewTimer(port TimerPort) Timer {
	return Timer{port: port}
}

// Start begins polling for the given session. The first poll fires
// immediately so the display never waits a full interval.
func (t *Timer) Start(sessionID int) tea.Cmd {
	t.sessionID = sessionID
	t.countdown = sessiondomain.Countdown{}
	t.running = true
	t.stale = false
	return t.pollCmd()
}

// Stop halts polling. In-flight results are ignored.
func (t *Timer) Stop() {
	t.running = false
}

func (t Timer) Update(msg tea.Msg) (Timer, tea.Cmd) {
	switch msg := msg.(type) {
	case timerPollMsg:
		if !t.running {
			return t, nil
		}
		return t, t.pollCmd()

	case TimerStatusMsg:
		if !t.running {
			return t, nil
		}
		cmds := []tea.Cmd{t.scheduleCmd()}
		if msg.Err != nil {
			// Keep showing the last known value rather than blanking the bar.
			t.stale = true
			return t, tea.Batch(cmds...)
		}
		t.stale = false
		t.countdown.Observe(msg.Status.Remaining)
		if t.countdown.Expired() {
			cmds = append(cmds, func() tea.Msg { return SessionExpiredMsg{} })
		}
		return t, tea.Batch(cmds...)
	}
	return t, nil
}

// View renders the countdown bar at the given width.
func (t Timer) View(width int) string {
	if !t.countdown.Observed() {
		return theme.Muted.Render("…")
	}

	clock := t.countdown.Format()
	style := theme.Hot
	if t.countdown.Low() {
		style = theme.Low
	}
	if t.stale {
		clock += " ?"
	}

	barW := width - len(clock) - 3
	if barW < 4 {
		return style.Render(clock)
	}
	filled := int(t.countdown.Fraction() * float64(barW))
	if filled > barW {
		filled = barW
	}
	bar := style.Render(strings.Repeat("█", filled)) +
		theme.Muted.Render(strings.Repeat("░", barW-filled))
	return style.Render(clock) + "  " + bar
}

// Expired reports whether the last poll observed zero remaining time.
func (t Timer) Expired() bool {
	return t.countdown.Expired()
}

// Remaining returns the last observed remaining seconds.
func (t Timer) Remaining() int {
	return t.countdown.Remaining()
}

func (t Timer) pollCmd() tea.Cmd {
	sessionID := t.sessionID
	return func() tea.Msg {
		status, err := t.port.Status(context.Background(), sessionID)
		return TimerStatusMsg{Status: status, Err: err}
	}
}

func (t Timer) scheduleCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return timerPollMsg{}
	})
}
