package domain

import (
	"fmt"
	"math"
)

// LowRemaining is the threshold, in seconds, below which the countdown is
// rendered with urgency.
const LowRemaining = 600

// Order is a purchased reading window as reported at creation time.
type Order struct {
	SessionID  int
	AmountYuan float64
	Demo       bool
	Active     bool
}

// Status is the server's projection of a session at poll time. The client
// never computes remaining time itself.
type Status struct {
	Active    bool
	Paid      bool
	Remaining int
}

// Expired reports whether the session's window has closed.
func (s Status) Expired() bool {
	return s.Remaining <= 0
}

// ClampRemaining floors the server-reported seconds and clamps to zero.
func ClampRemaining(raw float64) int {
	sec := int(math.Floor(raw))
	if sec < 0 {
		return 0
	}
	return sec
}

// FormatRemaining renders H:MM:SS once an hour or more remains, M:SS below.
func FormatRemaining(sec int) string {
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Countdown tracks polled remaining time against a baseline captured from
// the first observation. The baseline is deliberately never refreshed: it
// only feeds a display proportion.
type Countdown struct {
	remaining int
	total     int
	observed  bool
}

// Observe records a polled remaining value (already clamped).
func (c *Countdown) Observe(sec int) {
	if !c.observed {
		c.total = sec
		c.observed = true
	}
	c.remaining = sec
}

// Observed reports whether any poll has landed yet.
func (c *Countdown) Observed() bool { return c.observed }

// Remaining returns the last observed remaining seconds.
func (c *Countdown) Remaining() int { return c.remaining }

// Fraction returns remaining/total in [0,1] for the proportional bar.
func (c *Countdown) Fraction() float64 {
	if !c.observed || c.total <= 0 {
		return 0
	}
	f := float64(c.remaining) / float64(c.total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Low reports whether the countdown should render with urgency.
func (c *Countdown) Low() bool {
	return c.observed && c.remaining < LowRemaining
}

// Expired reports whether the last observation hit zero.
func (c *Countdown) Expired() bool {
	return c.observed && c.remaining <= 0
}

// Format renders the last observed remaining time.
func (c *Countdown) Format() string {
	return FormatRemaining(c.remaining)
}
