// Package tui provides the Bubble Tea front-end for Space Run: the game
// screen, title menu, scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameGap caps how much game time one tick may add, so a stalled
// terminal does not teleport everything on screen.
const maxFrameGap = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameClock turns wall-clock ticks into monotonic game seconds. It stands
// still while paused.
type gameClock struct {
	now    float64
	last   time.Time
	paused bool
}

// tick advances the clock to wall time t and returns the game time.
func (c *gameClock) tick(t time.Time) float64 {
	if c.last.IsZero() {
		c.last = t
		return c.now
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if c.paused || dt <= 0 {
		return c.now
	}
	c.now += min(dt, maxFrameGap)
	return c.now
}
