// Package hud renders the Space Run status bar: score, health and survival
// time. It receives change notifications from the simulation and briefly
// highlights values that just changed.
package hud

import (
	"fmt"

	"github.com/vovakirdan/spacerun/internal/core"
)

// pulseDuration is how long a changed value stays highlighted.
const pulseDuration = 0.2

// Display holds what the status bar shows. It implements spacerun.HUD.
type Display struct {
	score   int
	health  int
	elapsed float64
	boosted bool

	now         float64
	scorePulse  float64 // highlight until this time
	healthPulse float64
}

// New creates an empty display.
func New() *Display {
	return &Display{}
}

// OnScoreChanged records a new score.
func (d *Display) OnScoreChanged(score int) {
	if score != d.score {
		d.scorePulse = d.now + pulseDuration
	}
	d.score = score
}

// OnHealthChanged records a new health value.
func (d *Display) OnHealthChanged(health int) {
	if health != d.health {
		d.healthPulse = d.now + pulseDuration
	}
	d.health = health
}

// OnElapsedTimeChanged records the survival time.
func (d *Display) OnElapsedTimeChanged(elapsed float64) {
	d.elapsed = elapsed
}

// SetBoosted toggles the weapon boost indicator.
func (d *Display) SetBoosted(b bool) {
	d.boosted = b
}

// Tick advances the display clock used for highlights.
func (d *Display) Tick(now float64) {
	d.now = now
}

// Score returns the displayed score.
func (d *Display) Score() int { return d.score }

// Health returns the displayed health.
func (d *Display) Health() int { return d.health }

// Elapsed returns the displayed survival time.
func (d *Display) Elapsed() float64 { return d.elapsed }

// Draw renders the bar on the given row: score on the left, health in the
// middle, time on the right.
func (d *Display) Draw(dst *core.Screen, row int) {
	w := dst.Width()
	dst.DrawHLine(0, row, w, ' ', core.ColorHUD)

	scoreColor := core.ColorHUD
	if d.now < d.scorePulse {
		scoreColor = core.ColorHUDAlert
	}
	dst.DrawText(1, row, fmt.Sprintf("SCORE %d", d.score), scoreColor)

	healthColor := core.ColorHealth
	if d.health <= 25 {
		healthColor = core.ColorShipHurt
	}
	if d.now < d.healthPulse {
		healthColor = core.ColorHUDAlert
	}
	health := fmt.Sprintf("HULL %s %3d%%", bar(d.health, 10), d.health)
	dst.DrawText((w-len([]rune(health)))/2, row, health, healthColor)

	right := fmt.Sprintf("TIME %.1fs", d.elapsed)
	if d.boosted {
		right = "RAPID  " + right
	}
	dst.DrawText(w-len(right)-1, row, right, core.ColorHUD)
}

// bar renders value/100 as a row of cells.
func bar(value, cells int) string {
	filled := core.Clamp(value*cells/100, 0, cells)
	out := make([]rune, cells)
	for i := range out {
		if i < filled {
			out[i] = '='
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
