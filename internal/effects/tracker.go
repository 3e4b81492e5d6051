// Package effects shows the short-lived visuals the simulation requests
// (explosions) and forwards sound cues to an audio player. It also owns the
// scrolling starfield behind the play area.
package effects

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/core"
)

// Player plays sound cues. *audio.SoundManager implements it.
type Player interface {
	Play(cue core.SoundCue)
}

// Burst is one explosion on screen.
type Burst struct {
	Kind     core.EffectKind
	Pos      core.Vec2
	Start    float64
	Duration float64
}

// Progress returns how far the burst is through its life, in [0, 1].
func (b Burst) Progress(now float64) float64 {
	if b.Duration <= 0 {
		return 1
	}
	return core.ClampF((now-b.Start)/b.Duration, 0, 1)
}

// Tracker implements spacerun.Effects. Bursts live on the same clock the
// game is advanced with, so they freeze while the game is paused.
type Tracker struct {
	bursts []Burst
	player Player
	now    float64
	logger *log.Logger
}

// NewTracker creates a tracker. A nil player mutes sound.
func NewTracker(player Player) *Tracker {
	return &Tracker{
		player: player,
		logger: log.New(io.Discard),
	}
}

// SetLogger routes debug output.
func (t *Tracker) SetLogger(l *log.Logger) {
	if l != nil {
		t.logger = l
	}
}

// SpawnEffect starts a burst that tears itself down after teardown seconds.
func (t *Tracker) SpawnEffect(kind core.EffectKind, pos core.Vec2, teardown float64) {
	t.bursts = append(t.bursts, Burst{Kind: kind, Pos: pos, Start: t.now, Duration: teardown})
	t.logger.Debug("effect", "kind", kind, "x", pos.X, "y", pos.Y, "teardown", teardown)
}

// PlaySound forwards cue to the player.
func (t *Tracker) PlaySound(cue core.SoundCue) {
	if t.player != nil {
		t.player.Play(cue)
	}
}

// Advance moves the tracker clock to now and drops finished bursts.
func (t *Tracker) Advance(now float64) {
	t.now = now
	live := t.bursts[:0]
	for _, b := range t.bursts {
		if now-b.Start < b.Duration {
			live = append(live, b)
		}
	}
	clear(t.bursts[len(live):])
	t.bursts = live
}

// Bursts returns the live bursts.
func (t *Tracker) Bursts() []Burst {
	return t.bursts
}

// Reset drops every burst.
func (t *Tracker) Reset() {
	t.bursts = t.bursts[:0]
}

// burstFrames are drawn from the start of a burst to its end.
var burstFrames = []rune{'#', '*', '+', '.'}

// Draw renders every live burst as a ring that grows and fades.
func (t *Tracker) Draw(dst *core.Screen, rt core.RuntimeConfig) {
	for _, b := range t.bursts {
		p := b.Progress(t.now)
		radius := 1
		if b.Kind == core.EffectShipExplosion {
			radius = 3
		}
		r := int(p*float64(radius) + 0.5)

		glyph := burstFrames[core.Clamp(int(p*float64(len(burstFrames))), 0, len(burstFrames)-1)]
		color := core.ColorExplosion
		if p < 0.5 {
			color = core.ColorExplosionHot
		}

		col, row := rt.WorldToScreen(b.Pos)
		if r == 0 {
			plot(dst, col, row, glyph, color)
			continue
		}
		for dy := -r; dy <= r; dy++ {
			for dx := -2 * r; dx <= 2*r; dx++ {
				// Cells are twice as tall as wide, so the ring is drawn twice as wide.
				d := dx*dx + 4*dy*dy
				if d <= 4*r*r && d > 4*(r-1)*(r-1) {
					plot(dst, col+dx, row+dy, glyph, color)
				}
			}
		}
	}
}

// plot writes one cell, keeping the status bar clear.
func plot(dst *core.Screen, col, row int, r rune, c core.Color) {
	if row < core.HUDRows {
		return
	}
	dst.SetColored(col, row, r, c)
}
