package spacerun

import "github.com/vovakirdan/spacerun/internal/core"

// HUD receives fire-and-forget status notifications.
type HUD interface {
	OnScoreChanged(score int)
	OnHealthChanged(health int)
	OnElapsedTimeChanged(elapsed float64)
}

// Effects receives requests for explosions and sound cues.
type Effects interface {
	SpawnEffect(kind core.EffectKind, pos core.Vec2, teardown float64)
	PlaySound(cue core.SoundCue)
}

type nopHUD struct{}

func (nopHUD) OnScoreChanged(int)           {}
func (nopHUD) OnHealthChanged(int)          {}
func (nopHUD) OnElapsedTimeChanged(float64) {}

type nopEffects struct{}

func (nopEffects) SpawnEffect(core.EffectKind, core.Vec2, float64) {}
func (nopEffects) PlaySound(core.SoundCue)                         {}
