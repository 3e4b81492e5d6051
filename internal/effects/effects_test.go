package effects

import (
	"testing"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

type recordingPlayer struct {
	cues []core.SoundCue
}

func (p *recordingPlayer) Play(cue core.SoundCue) {
	p.cues = append(p.cues, cue)
}

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

func TestTrackerTeardown(t *testing.T) {
	tr := NewTracker(nil)
	tr.Advance(1)
	tr.SpawnEffect(core.EffectObstacleExplosion, core.V(10, 10), 0.1)
	tr.SpawnEffect(core.EffectShipExplosion, core.V(20, 20), 0.3)

	tests := []struct {
		now      float64
		expected int
	}{
		{1.05, 2},
		{1.1, 1},
		{1.29, 1},
		{1.3, 0},
	}
	for _, tc := range tests {
		tr.Advance(tc.now)
		if got := len(tr.Bursts()); got != tc.expected {
			t.Errorf("Advance(%v): %d bursts, expected %d", tc.now, got, tc.expected)
		}
	}
}

func TestTrackerForwardsSound(t *testing.T) {
	p := &recordingPlayer{}
	tr := NewTracker(p)
	tr.PlaySound(core.SoundLaser)
	tr.PlaySound(core.SoundShipExplode)

	if len(p.cues) != 2 || p.cues[0] != core.SoundLaser || p.cues[1] != core.SoundShipExplode {
		t.Errorf("cues = %v, expected [laser ship-explode]", p.cues)
	}

	// Muted trackers must not panic.
	NewTracker(nil).PlaySound(core.SoundLaser)
}

func TestTrackerDraw(t *testing.T) {
	rt := core.DefaultConfig()
	s := core.NewScreen(rt.ScreenW, rt.ScreenH)
	tr := NewTracker(nil)

	pos := rt.CellToWorld(40, 10)
	tr.SpawnEffect(core.EffectShipExplosion, pos, 0.3)
	tr.Draw(s, rt)

	col, row := rt.WorldToScreen(pos)
	cell := s.GetCell(col, row)
	if cell.Rune != '#' || cell.Color != core.ColorExplosionHot {
		t.Errorf("fresh burst cell = %q/%v, expected '#'/hot", cell.Rune, cell.Color)
	}

	s.Clear()
	tr.Advance(0.25)
	tr.Draw(s, rt)
	if got := s.Get(col, row); got != ' ' {
		t.Errorf("late burst center = %q, expected an empty ring center", got)
	}
	if got := s.Get(col, row-3); got == ' ' {
		t.Error("late burst ring should reach three rows up")
	}
}

func TestBurstProgress(t *testing.T) {
	b := Burst{Start: 2, Duration: 0.5}
	tests := []struct {
		now      float64
		expected float64
	}{
		{1, 0},
		{2, 0},
		{2.25, 0.5},
		{3, 1},
	}
	for _, tc := range tests {
		if got := b.Progress(tc.now); got != tc.expected {
			t.Errorf("Progress(%v) = %v, expected %v", tc.now, got, tc.expected)
		}
	}
}

func starCfg() config.StarfieldConfig {
	return config.StarfieldConfig{
		Enabled:     true,
		Interval:    0.25,
		Chance:      0.6,
		MinFallTime: 2,
		MaxFallTime: 2,
	}
}

func TestStarfieldLaunchesAndRetires(t *testing.T) {
	sf := NewStarfield(starCfg(), constRand(0))

	sf.Update(0, 640)
	if sf.Len() != 0 {
		t.Fatalf("Len() = %d on the first update, expected 0", sf.Len())
	}
	sf.Update(1, 640)
	if sf.Len() != 4 {
		t.Fatalf("Len() = %d after 1s, expected 4", sf.Len())
	}
	sf.Update(3, 640)
	if sf.Len() != 8 {
		t.Errorf("Len() = %d after 3s, expected 8", sf.Len())
	}
}

func TestStarfieldChance(t *testing.T) {
	sf := NewStarfield(starCfg(), constRand(0.7))
	sf.Update(0, 640)
	sf.Update(5, 640)
	if sf.Len() != 0 {
		t.Errorf("Len() = %d with every roll above the chance, expected 0", sf.Len())
	}

	cfg := starCfg()
	cfg.Enabled = false
	off := NewStarfield(cfg, constRand(0))
	off.Update(0, 640)
	off.Update(5, 640)
	if off.Len() != 0 {
		t.Errorf("disabled starfield launched %d stars", off.Len())
	}
}

func TestStarfieldDraw(t *testing.T) {
	rt := core.DefaultConfig()
	s := core.NewScreen(rt.ScreenW, rt.ScreenH)
	sf := NewStarfield(starCfg(), constRand(0))
	sf.Update(0, 640)
	sf.Update(0.25, 640)

	sf.Draw(s, rt, 0.25)
	if got := s.GetCell(0, core.HUDRows); got.Rune != '.' || got.Color != core.ColorStarDim {
		t.Errorf("new star cell = %q/%v, expected a dim star at the top left", got.Rune, got.Color)
	}

	s.Clear()
	s.Set(0, core.HUDRows, '@')
	sf.Draw(s, rt, 0.25)
	if got := s.Get(0, core.HUDRows); got != '@' {
		t.Errorf("star overwrote a sprite: %q", got)
	}
}
