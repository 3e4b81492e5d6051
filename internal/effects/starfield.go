package effects

import (
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// Rand is the randomness the starfield needs. *rand.Rand implements it.
type Rand interface {
	Float64() float64
}

// starLength is the streak length in world units.
const starLength = 10

// maxCatchUp bounds how many launch rolls one Update may replay after a
// long gap between frames.
const maxCatchUp = 100

type star struct {
	x      float64
	born   float64
	fall   float64
	bright bool
}

// Starfield drops streaks from the top of the play area to below its bottom.
type Starfield struct {
	cfg   config.StarfieldConfig
	rng   Rand
	stars []star

	started    bool
	lastLaunch float64
}

// NewStarfield creates an empty starfield.
func NewStarfield(cfg config.StarfieldConfig, rng Rand) *Starfield {
	return &Starfield{cfg: cfg, rng: rng}
}

// Len returns the number of stars in flight.
func (s *Starfield) Len() int {
	return len(s.stars)
}

// Update rolls for new stars once per interval up to now and retires stars
// that have fallen out of the play area.
func (s *Starfield) Update(now, width float64) {
	if !s.cfg.Enabled || s.cfg.Interval <= 0 {
		return
	}
	if !s.started || now < s.lastLaunch {
		s.started = true
		s.lastLaunch = now
	}
	if now-s.lastLaunch > maxCatchUp*s.cfg.Interval {
		s.lastLaunch = now - maxCatchUp*s.cfg.Interval
	}

	for s.lastLaunch+s.cfg.Interval <= now {
		s.lastLaunch += s.cfg.Interval
		if s.rng.Float64() < s.cfg.Chance {
			s.launch(s.lastLaunch, width)
		}
	}

	live := s.stars[:0]
	for _, st := range s.stars {
		if now-st.born < st.fall {
			live = append(live, st)
		}
	}
	s.stars = live
}

func (s *Starfield) launch(at, width float64) {
	fall := s.cfg.MinFallTime
	if s.cfg.MaxFallTime > s.cfg.MinFallTime {
		fall += s.rng.Float64() * (s.cfg.MaxFallTime - s.cfg.MinFallTime)
	}
	s.stars = append(s.stars, star{
		x:      s.rng.Float64() * width,
		born:   at,
		fall:   fall,
		bright: s.rng.Float64() >= 0.5,
	})
}

// Draw renders stars on empty cells of the play area.
func (s *Starfield) Draw(dst *core.Screen, rt core.RuntimeConfig, now float64) {
	_, h := rt.PlaySize()
	for _, st := range s.stars {
		progress := (now - st.born) / st.fall
		y := h - (h+starLength)*progress
		col, row := rt.WorldToScreen(core.V(st.x, y))
		if row < core.HUDRows || row >= dst.Height() || col < 0 || col >= dst.Width() {
			continue
		}
		if dst.Get(col, row) != ' ' {
			continue
		}
		if st.bright {
			dst.SetColored(col, row, '|', core.ColorStarBright)
		} else {
			dst.SetColored(col, row, '.', core.ColorStarDim)
		}
	}
}

// Reset removes every star.
func (s *Starfield) Reset() {
	s.stars = s.stars[:0]
	s.started = false
}
