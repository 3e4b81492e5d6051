package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// LaserGenerator produces a short square-ish zap sweeping from high to low.
type LaserGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
}

// NewLaserGenerator creates a laser zap lasting d.
func NewLaserGenerator(sr beep.SampleRate, d time.Duration) *LaserGenerator {
	return &LaserGenerator{sr: sr, samples: max(sr.N(d), 1)}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)

		// 1800Hz falling to 300Hz
		freq := 1800 - 1500*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Soft-clipped sine gives the edge of a square wave without aliasing much.
		sample := math.Tanh(3 * math.Sin(2*math.Pi*g.phase))
		sample *= 0.25 * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// BlastGenerator produces filtered noise with a low rumble and an
// exponential decay.
type BlastGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	seed    uint32
	lowpass float64
}

// NewBlastGenerator creates an explosion lasting d. Seed varies the noise.
func NewBlastGenerator(sr beep.SampleRate, d time.Duration, seed uint32) *BlastGenerator {
	if seed == 0 {
		seed = 1
	}
	return &BlastGenerator{sr: sr, samples: max(sr.N(d), 1), seed: seed}
}

// noise is a xorshift step mapped to [-1, 1].
func (g *BlastGenerator) noise() float64 {
	g.seed ^= g.seed << 13
	g.seed ^= g.seed >> 17
	g.seed ^= g.seed << 5
	return float64(g.seed)/float64(math.MaxUint32)*2 - 1
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)

		g.lowpass += 0.2 * (g.noise() - g.lowpass)
		rumble := math.Sin(2 * math.Pi * (60 - 30*progress) * t)

		envelope := math.Exp(-4 * progress)
		sample := 0.35 * envelope * (0.7*g.lowpass + 0.3*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
