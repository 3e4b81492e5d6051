// Package audio plays the Space Run sound cues through the system speaker.
// Every sound is synthesized at runtime; there are no asset files.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/spacerun/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue lengths.
const (
	laserDuration         = 120 * time.Millisecond
	obstacleBlastDuration = 250 * time.Millisecond
	shipBlastDuration     = 700 * time.Millisecond
)

// SoundManager owns the speaker and mixes every cue into one stream.
// Methods are safe to call before Initialize or after it failed; they do
// nothing in that case.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the given linear volume in
// [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the speaker. It fails on machines without an audio
// device; the game keeps running silently then.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play mixes in the sound for cue.
func (sm *SoundManager) Play(cue core.SoundCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Streamer(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// Cleanup silences everything that is still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Streamer returns a finite stream for cue, or nil for an unknown cue.
func Streamer(cue core.SoundCue) beep.Streamer {
	switch cue {
	case core.SoundLaser:
		return beep.Take(sampleRate.N(laserDuration), NewLaserGenerator(sampleRate, laserDuration))
	case core.SoundObstacleExplode:
		return beep.Take(sampleRate.N(obstacleBlastDuration), NewBlastGenerator(sampleRate, obstacleBlastDuration, 1))
	case core.SoundShipExplode:
		return beep.Take(sampleRate.N(shipBlastDuration), NewBlastGenerator(sampleRate, shipBlastDuration, 7))
	}
	return nil
}

// withVolume scales s by a linear gain. Zero gain is silent because
// log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
