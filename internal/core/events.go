package core

// EffectKind identifies a visual effect the simulation asks the platform to show.
type EffectKind int

const (
	EffectObstacleExplosion EffectKind = iota
	EffectShipExplosion
)

// String returns the effect name used in logs.
func (k EffectKind) String() string {
	switch k {
	case EffectObstacleExplosion:
		return "obstacle-explode"
	case EffectShipExplosion:
		return "ship-explode"
	default:
		return "unknown"
	}
}

// SoundCue identifies a sound the simulation asks the platform to play.
type SoundCue int

const (
	SoundLaser SoundCue = iota
	SoundObstacleExplode
	SoundShipExplode
)

// String returns the cue name used in logs.
func (c SoundCue) String() string {
	switch c {
	case SoundLaser:
		return "laser"
	case SoundObstacleExplode:
		return "obstacle-explode"
	case SoundShipExplode:
		return "ship-explode"
	default:
		return "unknown"
	}
}
