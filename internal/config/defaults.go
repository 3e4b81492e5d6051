package config

import (
	_ "embed"
)

//go:embed defaults/spacerun.yaml
var defaultSpaceRunYAML []byte

// DefaultSpaceRunConfig returns the hardcoded default configuration.
// It mirrors defaults/spacerun.yaml and is used when the embedded file
// cannot be parsed.
func DefaultSpaceRunConfig() SpaceRunConfig {
	return SpaceRunConfig{
		Ship: ShipConfig{
			Width:          40,
			Height:         40,
			Speed:          300,
			DeadZone:       5,
			StartHealth:    50,
			MaxHealth:      100,
			ObstacleDamage: 25,
		},
		Weapons: WeaponConfig{
			FireRate:         0.5,
			BoostedFireRate:  0.1,
			BoostDuration:    5,
			ProjectileWidth:  6,
			ProjectileHeight: 16,
			ProjectileTravel: 0.5,
		},
		Spawn: SpawnConfig{
			Roll:        1000,
			Threshold:   15,
			HealthBelow: 3,
			WeaponBelow: 15,
			EnemyBelow:  30,
		},
		Asteroid: AsteroidConfig{
			MinSize:       5,
			MaxSize:       34,
			MinTravel:     3,
			MaxTravel:     5,
			SpinAngle:     3,
			MinSpinPeriod: 1,
			MaxSpinPeriod: 4,
		},
		Enemy: EnemyConfig{
			Size:         30,
			Margin:       20,
			PathDuration: 7,
		},
		PowerUps: PowerUpConfig{
			WeaponSize:   30,
			WeaponTravel: 6,
			HealthSize:   20,
			HealthTravel: 5,
			Margin:       30,
			SpinRate:     1,
		},
		Effects: EffectsConfig{
			ObstacleExplosion: 0.1,
			ShipExplosion:     0.3,
		},
		Starfield: StarfieldConfig{
			Enabled:     true,
			Interval:    0.01,
			Chance:      0.6,
			MinFallTime: 0.1,
			MaxFallTime: 1.0,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSpaceRunYAML
}
