// Package config provides YAML-based configuration loading and difficulty
// presets for Space Run.
package config

import (
	"errors"
	"fmt"
)

// SpaceRunConfig contains all tunable parameters of the game. Every value
// defaults to the classic arcade balance; see defaults/spacerun.yaml.
type SpaceRunConfig struct {
	Ship      ShipConfig      `yaml:"ship"`
	Weapons   WeaponConfig    `yaml:"weapons"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Asteroid  AsteroidConfig  `yaml:"asteroid"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	PowerUps  PowerUpConfig   `yaml:"powerups"`
	Effects   EffectsConfig   `yaml:"effects"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Audio     AudioConfig     `yaml:"audio"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`     // units per second
	DeadZone       float64 `yaml:"dead_zone"` // no steering within this distance of the target
	StartHealth    int     `yaml:"start_health"`
	MaxHealth      int     `yaml:"max_health"`
	ObstacleDamage int     `yaml:"obstacle_damage"`
}

// WeaponConfig defines firing cadence and projectile shape.
type WeaponConfig struct {
	FireRate         float64 `yaml:"fire_rate"`         // seconds between shots
	BoostedFireRate  float64 `yaml:"boosted_fire_rate"` // while a weapon power-up is active
	BoostDuration    float64 `yaml:"boost_duration"`
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
	ProjectileTravel float64 `yaml:"projectile_travel"` // seconds to cross the play area
}

// SpawnConfig defines the per-frame spawn roll. A spawn happens when
// Intn(Roll) <= Threshold; the category is picked from Intn(100) against the
// cumulative upper bounds below (asteroid takes the rest).
type SpawnConfig struct {
	Roll        int `yaml:"roll"`
	Threshold   int `yaml:"threshold"`
	HealthBelow int `yaml:"health_below"`
	WeaponBelow int `yaml:"weapon_below"`
	EnemyBelow  int `yaml:"enemy_below"`
}

// AsteroidConfig defines asteroid size and motion ranges.
type AsteroidConfig struct {
	MinSize       int     `yaml:"min_size"`
	MaxSize       int     `yaml:"max_size"`
	MinTravel     float64 `yaml:"min_travel"`
	MaxTravel     float64 `yaml:"max_travel"`
	SpinAngle     float64 `yaml:"spin_angle"` // radians per spin cycle
	MinSpinPeriod float64 `yaml:"min_spin_period"`
	MaxSpinPeriod float64 `yaml:"max_spin_period"`
}

// EnemyConfig defines the path-following enemy.
type EnemyConfig struct {
	Size         float64 `yaml:"size"`
	Margin       float64 `yaml:"margin"`
	PathDuration float64 `yaml:"path_duration"`
}

// PowerUpConfig defines both power-up kinds.
type PowerUpConfig struct {
	WeaponSize   float64 `yaml:"weapon_size"`
	WeaponTravel float64 `yaml:"weapon_travel"`
	HealthSize   float64 `yaml:"health_size"`
	HealthTravel float64 `yaml:"health_travel"`
	Margin       float64 `yaml:"margin"`
	SpinRate     float64 `yaml:"spin_rate"` // radians per second
}

// EffectsConfig defines explosion teardown delays.
type EffectsConfig struct {
	ObstacleExplosion float64 `yaml:"obstacle_explosion"`
	ShipExplosion     float64 `yaml:"ship_explosion"`
}

// StarfieldConfig defines the scrolling background.
type StarfieldConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Interval    float64 `yaml:"interval"` // seconds between launch rolls
	Chance      float64 `yaml:"chance"`   // probability a roll launches a star
	MinFallTime float64 `yaml:"min_fall_time"`
	MaxFallTime float64 `yaml:"max_fall_time"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate reports every inconsistent value in the config.
func (c SpaceRunConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Ship.Width > 0 && c.Ship.Height > 0, "ship: size must be positive")
	check(c.Ship.Speed > 0, "ship: speed must be positive")
	check(c.Ship.DeadZone >= 0, "ship: dead_zone must not be negative")
	check(c.Ship.MaxHealth > 0, "ship: max_health must be positive")
	check(c.Ship.StartHealth > 0 && c.Ship.StartHealth <= c.Ship.MaxHealth,
		"ship: start_health %d outside (0, %d]", c.Ship.StartHealth, c.Ship.MaxHealth)
	check(c.Ship.ObstacleDamage > 0, "ship: obstacle_damage must be positive")

	check(c.Weapons.FireRate > 0, "weapons: fire_rate must be positive")
	check(c.Weapons.BoostedFireRate > 0, "weapons: boosted_fire_rate must be positive")
	check(c.Weapons.BoostedFireRate != c.Weapons.FireRate, "weapons: boosted_fire_rate equals fire_rate")
	check(c.Weapons.BoostDuration > 0, "weapons: boost_duration must be positive")
	check(c.Weapons.ProjectileTravel > 0, "weapons: projectile_travel must be positive")

	check(c.Spawn.Roll > 0, "spawn: roll must be positive")
	check(0 <= c.Spawn.HealthBelow && c.Spawn.HealthBelow <= c.Spawn.WeaponBelow &&
		c.Spawn.WeaponBelow <= c.Spawn.EnemyBelow && c.Spawn.EnemyBelow <= 100,
		"spawn: category bounds must be ordered within [0, 100]")

	check(c.Asteroid.MinSize > 0 && c.Asteroid.MinSize <= c.Asteroid.MaxSize, "asteroid: invalid size range")
	check(c.Asteroid.MinTravel > 0 && c.Asteroid.MinTravel <= c.Asteroid.MaxTravel, "asteroid: invalid travel range")
	check(c.Asteroid.MinSpinPeriod > 0 && c.Asteroid.MinSpinPeriod <= c.Asteroid.MaxSpinPeriod, "asteroid: invalid spin range")

	check(c.Enemy.Size > 0 && c.Enemy.PathDuration > 0, "enemy: size and path_duration must be positive")
	check(c.PowerUps.WeaponTravel > 0 && c.PowerUps.HealthTravel > 0, "powerups: travel times must be positive")

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio: volume %.2f outside [0, 1]", c.Audio.Volume)

	return errors.Join(errs...)
}
