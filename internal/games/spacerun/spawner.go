package spacerun

import (
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// RNG is the randomness the simulation draws from. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// Category is the outcome of a spawn roll.
type Category int

const (
	CategoryNone Category = iota
	CategoryHealth
	CategoryWeapon
	CategoryEnemy
	CategoryAsteroid
)

func (c Category) String() string {
	switch c {
	case CategoryHealth:
		return "health"
	case CategoryWeapon:
		return "weapon"
	case CategoryEnemy:
		return "enemy"
	case CategoryAsteroid:
		return "asteroid"
	default:
		return "none"
	}
}

// Spawner decides each frame whether a new entity enters the play area and
// builds it.
type Spawner struct {
	rng      RNG
	spawn    config.SpawnConfig
	asteroid config.AsteroidConfig
	enemy    config.EnemyConfig
	powerUps config.PowerUpConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RNG, cfg config.SpaceRunConfig) *Spawner {
	return &Spawner{
		rng:      rng,
		spawn:    cfg.Spawn,
		asteroid: cfg.Asteroid,
		enemy:    cfg.Enemy,
		powerUps: cfg.PowerUps,
	}
}

// Roll performs one frame's spawn decision.
func (s *Spawner) Roll() Category {
	if s.rng.Intn(s.spawn.Roll) > s.spawn.Threshold {
		return CategoryNone
	}
	return s.Category(s.rng.Intn(100))
}

// Category maps a roll in [0, 100) to an entity category.
func (s *Spawner) Category(r int) Category {
	switch {
	case r < s.spawn.HealthBelow:
		return CategoryHealth
	case r < s.spawn.WeaponBelow:
		return CategoryWeapon
	case r < s.spawn.EnemyBelow:
		return CategoryEnemy
	default:
		return CategoryAsteroid
	}
}

// Asteroid builds an asteroid for a w x h play area. It starts above the
// top edge, anywhere from a quarter width left of the area to a quarter
// width right of it, and drifts to a random point below the bottom edge.
func (s *Spawner) Asteroid(w, h float64) *Obstacle {
	a := s.asteroid
	side := float64(a.MinSize + s.rng.Intn(a.MaxSize-a.MinSize+1))

	start := core.V(s.uniform(-w/4, w+w/4), h+side)
	end := core.V(s.uniform(0, w), -side)
	travel := s.uniform(a.MinTravel, a.MaxTravel)
	spinPeriod := s.uniform(a.MinSpinPeriod, a.MaxSpinPeriod)

	return &Obstacle{
		Kind:   ObstacleAsteroid,
		Body:   Body{Pos: start, W: side, H: side},
		motion: LinearMotion(start, end, travel).WithSpin(a.SpinAngle / spinPeriod),
	}
}

// Enemy builds an enemy that flies path starting just above the top edge.
func (s *Spawner) Enemy(w, h float64, path *Path) *Obstacle {
	size := s.enemy.Size
	origin := core.V(s.uniform(s.enemy.Margin, w-s.enemy.Margin), h+size)

	return &Obstacle{
		Kind:   ObstacleEnemy,
		Body:   Body{Pos: origin.Add(path.Start()), W: size, H: size},
		motion: PathMotion(origin, path, s.enemy.PathDuration, true),
	}
}

// PowerUp builds a power-up that falls straight down through the play area.
func (s *Spawner) PowerUp(kind PowerUpKind, w, h float64) *PowerUp {
	size, travel := s.powerUps.WeaponSize, s.powerUps.WeaponTravel
	if kind == PowerUpHealth {
		size, travel = s.powerUps.HealthSize, s.powerUps.HealthTravel
	}
	x := s.uniform(s.powerUps.Margin, w-s.powerUps.Margin)
	start, end := core.V(x, h+size), core.V(x, -size)

	return &PowerUp{
		Kind:   kind,
		Body:   Body{Pos: start, W: size, H: size},
		motion: LinearMotion(start, end, travel).WithSpin(s.powerUps.SpinRate),
	}
}

// uniform draws from [lo, hi). A collapsed or inverted range, as produced
// by a play area narrower than the margins, yields its midpoint.
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + s.rng.Float64()*(hi-lo)
}
