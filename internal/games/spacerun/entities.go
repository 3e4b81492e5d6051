package spacerun

import (
	"fmt"
)

// EntityID is a handle to a live entity. IDs are never reused within a run.
type EntityID uint64

// ObstacleKind distinguishes the two obstacle variants.
type ObstacleKind int

const (
	ObstacleAsteroid ObstacleKind = iota
	ObstacleEnemy
)

func (k ObstacleKind) String() string {
	if k == ObstacleEnemy {
		return "enemy"
	}
	return "asteroid"
}

// PowerUpKind distinguishes the two power-ups.
type PowerUpKind int

const (
	PowerUpWeapon PowerUpKind = iota
	PowerUpHealth
)

func (k PowerUpKind) String() string {
	if k == PowerUpHealth {
		return "health"
	}
	return "weapon"
}

// Ship is the player's ship. It is owned by the Game.
type Ship struct {
	Body
	Health   int
	FireRate float64 // seconds between shots
	Alive    bool
}

// Projectile is a shot travelling straight up.
type Projectile struct {
	ID EntityID
	Body
	motion Motion
	dead   bool
}

// Obstacle is an asteroid or an enemy ship.
type Obstacle struct {
	ID   EntityID
	Kind ObstacleKind
	Body
	motion Motion
	dead   bool
}

// PowerUp is a collectible falling toward the bottom edge.
type PowerUp struct {
	ID   EntityID
	Kind PowerUpKind
	Body
	motion Motion
	dead   bool
}

// World owns every non-ship entity, one container per kind. Removal marks
// an entity dead; dead entities are dropped by Sweep at the end of a frame.
type World struct {
	nextID      EntityID
	projectiles []*Projectile
	obstacles   []*Obstacle
	powerUps    []*PowerUp
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// AddProjectile takes ownership of p and assigns its ID.
func (w *World) AddProjectile(p *Projectile) EntityID {
	p.ID = w.allocID()
	w.projectiles = append(w.projectiles, p)
	return p.ID
}

// AddObstacle takes ownership of o and assigns its ID.
func (w *World) AddObstacle(o *Obstacle) EntityID {
	o.ID = w.allocID()
	w.obstacles = append(w.obstacles, o)
	return o.ID
}

// AddPowerUp takes ownership of p and assigns its ID.
func (w *World) AddPowerUp(p *PowerUp) EntityID {
	p.ID = w.allocID()
	w.powerUps = append(w.powerUps, p)
	return p.ID
}

// RemoveProjectile destroys p. Destroying an entity twice is a bug.
func (w *World) RemoveProjectile(p *Projectile) {
	if p.dead {
		panic(fmt.Sprintf("spacerun: projectile %d removed twice", p.ID))
	}
	p.dead = true
}

// RemoveObstacle destroys o. Destroying an entity twice is a bug.
func (w *World) RemoveObstacle(o *Obstacle) {
	if o.dead {
		panic(fmt.Sprintf("spacerun: %s %d removed twice", o.Kind, o.ID))
	}
	o.dead = true
}

// RemovePowerUp destroys p. Destroying an entity twice is a bug.
func (w *World) RemovePowerUp(p *PowerUp) {
	if p.dead {
		panic(fmt.Sprintf("spacerun: %s power-up %d removed twice", p.Kind, p.ID))
	}
	p.dead = true
}

// Obstacle looks up a live obstacle by ID.
func (w *World) Obstacle(id EntityID) (*Obstacle, bool) {
	for _, o := range w.obstacles {
		if o.ID == id && !o.dead {
			return o, true
		}
	}
	return nil, false
}

// Projectiles returns the live projectiles.
func (w *World) Projectiles() []*Projectile {
	return liveOnly(w.projectiles, func(p *Projectile) bool { return p.dead })
}

// Obstacles returns the live obstacles.
func (w *World) Obstacles() []*Obstacle {
	return liveOnly(w.obstacles, func(o *Obstacle) bool { return o.dead })
}

// PowerUps returns the live power-ups.
func (w *World) PowerUps() []*PowerUp {
	return liveOnly(w.powerUps, func(p *PowerUp) bool { return p.dead })
}

// Step advances every live entity by dt. Entities whose travel completes
// remove themselves.
func (w *World) Step(dt float64) {
	for _, p := range w.projectiles {
		if !p.dead && p.motion.Step(&p.Body, dt) {
			w.RemoveProjectile(p)
		}
	}
	for _, o := range w.obstacles {
		if !o.dead && o.motion.Step(&o.Body, dt) {
			w.RemoveObstacle(o)
		}
	}
	for _, p := range w.powerUps {
		if !p.dead && p.motion.Step(&p.Body, dt) {
			w.RemovePowerUp(p)
		}
	}
}

// Sweep drops dead entities from their containers.
func (w *World) Sweep() {
	w.projectiles = compact(w.projectiles, func(p *Projectile) bool { return p.dead })
	w.obstacles = compact(w.obstacles, func(o *Obstacle) bool { return o.dead })
	w.powerUps = compact(w.powerUps, func(p *PowerUp) bool { return p.dead })
}

// Clear removes everything.
func (w *World) Clear() {
	w.projectiles = nil
	w.obstacles = nil
	w.powerUps = nil
}

// Len returns the number of live entities per kind.
func (w *World) Len() (projectiles, obstacles, powerUps int) {
	return len(w.Projectiles()), len(w.Obstacles()), len(w.PowerUps())
}

func compact[T any](s []T, dead func(T) bool) []T {
	live := s[:0]
	for _, e := range s {
		if !dead(e) {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s); i++ {
		var zero T
		s[i] = zero
	}
	return live
}

func liveOnly[T any](s []T, dead func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, e := range s {
		if !dead(e) {
			out = append(out, e)
		}
	}
	return out
}
