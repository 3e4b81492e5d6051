// Package spacerun implements the Space Run simulation: a ship that chases a
// touch target, fires on a cooldown, and survives a stream of asteroids,
// enemies and power-ups. The package knows nothing about terminals; the
// platform feeds it frame timestamps and renders what it exposes.
package spacerun

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// Game is the per-frame simulation loop.
type Game struct {
	cfg     config.SpaceRunConfig
	runtime core.RuntimeConfig
	width   float64
	height  float64

	rng     RNG
	hud     HUD
	fx      Effects
	logger  *log.Logger
	spawner *Spawner
	timers  *Scheduler
	world   World
	path    *Path

	ship     Ship
	target   core.Vec2
	hasTouch bool

	started       bool
	lastFrameTime float64
	lastShotTime  float64
	elapsed       float64
	score         int
}

// New creates a game with the given configuration. Call Reset before the
// first Advance.
func New(cfg config.SpaceRunConfig) *Game {
	return &Game{
		cfg:    cfg,
		hud:    nopHUD{},
		fx:     nopEffects{},
		logger: log.New(io.Discard),
		timers: NewScheduler(),
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "spacerun"
}

// Title returns a human-readable name for display.
func (g *Game) Title() string {
	return "Space Run"
}

// SetHUD installs the HUD collaborator. nil installs a no-op.
func (g *Game) SetHUD(h HUD) {
	if h == nil {
		h = nopHUD{}
	}
	g.hud = h
}

// SetEffects installs the effects collaborator. nil installs a no-op.
func (g *Game) SetEffects(fx Effects) {
	if fx == nil {
		fx = nopEffects{}
	}
	g.fx = fx
}

// SetLogger installs a logger for game events.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetRNG replaces the random source. Reset seeds a fresh source from the
// runtime config; call SetRNG after Reset to override it.
func (g *Game) SetRNG(rng RNG) {
	g.rng = rng
	g.spawner = NewSpawner(rng, g.cfg)
}

// Reset starts a new run in the play area described by runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.width, g.height = runtime.PlaySize()
	g.path = EnemyPath(g.height)
	g.SetRNG(rand.New(rand.NewSource(runtime.Seed)))

	g.world.Clear()
	g.timers.Reset()
	g.ship = Ship{
		Body:     Body{Pos: core.V(g.width/2, g.height/2), W: g.cfg.Ship.Width, H: g.cfg.Ship.Height},
		Health:   g.cfg.Ship.StartHealth,
		FireRate: g.cfg.Weapons.FireRate,
		Alive:    true,
	}
	g.hasTouch = false
	g.started = false
	g.lastFrameTime = 0
	g.lastShotTime = 0
	g.elapsed = 0
	g.score = 0

	g.hud.OnScoreChanged(0)
	g.hud.OnHealthChanged(g.ship.Health)
	g.hud.OnElapsedTimeChanged(0)
	g.logger.Debug("run started", "width", g.width, "height", g.height, "health", g.ship.Health)
}

// Resize updates the play area without restarting the run. The ship is
// kept inside the new bounds; entities already in flight keep their paths.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.width, g.height = runtime.PlaySize()
	g.path = EnemyPath(g.height)
	g.ship.Pos.X = core.ClampF(g.ship.Pos.X, 0, g.width)
	g.ship.Pos.Y = core.ClampF(g.ship.Pos.Y, 0, g.height)
	if g.hasTouch {
		g.target.X = core.ClampF(g.target.X, 0, g.width)
		g.target.Y = core.ClampF(g.target.Y, 0, g.height)
	}
}

// SetTouchTarget sets the point the ship steers toward and fires from.
// It has no effect once the ship is destroyed.
func (g *Game) SetTouchTarget(p core.Vec2) {
	if !g.ship.Alive {
		return
	}
	g.target = p
	g.hasTouch = true
}

// ClearTouchTarget releases the touch: the ship stops steering and firing.
func (g *Game) ClearTouchTarget() {
	g.hasTouch = false
}

// TouchTarget returns the current touch target, if any.
func (g *Game) TouchTarget() (core.Vec2, bool) {
	return g.target, g.hasTouch
}

// Advance runs one frame. currentTime is in seconds and must never go
// backwards. The first call only records the baseline.
func (g *Game) Advance(currentTime float64) {
	if !g.started {
		g.started = true
		g.lastFrameTime = currentTime
		return
	}
	if currentTime < g.lastFrameTime {
		panic(fmt.Sprintf("spacerun: frame time went backwards (%v < %v)", currentTime, g.lastFrameTime))
	}
	delta := currentTime - g.lastFrameTime

	g.timers.Fire(currentTime)
	g.world.Step(delta)
	if g.ship.Alive {
		g.elapsed += delta
		g.hud.OnElapsedTimeChanged(g.elapsed)
	}

	if g.hasTouch {
		g.ship.Pos = SteerShip(g.ship.Pos, g.target, g.cfg.Ship.Speed, g.cfg.Ship.DeadZone, delta)
		if currentTime-g.lastShotTime > g.ship.FireRate {
			g.fire()
			g.lastShotTime = currentTime
		}
	}

	g.spawn()
	g.resolveCollisions(currentTime)
	g.world.Sweep()
	g.checkInvariants()

	g.lastFrameTime = currentTime
}

// fire launches a projectile from the ship's position.
func (g *Game) fire() {
	w := g.cfg.Weapons
	start := g.ship.Pos
	end := start.Add(core.V(0, g.height+w.ProjectileHeight))
	g.world.AddProjectile(&Projectile{
		Body:   Body{Pos: start, W: w.ProjectileWidth, H: w.ProjectileHeight},
		motion: LinearMotion(start, end, w.ProjectileTravel),
	})
	g.fx.PlaySound(core.SoundLaser)
}

// spawn rolls the spawner and adds whatever it produced.
func (g *Game) spawn() {
	switch cat := g.spawner.Roll(); cat {
	case CategoryHealth:
		g.world.AddPowerUp(g.spawner.PowerUp(PowerUpHealth, g.width, g.height))
	case CategoryWeapon:
		g.world.AddPowerUp(g.spawner.PowerUp(PowerUpWeapon, g.width, g.height))
	case CategoryEnemy:
		g.world.AddObstacle(g.spawner.Enemy(g.width, g.height, g.path))
	case CategoryAsteroid:
		g.world.AddObstacle(g.spawner.Asteroid(g.width, g.height))
	}
}

func (g *Game) checkInvariants() {
	if g.ship.Health < 0 || g.ship.Health > g.cfg.Ship.MaxHealth {
		panic(fmt.Sprintf("spacerun: ship health %d outside [0, %d]", g.ship.Health, g.cfg.Ship.MaxHealth))
	}
	if g.ship.FireRate != g.cfg.Weapons.FireRate && g.ship.FireRate != g.cfg.Weapons.BoostedFireRate {
		panic(fmt.Sprintf("spacerun: fire rate %v is neither default nor boosted", g.ship.FireRate))
	}
}

// Ship returns a copy of the ship state.
func (g *Game) Ship() Ship {
	return g.ship
}

// World exposes the entity containers for rendering.
func (g *Game) World() *World {
	return &g.world
}

// Boosted reports whether a weapon power-up is in effect.
func (g *Game) Boosted() bool {
	return g.ship.FireRate == g.cfg.Weapons.BoostedFireRate
}

// PlaySize returns the play-area size in world units.
func (g *Game) PlaySize() (w, h float64) {
	return g.width, g.height
}

// State returns a summary for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Health:   g.ship.Health,
		Elapsed:  g.elapsed,
		GameOver: !g.ship.Alive,
	}
}
