package spacerun

import (
	"math"

	"github.com/vovakirdan/spacerun/internal/core"
)

// resolveCollisions applies one frame of collision rules, in order: weapon
// power-ups, health power-ups, then each obstacle against the ship and
// against projectiles. Nothing is checked once the ship is gone.
func (g *Game) resolveCollisions(now float64) {
	if !g.ship.Alive {
		return
	}

	for _, p := range g.world.powerUps {
		if p.dead || p.Kind != PowerUpWeapon || !g.shipHits(p.Body) {
			continue
		}
		g.world.RemovePowerUp(p)
		g.boostWeapon(now)
	}

	for _, p := range g.world.powerUps {
		if p.dead || p.Kind != PowerUpHealth || !g.shipHits(p.Body) {
			continue
		}
		g.world.RemovePowerUp(p)
		g.repair()
	}

	for _, o := range g.world.obstacles {
		if o.dead {
			continue
		}
		if g.ship.Alive && g.shipHits(o.Body) {
			g.hitShip(o)
			continue
		}
		g.shootDown(o)
	}
}

func (g *Game) shipHits(b Body) bool {
	return g.ship.Bounds().Intersects(b.Bounds())
}

// boostWeapon switches to the boosted fire rate and (re)arms the reversion.
// A second pickup while boosted restarts the window instead of extending it.
func (g *Game) boostWeapon(now float64) {
	g.ship.FireRate = g.cfg.Weapons.BoostedFireRate
	g.timers.Schedule(KeyPowerDown, now, g.cfg.Weapons.BoostDuration, func() {
		g.ship.FireRate = g.cfg.Weapons.FireRate
		g.logger.Debug("weapon boost expired")
	})
	g.logger.Debug("weapon boost", "until", now+g.cfg.Weapons.BoostDuration)
}

// repair restores full health. A full-health ship gains nothing.
func (g *Game) repair() {
	if g.ship.Health >= g.cfg.Ship.MaxHealth {
		return
	}
	g.ship.Health = g.cfg.Ship.MaxHealth
	g.hud.OnHealthChanged(g.ship.Health)
	g.logger.Debug("ship repaired", "health", g.ship.Health)
}

// hitShip resolves an obstacle ramming the ship.
func (g *Game) hitShip(o *Obstacle) {
	fx := g.cfg.Effects
	g.fx.SpawnEffect(core.EffectObstacleExplosion, g.ship.Pos, fx.ObstacleExplosion)
	g.fx.PlaySound(core.SoundObstacleExplode)
	g.world.RemoveObstacle(o)

	g.ship.Health = max(g.ship.Health-g.cfg.Ship.ObstacleDamage, 0)
	g.hud.OnHealthChanged(g.ship.Health)

	if g.ship.Health <= 0 {
		g.ClearTouchTarget()
		g.ship.Alive = false
		g.fx.PlaySound(core.SoundShipExplode)
		g.fx.SpawnEffect(core.EffectShipExplosion, g.ship.Pos, fx.ShipExplosion)
		g.logger.Info("ship destroyed", "score", g.score, "survived", g.elapsed)
	}
}

// shootDown destroys o with the first projectile overlapping it, if any.
func (g *Game) shootDown(o *Obstacle) {
	for _, p := range g.world.projectiles {
		if p.dead || !p.Bounds().Intersects(o.Bounds()) {
			continue
		}
		g.world.RemoveProjectile(p)
		g.world.RemoveObstacle(o)

		if points := 10 * int(math.Floor(g.elapsed)); points > 0 {
			g.score += points
			g.hud.OnScoreChanged(g.score)
		}
		g.fx.PlaySound(core.SoundObstacleExplode)
		g.fx.SpawnEffect(core.EffectObstacleExplosion, o.Pos, g.cfg.Effects.ObstacleExplosion)
		return
	}
}
