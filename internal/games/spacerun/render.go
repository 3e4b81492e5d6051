package spacerun

import (
	"math"

	"github.com/vovakirdan/spacerun/internal/core"
)

// Sprite glyphs. Everything is a single-width rune so layout stays exact.
var (
	shipArt      = []string{" ^ ", "<#>"}
	asteroidSpin = []rune{'@', 'O', '0', 'o'}
	headingArrow = []rune{'>', '/', '^', '\\', '<', '/', 'v', '\\'}
)

// Render draws the ship and every live entity. The screen is not cleared;
// the platform draws the background first and overlays after.
func (g *Game) Render(dst *core.Screen) {
	for _, p := range g.world.powerUps {
		if !p.dead {
			g.drawPowerUp(dst, p)
		}
	}
	for _, o := range g.world.obstacles {
		if o.dead {
			continue
		}
		if o.Kind == ObstacleEnemy {
			g.drawEnemy(dst, o)
		} else {
			g.drawAsteroid(dst, o)
		}
	}
	for _, p := range g.world.projectiles {
		if !p.dead {
			col, row := g.runtime.WorldToScreen(p.Pos)
			dst.SetColored(col, row, '|', core.ColorProjectile)
		}
	}
	if g.ship.Alive {
		g.drawShip(dst)
	}
}

func (g *Game) drawShip(dst *core.Screen) {
	color := core.ColorShip
	if g.ship.Health <= g.cfg.Ship.ObstacleDamage {
		color = core.ColorShipHurt
	}
	if g.Boosted() {
		color = core.ColorBoosted
	}
	col, row := g.runtime.WorldToScreen(g.ship.Pos)
	for dy, line := range shipArt {
		for dx, r := range line {
			if r != ' ' {
				dst.SetColored(col-1+dx, row-1+dy, r, color)
			}
		}
	}
}

// drawAsteroid fills the asteroid's box; the glyph cycles with its spin.
func (g *Game) drawAsteroid(dst *core.Screen, o *Obstacle) {
	frame := int(math.Floor(o.Rotation/(math.Pi/2))) % len(asteroidSpin)
	if frame < 0 {
		frame += len(asteroidSpin)
	}
	g.fillBody(dst, o.Body, asteroidSpin[frame], core.ColorAsteroid)
}

// drawEnemy draws a winged hull with an arrow showing its heading.
func (g *Game) drawEnemy(dst *core.Screen, o *Obstacle) {
	col, row := g.runtime.WorldToScreen(o.Pos)
	octant := int(math.Round(o.Rotation/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	dst.SetColored(col-1, row, '{', core.ColorEnemy)
	dst.SetColored(col, row, headingArrow[octant], core.ColorEnemy)
	dst.SetColored(col+1, row, '}', core.ColorEnemy)
}

func (g *Game) drawPowerUp(dst *core.Screen, p *PowerUp) {
	col, row := g.runtime.WorldToScreen(p.Pos)
	glyph, color := 'W', core.ColorWeapon
	if p.Kind == PowerUpHealth {
		glyph, color = '+', core.ColorHealth
	}
	// Brackets swap every half turn to show the spin.
	left, right := '[', ']'
	if math.Mod(math.Abs(p.Rotation), math.Pi) > math.Pi/2 {
		left, right = '(', ')'
	}
	dst.SetColored(col-1, row, left, color)
	dst.SetColored(col, row, glyph, color)
	dst.SetColored(col+1, row, right, color)
}

// fillBody covers every cell touched by b's box, at least one.
func (g *Game) fillBody(dst *core.Screen, b Body, r rune, c core.Color) {
	box := b.Bounds()
	c0, r0 := g.runtime.WorldToScreen(core.V(box.Left(), box.Top()))
	c1, r1 := g.runtime.WorldToScreen(core.V(box.Right(), box.Bottom()))
	dst.FillRect(c0, r0, max(c1-c0, 1), max(r1-r0, 1), r, c)
}
