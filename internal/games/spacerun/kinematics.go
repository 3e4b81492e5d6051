package spacerun

import (
	"math"

	"github.com/vovakirdan/spacerun/internal/core"
)

// Body is the placement of a sprite: center position, size and rotation.
type Body struct {
	Pos      core.Vec2
	W, H     float64
	Rotation float64 // radians
}

// Bounds returns the axis-aligned box used for collisions. Rotation is
// ignored.
func (b Body) Bounds() core.Rect {
	return core.RectAt(b.Pos, b.W, b.H)
}

type motionKind int

const (
	motionLinear motionKind = iota
	motionPath
)

// Motion is a travel action with a fixed duration plus an optional
// continuous spin. It replaces engine-driven move/rotate actions with state
// that is advanced explicitly every frame.
type Motion struct {
	kind     motionKind
	from, to core.Vec2 // linear travel endpoints
	origin   core.Vec2 // path offset origin
	path     *Path
	duration float64
	elapsed  float64
	spin     float64 // radians per second, applied forever
	orient   bool    // align rotation with the path tangent
}

// LinearMotion moves from one point to another over duration seconds.
func LinearMotion(from, to core.Vec2, duration float64) Motion {
	return Motion{kind: motionLinear, from: from, to: to, duration: duration}
}

// PathMotion follows path, offset from origin, over duration seconds.
func PathMotion(origin core.Vec2, path *Path, duration float64, orient bool) Motion {
	return Motion{kind: motionPath, origin: origin, path: path, duration: duration, orient: orient}
}

// WithSpin adds a constant rotation rate to the motion.
func (m Motion) WithSpin(radiansPerSecond float64) Motion {
	m.spin = radiansPerSecond
	return m
}

// Progress returns the completed fraction of the travel in [0, 1].
func (m Motion) Progress() float64 {
	if m.duration <= 0 {
		return 1
	}
	return core.ClampF(m.elapsed/m.duration, 0, 1)
}

// Step advances the motion by dt and places b accordingly. It reports
// whether the travel action has completed.
func (m *Motion) Step(b *Body, dt float64) bool {
	m.elapsed += dt
	t := m.Progress()

	switch m.kind {
	case motionLinear:
		b.Pos = m.from.Lerp(m.to, t)
	case motionPath:
		off, heading := m.path.At(t)
		b.Pos = m.origin.Add(off)
		if m.orient {
			b.Rotation = heading
		}
	}
	if m.spin != 0 {
		b.Rotation = math.Mod(b.Rotation+m.spin*dt, 2*math.Pi)
	}
	return t >= 1
}

// SteerShip moves pos toward target at speed for dt seconds.
//
// Inside the dead zone the ship does not move at all. Outside it the step
// is capped at the remaining distance so the ship lands on the target
// rather than passing it.
func SteerShip(pos, target core.Vec2, speed, deadZone, dt float64) core.Vec2 {
	d := pos.Dist(target)
	if d <= deadZone {
		return pos
	}
	angle := target.Sub(pos).Angle()
	step := math.Min(speed*dt, d)
	return core.Vec2{
		X: pos.X + step*math.Cos(angle),
		Y: pos.Y + step*math.Sin(angle),
	}
}
