package spacerun

import (
	"math"
	"sort"

	"github.com/vovakirdan/spacerun/internal/core"
)

// samplesPerSegment controls the arc-length table resolution.
const samplesPerSegment = 32

// Segment is one cubic Bézier piece of a path.
type Segment struct {
	P0, C1, C2, P3 core.Vec2
}

// point evaluates the curve at u in [0, 1].
func (s Segment) point(u float64) core.Vec2 {
	v := 1 - u
	a := v * v * v
	b := 3 * v * v * u
	c := 3 * v * u * u
	d := u * u * u
	return core.Vec2{
		X: a*s.P0.X + b*s.C1.X + c*s.C2.X + d*s.P3.X,
		Y: a*s.P0.Y + b*s.C1.Y + c*s.C2.Y + d*s.P3.Y,
	}
}

// tangent returns the derivative at u. Where control points coincide with
// an end point the derivative vanishes, so the chord is used instead.
func (s Segment) tangent(u float64) core.Vec2 {
	v := 1 - u
	a := 3 * v * v
	b := 6 * v * u
	c := 3 * u * u
	d := core.Vec2{
		X: a*(s.C1.X-s.P0.X) + b*(s.C2.X-s.C1.X) + c*(s.P3.X-s.C2.X),
		Y: a*(s.C1.Y-s.P0.Y) + b*(s.C2.Y-s.C1.Y) + c*(s.P3.Y-s.C2.Y),
	}
	if d.Len() < 1e-9 {
		return s.P3.Sub(s.P0)
	}
	return d
}

type lutEntry struct {
	dist float64 // cumulative arc length at this sample
	seg  int
	u    float64
}

// Path is an immutable chain of cubic segments traversed at constant speed.
// Positions are offsets relative to wherever the follower started.
type Path struct {
	segs   []Segment
	lut    []lutEntry
	length float64
}

// PathBuilder assembles a Path one curve at a time.
type PathBuilder struct {
	cur  core.Vec2
	segs []Segment
}

// NewPathBuilder starts a path at the given offset.
func NewPathBuilder(start core.Vec2) *PathBuilder {
	return &PathBuilder{cur: start}
}

// CurveTo appends a cubic curve from the current point to end.
func (b *PathBuilder) CurveTo(end, c1, c2 core.Vec2) *PathBuilder {
	b.segs = append(b.segs, Segment{P0: b.cur, C1: c1, C2: c2, P3: end})
	b.cur = end
	return b
}

// Build freezes the builder into a Path with an arc-length lookup table.
func (b *PathBuilder) Build() *Path {
	p := &Path{segs: append([]Segment(nil), b.segs...)}
	if len(p.segs) == 0 {
		p.segs = []Segment{{P0: b.cur, C1: b.cur, C2: b.cur, P3: b.cur}}
	}

	p.lut = make([]lutEntry, 0, len(p.segs)*samplesPerSegment+1)
	p.lut = append(p.lut, lutEntry{})
	prev := p.segs[0].P0
	for i, s := range p.segs {
		for k := 1; k <= samplesPerSegment; k++ {
			u := float64(k) / samplesPerSegment
			pt := s.point(u)
			p.length += prev.Dist(pt)
			prev = pt
			p.lut = append(p.lut, lutEntry{dist: p.length, seg: i, u: u})
		}
	}
	return p
}

// Length returns the approximate arc length of the path.
func (p *Path) Length() float64 {
	return p.length
}

// Start returns the first point of the path.
func (p *Path) Start() core.Vec2 {
	return p.segs[0].P0
}

// End returns the last point of the path.
func (p *Path) End() core.Vec2 {
	return p.segs[len(p.segs)-1].P3
}

// At returns the offset and heading (radians) at fraction t of the path's
// length. t is clamped to [0, 1].
func (p *Path) At(t float64) (core.Vec2, float64) {
	t = core.ClampF(t, 0, 1)
	if p.length == 0 {
		return p.Start(), -math.Pi / 2
	}

	target := t * p.length
	i := sort.Search(len(p.lut), func(i int) bool { return p.lut[i].dist >= target })
	if i == 0 {
		s := p.segs[0]
		return s.P0, s.tangent(0).Angle()
	}
	if i >= len(p.lut) {
		i = len(p.lut) - 1
	}

	hi, lo := p.lut[i], p.lut[i-1]
	span := hi.dist - lo.dist
	frac := 0.0
	if span > 0 {
		frac = (target - lo.dist) / span
	}

	// lo may belong to the previous segment (u=1) when hi opens a new one.
	loU := lo.u
	if lo.seg != hi.seg {
		loU = 0
	}
	u := loU + (hi.u-loU)*frac
	s := p.segs[hi.seg]
	return s.point(u), s.tangent(u).Angle()
}

// EnemyPath returns the weaving dive flown by enemy ships. The final segment
// descends by the full play-area height.
func EnemyPath(height float64) *Path {
	yMax := -height
	return NewPathBuilder(core.V(0.5, -0.5)).
		CurveTo(core.V(-2.5, -59.5), core.V(0.5, -0.5), core.V(4.55, -29.48)).
		CurveTo(core.V(-27.5, -154.5), core.V(-9.55, -89.52), core.V(-43.32, -115.43)).
		CurveTo(core.V(30.5, -243.5), core.V(-11.68, -193.57), core.V(17.28, -186.95)).
		CurveTo(core.V(-52.5, -379.5), core.V(43.72, -300.05), core.V(-47.71, -335.76)).
		CurveTo(core.V(54.5, -449.5), core.V(-57.29, -423.24), core.V(-8.14, -482.45)).
		CurveTo(core.V(-5.5, -348.5), core.V(117.14, -416.55), core.V(52.25, -308.62)).
		CurveTo(core.V(10.5, -494.5), core.V(-63.25, -388.38), core.V(-14.48, -457.43)).
		CurveTo(core.V(0.5, -559.5), core.V(23.74, -514.16), core.V(6.93, -537.57)).
		CurveTo(core.V(-2.5, yMax), core.V(-5.2, yMax), core.V(-2.5, yMax)).
		Build()
}
