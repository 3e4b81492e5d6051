package spacerun

import (
	"math"
	"testing"

	"github.com/vovakirdan/spacerun/internal/core"
)

func TestEnemyPathEndpoints(t *testing.T) {
	p := EnemyPath(368)

	start, _ := p.At(0)
	if start != core.V(0.5, -0.5) {
		t.Errorf("At(0) = %v, expected (0.5,-0.5)", start)
	}
	end, _ := p.At(1)
	if end.Dist(core.V(-2.5, -368)) > 1e-9 {
		t.Errorf("At(1) = %v, expected (-2.5,-368)", end)
	}
	if p.End() != core.V(-2.5, -368) {
		t.Errorf("End() = %v", p.End())
	}
	if p.Length() < 368 {
		t.Errorf("Length() = %v, expected at least the drop height", p.Length())
	}
}

func TestPathConstantSpeed(t *testing.T) {
	p := EnemyPath(800)
	const steps = 100
	want := p.Length() / steps

	prev, _ := p.At(0)
	for i := 1; i <= steps; i++ {
		pt, _ := p.At(float64(i) / steps)
		d := prev.Dist(pt)
		// Chords are never longer than the arc and only slightly shorter.
		if d > want*1.05 || d < want*0.8 {
			t.Fatalf("step %d covered %.2f units, expected about %.2f", i, d, want)
		}
		prev = pt
	}
}

func TestPathHeadingFollowsTangent(t *testing.T) {
	p := NewPathBuilder(core.V(0, 0)).
		CurveTo(core.V(0, -90), core.V(0, -30), core.V(0, -60)).
		CurveTo(core.V(90, -90), core.V(30, -90), core.V(60, -90)).
		Build()

	_, heading := p.At(0.25)
	if math.Abs(heading-(-math.Pi/2)) > 1e-9 {
		t.Errorf("heading on the downward leg = %v, expected -pi/2", heading)
	}
	_, heading = p.At(0.75)
	if math.Abs(heading) > 1e-9 {
		t.Errorf("heading on the rightward leg = %v, expected 0", heading)
	}
}

func TestPathDegenerateTangentUsesChord(t *testing.T) {
	// Control points sit on the end points, so the derivative vanishes there.
	p := NewPathBuilder(core.V(0, 0)).
		CurveTo(core.V(10, 0), core.V(0, 0), core.V(10, 0)).
		Build()

	_, heading := p.At(0)
	if math.Abs(heading) > 1e-9 {
		t.Errorf("heading at a cusp = %v, expected the chord direction 0", heading)
	}
}

func TestPathMotionOffsetsFromOrigin(t *testing.T) {
	p := EnemyPath(368)
	m := PathMotion(core.V(100, 400), p, 7, true)
	var b Body

	if done := m.Step(&b, 3.5); done {
		t.Fatal("path motion finished halfway")
	}
	mid, heading := p.At(0.5)
	if b.Pos != core.V(100, 400).Add(mid) || b.Rotation != heading {
		t.Errorf("body at %v rot %v, expected %v rot %v", b.Pos, b.Rotation, core.V(100, 400).Add(mid), heading)
	}
	if done := m.Step(&b, 3.5); !done {
		t.Error("path motion should finish after 7s")
	}
}
