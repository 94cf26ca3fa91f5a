package nav

import (
	"math"
	"testing"

	"github.com/Faultbox/tilenav/pkg/geom"
)

func TestFindCorners(t *testing.T) {
	g := newGridWorld(10, 10)
	e := New(g, g)

	straight := []geom.Vec2{{X: 2.5, Y: 2.5}, {X: 4.5, Y: 2.5}, {X: 6.5, Y: 2.5}}
	if c := e.findCorners(straight); len(c) != 0 {
		t.Errorf("straight path should have no corners, got %v", c)
	}

	// Diagonal to straight is a 45 degree turn, right at the threshold.
	gentle := []geom.Vec2{{X: 2.5, Y: 2.5}, {X: 3.5, Y: 3.5}, {X: 4.5, Y: 3.5}}
	if c := e.findCorners(gentle); len(c) != 0 {
		t.Errorf("45 degree turn should not count as a corner, got %v", c)
	}

	right := []geom.Vec2{{X: 2.5, Y: 2.5}, {X: 5.5, Y: 2.5}, {X: 5.5, Y: 5.5}}
	corners := e.findCorners(right)
	if len(corners) != 1 {
		t.Fatalf("expected one corner, got %v", corners)
	}
	if corners[0].index != 1 {
		t.Errorf("corner index = %d, want 1", corners[0].index)
	}
	if math.Abs(corners[0].severity-1) > 1e-9 {
		t.Errorf("90 degree corner severity = %f, want 1", corners[0].severity)
	}
}

func TestSmoothCorners_ReplacesRightAngle(t *testing.T) {
	g := newGridWorld(10, 10)
	e := New(g, g)

	cornerPoint := geom.Vec2{X: 5.5, Y: 2.5}
	path := []geom.Vec2{{X: 2.5, Y: 2.5}, cornerPoint, {X: 5.5, Y: 5.5}}
	smoothed := e.smoothCorners(path, 0.4, "")

	if len(smoothed) <= len(path) {
		t.Fatalf("expected curve samples to replace the corner, got %v", smoothed)
	}
	for _, p := range smoothed {
		if p == cornerPoint {
			t.Errorf("sharp corner point survived smoothing: %v", p)
		}
		if e.Blocked(p, 0.4, "") {
			t.Errorf("smoothed path point %v is blocked", p)
		}
	}
	if smoothed[0] != path[0] || smoothed[len(smoothed)-1] != path[len(path)-1] {
		t.Errorf("smoothing must preserve endpoints, got %v", smoothed)
	}
}

func TestSmoothCorners_CollisionKeepsSharpCorner(t *testing.T) {
	g := newGridWorld(10, 10)
	g.obstacles = append(g.obstacles, blockProp{pos: geom.Vec2{X: 5.2, Y: 2.8}})
	e := New(g, g)

	cornerPoint := geom.Vec2{X: 5.5, Y: 2.5}
	path := []geom.Vec2{{X: 2.5, Y: 2.5}, cornerPoint, {X: 5.5, Y: 5.5}}
	smoothed := e.smoothCorners(path, 0.4, "")

	if len(smoothed) != len(path) {
		t.Fatalf("expected corner to stay sharp when the curve collides, got %v", smoothed)
	}
	if smoothed[1] != cornerPoint {
		t.Errorf("corner point replaced despite collision, got %v", smoothed[1])
	}
}

func TestSmoothCorners_ShortPathUntouched(t *testing.T) {
	g := newGridWorld(10, 10)
	e := New(g, g)

	path := []geom.Vec2{{X: 2.5, Y: 2.5}, {X: 5.5, Y: 5.5}}
	if got := e.smoothCorners(path, 0.4, ""); len(got) != 2 {
		t.Errorf("two-point path should pass through unchanged, got %v", got)
	}
}

func TestQuadBezier_Endpoints(t *testing.T) {
	a := geom.Vec2{X: 1, Y: 1}
	ctrl := geom.Vec2{X: 2, Y: 3}
	b := geom.Vec2{X: 3, Y: 1}

	if got := quadBezier(a, ctrl, b, 0); got != a {
		t.Errorf("t=0 should give the start, got %v", got)
	}
	if got := quadBezier(a, ctrl, b, 1); got != b {
		t.Errorf("t=1 should give the end, got %v", got)
	}
	mid := quadBezier(a, ctrl, b, 0.5)
	if mid.Y <= a.Y {
		t.Errorf("midpoint should bow toward the control point, got %v", mid)
	}
}
