package geom

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Sub(t *testing.T) {
	a := Vec2{5, 7}
	b := Vec2{2, 3}
	got := a.Sub(b)
	want := Vec2{3, 4}
	if got != want {
		t.Errorf("Vec2.Sub() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec2{}
	if got := zero.Normalize(); got != zero {
		t.Errorf("zero vector normalize = %v, want zero", got)
	}
}

func TestVec2DotCross(t *testing.T) {
	x := Vec2{1, 0}
	y := Vec2{0, 1}
	if got := x.Dot(y); got != 0 {
		t.Errorf("Vec2.Dot() = %v, want 0", got)
	}
	if got := x.Cross(y); got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("Vec2.Cross() reversed = %v, want -1", got)
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{4, 5}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec2.Distance() = %v, want 5", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 20}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at t=0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at t=1 = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.X != 5 || mid.Y != 10 {
		t.Errorf("Lerp at t=0.5 = %v, want {5 10}", mid)
	}
}

func TestTileOf(t *testing.T) {
	cases := []struct {
		p      Vec2
		tx, ty int
	}{
		{Vec2{0.1, 0.9}, 0, 0},
		{Vec2{5.5, 3.2}, 5, 3},
		{Vec2{7, 7}, 7, 7},
		{Vec2{-0.5, -1.5}, -1, -2},
	}
	for _, c := range cases {
		tx, ty := TileOf(c.p)
		if tx != c.tx || ty != c.ty {
			t.Errorf("TileOf(%v) = (%d,%d), want (%d,%d)", c.p, tx, ty, c.tx, c.ty)
		}
	}
}

func TestTileCenter(t *testing.T) {
	got := TileCenter(3, 7)
	want := Vec2{3.5, 7.5}
	if got != want {
		t.Errorf("TileCenter(3,7) = %v, want %v", got, want)
	}
}

func TestPathLength(t *testing.T) {
	points := []Vec2{{0, 0}, {3, 4}, {3, 8}}
	if got := PathLength(points); math.Abs(got-9) > 1e-9 {
		t.Errorf("PathLength() = %v, want 9", got)
	}
	if got := PathLength(nil); got != 0 {
		t.Errorf("PathLength(nil) = %v, want 0", got)
	}
}
