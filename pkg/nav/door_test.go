package nav

import (
	"math"
	"testing"
)

func TestDoorContext_NearDoor(t *testing.T) {
	g := newGridWorld(10, 10)
	g.wallRow(5, 0, 9)
	g.door(5, 5)
	e := New(g, g)

	ctx := e.DoorContextAt(5, 4)
	if !ctx.InDoorArea {
		t.Error("tile adjacent to door should be in door area")
	}
	if ctx.DoorTileX != 5 || ctx.DoorTileY != 5 {
		t.Errorf("expected nearest door (5,5), got (%d,%d)", ctx.DoorTileX, ctx.DoorTileY)
	}
	if ctx.DistanceToDoor != 1 {
		t.Errorf("expected distance 1, got %f", ctx.DistanceToDoor)
	}
	if ctx.IsDoubleDoor {
		t.Error("single door misreported as double")
	}

	// Diagonal neighbor is still inside the area threshold.
	if ctx := e.DoorContextAt(4, 4); !ctx.InDoorArea {
		t.Error("diagonal neighbor should be in door area")
	}
	// Distance 2 is past the 1.5 threshold but still within the scan.
	ctx = e.DoorContextAt(5, 3)
	if ctx.InDoorArea {
		t.Error("distance-2 tile should not be in door area")
	}
	if ctx.DistanceToDoor != 2 {
		t.Errorf("expected distance 2, got %f", ctx.DistanceToDoor)
	}
}

func TestDoorContext_NoDoorInRange(t *testing.T) {
	g := newGridWorld(10, 10)
	g.wallRow(5, 0, 9)
	g.door(5, 5)
	e := New(g, g)

	ctx := e.DoorContextAt(1, 1)
	if ctx.InDoorArea {
		t.Error("far tile should not be in door area")
	}
	if !math.IsInf(ctx.DistanceToDoor, 1) {
		t.Errorf("expected infinite distance outside scan range, got %f", ctx.DistanceToDoor)
	}
}

func TestDoorContext_DoubleDoor(t *testing.T) {
	g := newGridWorld(12, 12)
	g.wallRow(5, 0, 11)
	g.door(5, 5)
	g.door(6, 5)
	e := New(g, g)

	ctx := e.DoorContextAt(5, 4)
	if !ctx.IsDoubleDoor {
		t.Error("adjacent door tiles should classify as a double door")
	}
}

func TestDoorOrientation(t *testing.T) {
	// Door in an east-west wall run: horizontal.
	g := newGridWorld(10, 10)
	g.wallRow(5, 0, 9)
	g.door(5, 5)
	e := New(g, g)
	if got := e.doorOrientation(5, 5); got != Horizontal {
		t.Errorf("expected horizontal, got %v", got)
	}

	// Door in a north-south wall run: vertical.
	g2 := newGridWorld(10, 10)
	g2.wallCol(5, 0, 9)
	g2.door(5, 5)
	e2 := New(g2, g2)
	if got := e2.doorOrientation(5, 5); got != Vertical {
		t.Errorf("expected vertical, got %v", got)
	}

	// A free-standing door with no walls defaults to horizontal.
	g3 := newGridWorld(10, 10)
	g3.door(5, 5)
	e3 := New(g3, g3)
	if got := e3.doorOrientation(5, 5); got != Horizontal {
		t.Errorf("expected horizontal tie-break, got %v", got)
	}
}
