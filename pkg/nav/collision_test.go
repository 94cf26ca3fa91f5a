package nav

import (
	"testing"

	"github.com/Faultbox/tilenav/pkg/geom"
)

func TestBlocked_WorldBounds(t *testing.T) {
	g := newGridWorld(10, 10)
	e := New(g, g)

	// Margin is radius + 0.1.
	if !e.Blocked(geom.Vec2{X: 0.3, Y: 5}, 0.4, "") {
		t.Error("point inside border margin should be blocked")
	}
	if e.Blocked(geom.Vec2{X: 0.6, Y: 5}, 0.4, "") {
		t.Error("point just past border margin should be clear")
	}
	if !e.Blocked(geom.Vec2{X: 9.7, Y: 5}, 0.4, "") {
		t.Error("point inside far border margin should be blocked")
	}
}

func TestBlocked_WallTiles(t *testing.T) {
	g := newGridWorld(10, 10)
	g.wall(5, 5)
	e := New(g, g)

	if !e.Blocked(geom.Vec2{X: 5.5, Y: 5.5}, 0.4, "") {
		t.Error("center of wall tile should be blocked")
	}
	// The effective radius is scaled down to 0.7, so a point whose nominal
	// square overlaps the wall can still be clear.
	if e.Blocked(geom.Vec2{X: 4.6, Y: 5.5}, 0.4, "") {
		t.Error("point with scaled square clear of the wall should pass")
	}
	if !e.Blocked(geom.Vec2{X: 4.8, Y: 5.5}, 0.4, "") {
		t.Error("point whose scaled square reaches the wall should be blocked")
	}
}

func TestBlocked_ObjectPads(t *testing.T) {
	g := newGridWorld(12, 12)
	g.obstacles = append(g.obstacles, blockProp{pos: geom.Vec2{X: 5.5, Y: 5.5}})
	g.actors = append(g.actors,
		testActor{id: "npc-1", pos: geom.Vec2{X: 9.5, Y: 5.5}, radius: 0.4},
		testActor{id: "enemy-1", pos: geom.Vec2{X: 5.5, Y: 9.5}, radius: 0.4, mobile: true},
	)
	e := New(g, g)

	// Static objects and parked npcs pad by 0.35.
	if !e.Blocked(geom.Vec2{X: 6.2, Y: 5.5}, 0.4, "") {
		t.Error("point within static pad of obstacle should be blocked")
	}
	if e.Blocked(geom.Vec2{X: 6.5, Y: 5.5}, 0.4, "") {
		t.Error("point outside static pad of obstacle should be clear")
	}
	if !e.Blocked(geom.Vec2{X: 8.8, Y: 5.5}, 0.4, "") {
		t.Error("point within static pad of npc should be blocked")
	}

	// Moving bodies pad by 0.3.
	if !e.Blocked(geom.Vec2{X: 5.5, Y: 8.85}, 0.4, "") {
		t.Error("point within mobile pad of enemy should be blocked")
	}
	if e.Blocked(geom.Vec2{X: 5.5, Y: 8.75}, 0.4, "") {
		t.Error("point outside mobile pad of enemy should be clear")
	}
}

func TestBlocked_ExcludesActor(t *testing.T) {
	g := newGridWorld(10, 10)
	g.actors = append(g.actors, testActor{id: "npc-1", pos: geom.Vec2{X: 5.5, Y: 5.5}, radius: 0.4})
	e := New(g, g)

	p := geom.Vec2{X: 5.5, Y: 5.5}
	if !e.Blocked(p, 0.4, "") {
		t.Error("actor's own position should block others")
	}
	if e.Blocked(p, 0.4, "npc-1") {
		t.Error("actor should not collide with itself")
	}
}

func TestBlocked_DoorAreaIgnoresObjects(t *testing.T) {
	g := newGridWorld(10, 10)
	g.wallRow(5, 0, 9)
	g.door(5, 5)
	// One enemy loitering in the doorway, one out in the open.
	g.actors = append(g.actors,
		testActor{id: "enemy-1", pos: geom.Vec2{X: 5.6, Y: 5.5}, radius: 0.4, mobile: true},
		testActor{id: "enemy-2", pos: geom.Vec2{X: 2.5, Y: 8.5}, radius: 0.4, mobile: true},
	)
	e := New(g, g)

	// Inside the door area only terrain applies, and with a shrunken radius.
	if e.Blocked(geom.Vec2{X: 5.5, Y: 5.5}, 0.4, "") {
		t.Error("door center should stay passable despite the loitering enemy")
	}
	// Away from the door the usual dynamic checks apply.
	if !e.Blocked(geom.Vec2{X: 2.6, Y: 8.5}, 0.4, "") {
		t.Error("enemy in the open should block normally")
	}
}

func TestBlockedTight_SqueezeDetection(t *testing.T) {
	// Obstacles north and south of the probe point: neither blocks the
	// center directly, but together they pinch the gap shut.
	g := newGridWorld(12, 12)
	g.obstacles = append(g.obstacles,
		blockProp{pos: geom.Vec2{X: 5.5, Y: 4.5}},
		blockProp{pos: geom.Vec2{X: 5.5, Y: 6.5}},
	)
	e := New(g, g)

	p := geom.Vec2{X: 5.5, Y: 5.5}
	if e.Blocked(p, 0.4, "") {
		t.Fatal("direct check should pass, obstacles are out of pad range")
	}
	if !e.BlockedTight(p, 0.4, "") {
		t.Error("squeeze detection should report the pinched gap as blocked")
	}
}

func TestBlockedTight_OneSidedObstacleIsClear(t *testing.T) {
	g := newGridWorld(12, 12)
	g.obstacles = append(g.obstacles, blockProp{pos: geom.Vec2{X: 5.5, Y: 4.5}})
	e := New(g, g)

	if e.BlockedTight(geom.Vec2{X: 5.5, Y: 5.5}, 0.4, "") {
		t.Error("a single-sided obstacle is not a squeeze")
	}
}
