// Package nav computes movement paths for entities across a tile-based world
// with static obstacles, doorways, and dynamically occupied space.
//
// The engine is stateless between calls: it reads the world through the
// Terrain and Scene interfaces and allocates everything else per call, so
// concurrent FindPath calls on an unchanged world are safe. Callers must not
// mutate the world while a search is in flight.
package nav

import "github.com/Faultbox/tilenav/pkg/geom"

// Terrain answers per-tile queries. Walkability is expected to be precomputed
// by the world layer, including static-object influence: 0 means impassable,
// fractional means passable but penalized, 1 means fully open.
type Terrain interface {
	Bounds() (width, height int)
	Walkability(tx, ty int) float64
	IsDoor(tx, ty int) bool
	IsWall(tx, ty int) bool
}

// Collidable is anything with a position in continuous tile units.
type Collidable interface {
	Position() geom.Vec2
}

// Blocking reports whether an object obstructs movement at all.
type Blocking interface {
	BlocksMovement() bool
}

// Obstacle is a static prop (furniture, chest, rubble) that may block movement.
type Obstacle interface {
	Collidable
	Blocking
}

// Actor is a movable body occupying space. Mobile distinguishes actively
// moving bodies (enemies chasing a target) from parked ones (idle NPCs);
// moving bodies get a slightly tighter collision pad so entities can slip
// past each other.
type Actor interface {
	Collidable
	Radius() float64
	ID() string
	Mobile() bool
}

// Scene enumerates the dynamic contents of the world.
type Scene interface {
	Obstacles() []Obstacle
	Actors() []Actor
}

// Orientation of a door: a horizontal door sits in an east-west wall and is
// crossed north-south; a vertical door the other way around.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// DoorContext classifies a tile's relation to nearby doors. Computed per
// query, never cached.
type DoorContext struct {
	InDoorArea     bool
	IsDoubleDoor   bool
	Orientation    Orientation
	DoorTileX      int
	DoorTileY      int
	DistanceToDoor float64
}
