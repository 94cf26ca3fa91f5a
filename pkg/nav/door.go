package nav

import "math"

// DoorContextAt classifies tile (tx, ty) against nearby doors. Callers use
// it for placement checks; the engine consults the same classification inside
// every collision query.
func (e *Engine) DoorContextAt(tx, ty int) DoorContext {
	return e.doorContext(tx, ty)
}

// doorContext classifies tile (tx, ty) against nearby doors. It scans the
// surrounding neighborhood for the nearest door tile and, when one is close
// enough, derives the door's orientation and whether it is half of a
// double door. Computed fresh on every query.
func (e *Engine) doorContext(tx, ty int) DoorContext {
	ctx := DoorContext{DistanceToDoor: math.Inf(1)}

	r := e.params.DoorScanRadius
	found := false
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if !e.terrain.IsDoor(tx+dx, ty+dy) {
				continue
			}
			d := math.Hypot(float64(dx), float64(dy))
			if d < ctx.DistanceToDoor {
				ctx.DistanceToDoor = d
				ctx.DoorTileX = tx + dx
				ctx.DoorTileY = ty + dy
				found = true
			}
		}
	}
	if !found {
		return ctx
	}

	ctx.InDoorArea = ctx.DistanceToDoor <= e.params.DoorAreaDistance
	ctx.IsDoubleDoor = e.isDoubleDoor(ctx.DoorTileX, ctx.DoorTileY)
	ctx.Orientation = e.doorOrientation(ctx.DoorTileX, ctx.DoorTileY)
	return ctx
}

// isDoubleDoor reports whether the door tile has another door tile as a
// direct neighbor.
func (e *Engine) isDoubleDoor(dx, dy int) bool {
	return e.terrain.IsDoor(dx+1, dy) || e.terrain.IsDoor(dx-1, dy) ||
		e.terrain.IsDoor(dx, dy+1) || e.terrain.IsDoor(dx, dy-1)
}

// doorOrientation infers a door's orientation from adjacent walls. A door
// flanked by walls east and west sits in an east-west wall run and is
// horizontal; walls north and south make it vertical. Horizontal wins ties.
func (e *Engine) doorOrientation(dx, dy int) Orientation {
	horizontal := 0
	if e.terrain.IsWall(dx-1, dy) {
		horizontal++
	}
	if e.terrain.IsWall(dx+1, dy) {
		horizontal++
	}
	vertical := 0
	if e.terrain.IsWall(dx, dy-1) {
		vertical++
	}
	if e.terrain.IsWall(dx, dy+1) {
		vertical++
	}
	if horizontal >= vertical {
		return Horizontal
	}
	return Vertical
}
