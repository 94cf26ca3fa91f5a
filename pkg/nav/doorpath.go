package nav

import (
	"math"

	"github.com/Faultbox/tilenav/pkg/geom"
)

// doorCrossing is one door tile a path segment passes through.
type doorCrossing struct {
	tileX, tileY int
}

// insertDoorWaypoints rewrites the path so that every doorway is crossed
// squarely: aligned with the door's axis, through its center, and out the far
// side, instead of clipping the frame at an angle. The input is walked
// immutably and a fresh sequence is built.
func (e *Engine) insertDoorWaypoints(path []geom.Vec2, radius float64) []geom.Vec2 {
	if len(path) < 2 {
		return path
	}

	out := make([]geom.Vec2, 0, len(path))
	out = append(out, path[0])
	seen := make(map[[2]int]struct{})

	for i := 0; i+1 < len(path); i++ {
		crossings := e.doorCrossings(path[i], path[i+1], seen)
		for _, crossing := range crossings {
			out = append(out, e.doorWaypoints(path[i], crossing, radius)...)
		}

		// An endpoint inside a handled door tile is redundant with the
		// inserted center and would drag the path back through the frame.
		end := path[i+1]
		ex, ey := geom.TileOf(end)
		covered := false
		for _, c := range crossings {
			if c.tileX == ex && c.tileY == ey {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, end)
		}
	}
	return out
}

// doorCrossings samples the segment a-b and collects every door tile it
// passes through, skipping tiles already handled on earlier segments.
func (e *Engine) doorCrossings(a, b geom.Vec2, seen map[[2]int]struct{}) []doorCrossing {
	dist := a.Distance(b)
	steps := int(dist * e.params.DoorSamplesPerTile)
	if steps < 3 {
		steps = 3
	}

	var crossings []doorCrossing
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		tx, ty := geom.TileOf(a.Lerp(b, t))
		if !e.terrain.IsDoor(tx, ty) {
			continue
		}
		tile := [2]int{tx, ty}
		if _, done := seen[tile]; done {
			continue
		}
		seen[tile] = struct{}{}
		crossings = append(crossings, doorCrossing{tileX: tx, tileY: ty})
	}
	return crossings
}

// doorWaypoints builds the waypoint run for one door crossing approached from
// the given position: an optional alignment point to get onto the door's
// crossing axis, an approach point short of the frame, the door center, and
// an exit point past the far side.
func (e *Engine) doorWaypoints(from geom.Vec2, crossing doorCrossing, radius float64) []geom.Vec2 {
	center := geom.TileCenter(crossing.tileX, crossing.tileY)
	orientation := e.doorOrientation(crossing.tileX, crossing.tileY)

	alignClear := math.Max(e.params.AlignClearance, radius+e.params.AlignRadiusPad)
	approachClear := math.Max(e.params.ApproachClearance, radius+e.params.ApproachRadiusPad)
	exitClear := math.Max(e.params.ExitClearance, radius+e.params.ExitRadiusPad)

	var waypoints []geom.Vec2
	if orientation == Horizontal {
		// Crossed north-south; the crossing axis is the vertical through the
		// door center.
		side := approachSign(from.Y - center.Y)
		if math.Abs(from.X-center.X) > e.params.AlignTolerance {
			waypoints = append(waypoints, geom.Vec2{X: center.X, Y: center.Y + side*alignClear})
		}
		waypoints = append(waypoints,
			geom.Vec2{X: center.X, Y: center.Y + side*approachClear},
			center,
			geom.Vec2{X: center.X, Y: center.Y - side*exitClear},
		)
		return waypoints
	}

	side := approachSign(from.X - center.X)
	if math.Abs(from.Y-center.Y) > e.params.AlignTolerance {
		waypoints = append(waypoints, geom.Vec2{X: center.X + side*alignClear, Y: center.Y})
	}
	waypoints = append(waypoints,
		geom.Vec2{X: center.X + side*approachClear, Y: center.Y},
		center,
		geom.Vec2{X: center.X - side*exitClear, Y: center.Y},
	)
	return waypoints
}

// approachSign maps a signed offset to the side it approaches from.
func approachSign(delta float64) float64 {
	if delta < 0 {
		return -1
	}
	return 1
}
