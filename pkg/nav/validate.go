package nav

import "github.com/Faultbox/tilenav/pkg/geom"

// validatePath simulates stepped movement along the path under the same
// collision rules a mover uses at runtime, and returns the longest prefix
// that is actually traversable. Blocked steps are patched around their target
// where possible; otherwise the path is truncated. A partial path is a valid
// outcome, never an error. The path is never extended past its original end.
func (e *Engine) validatePath(path []geom.Vec2, radius float64, excludeID string) []geom.Vec2 {
	if len(path) == 0 {
		return path
	}

	out := make([]geom.Vec2, 0, len(path))
	out = append(out, path[0])
	current := path[0]

	for i := 1; i < len(path); i++ {
		target := path[i]
		dist := current.Distance(target)
		steps := int(dist * e.params.ValidateSamplesPerTile)
		if steps < 3 {
			steps = 3
		}

		failedAt := 0
		for k := 1; k <= steps; k++ {
			t := float64(k) / float64(steps)
			if e.BlockedTight(current.Lerp(target, t), radius, excludeID) {
				failedAt = k
				break
			}
		}

		switch {
		case failedAt == 0:
			out = append(out, target)
			current = target

		case failedAt == 1:
			// The step is invalid from the outset; try to route around the
			// target instead of through it.
			alt, ok := e.patchTarget(current, target, pathNext(path, i), radius, excludeID)
			if !ok {
				return out
			}
			out = append(out, alt)
			current = alt

		default:
			// Partway failure: keep the last sample that passed and resume
			// from there.
			last := current.Lerp(target, float64(failedAt-1)/float64(steps))
			out = append(out, last)
			current = last
		}
	}
	return out
}

// patchTarget tries fixed offsets around a blocked target for a stand-in
// waypoint that is clear, reachable from current, and can still see the
// following path point.
func (e *Engine) patchTarget(current, target geom.Vec2, next *geom.Vec2, radius float64, excludeID string) (geom.Vec2, bool) {
	o := e.params.PatchOffset
	offsets := [8]geom.Vec2{
		{X: o}, {X: -o}, {Y: o}, {Y: -o},
		{X: o, Y: o}, {X: o, Y: -o}, {X: -o, Y: o}, {X: -o, Y: -o},
	}
	for _, off := range offsets {
		alt := target.Add(off)
		if e.BlockedTight(alt, radius, excludeID) {
			continue
		}
		if !e.lineOfSight(current, alt, radius, excludeID) {
			continue
		}
		if next != nil && !e.lineOfSight(alt, *next, radius, excludeID) {
			continue
		}
		return alt, true
	}
	return geom.Vec2{}, false
}

func pathNext(path []geom.Vec2, i int) *geom.Vec2 {
	if i+1 < len(path) {
		return &path[i+1]
	}
	return nil
}
