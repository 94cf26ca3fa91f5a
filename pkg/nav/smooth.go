package nav

import (
	"math"

	"github.com/Faultbox/tilenav/pkg/geom"
)

// corner marks an interior path point whose turn angle is sharp enough to
// smooth. Transient, computed only during smoothing.
type corner struct {
	index    int
	angleDeg float64 // signed turn angle
	severity float64 // 0..1, proportional to sharpness
}

// findCorners scans the interior points of path for sharp turns.
func (e *Engine) findCorners(path []geom.Vec2) []corner {
	var corners []corner
	for i := 1; i < len(path)-1; i++ {
		in := path[i].Sub(path[i-1])
		out := path[i+1].Sub(path[i])
		if in.Length() == 0 || out.Length() == 0 {
			continue
		}
		angle := math.Atan2(in.Cross(out), in.Dot(out)) * 180 / math.Pi
		if math.Abs(angle) <= e.params.CornerAngleDeg {
			continue
		}
		corners = append(corners, corner{
			index:    i,
			angleDeg: angle,
			severity: math.Min(math.Abs(angle)/90, 1),
		})
	}
	return corners
}

// smoothCorners replaces sharp turns with curved, collision-checked waypoint
// runs. Corners are processed from the path's end toward its start so earlier
// indices stay valid while the slice grows. A corner whose curve collides
// anywhere is left sharp; the original point is never silently dropped.
func (e *Engine) smoothCorners(path []geom.Vec2, radius float64, excludeID string) []geom.Vec2 {
	if len(path) < 3 {
		return path
	}

	corners := e.findCorners(path)
	for ci := len(corners) - 1; ci >= 0; ci-- {
		c := corners[ci]
		curve := e.cornerCurve(path, c, radius, excludeID)
		if curve == nil {
			continue
		}
		replaced := make([]geom.Vec2, 0, len(path)+len(curve)-1)
		replaced = append(replaced, path[:c.index]...)
		replaced = append(replaced, curve...)
		replaced = append(replaced, path[c.index+1:]...)
		path = replaced
	}
	return path
}

// cornerCurve builds the curve samples for one corner, or nil when any sample
// collides and the sharp corner must stand.
func (e *Engine) cornerCurve(path []geom.Vec2, c corner, radius float64, excludeID string) []geom.Vec2 {
	p := path[c.index]
	inDir := p.Sub(path[c.index-1]).Normalize()
	outDir := path[c.index+1].Sub(p).Normalize()

	offset := e.params.CurveOffsetBase + e.params.CurveOffsetSeverity*c.severity
	if limit := e.params.CurveRadiusFactor * radius; offset > limit {
		offset = limit
	}

	entry := p.Sub(inDir.Scale(offset))
	exit := p.Add(outDir.Scale(offset))

	samples := int(offset * e.params.CurveSamplesPerUnit)
	if samples < 3 {
		samples = 3
	}

	curve := make([]geom.Vec2, 0, samples)
	for k := 0; k < samples; k++ {
		t := float64(k) / float64(samples-1)
		pt := quadBezier(entry, p, exit, t)
		if e.Blocked(pt, radius, excludeID) {
			return nil
		}
		curve = append(curve, pt)
	}
	return curve
}

// quadBezier evaluates the quadratic Bezier with control point ctrl at t.
func quadBezier(a, ctrl, b geom.Vec2, t float64) geom.Vec2 {
	u := 1 - t
	return a.Scale(u * u).Add(ctrl.Scale(2 * u * t)).Add(b.Scale(t * t))
}
