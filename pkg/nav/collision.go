package nav

import "github.com/Faultbox/tilenav/pkg/geom"

// Blocked reports whether a body of the given radius centered at p collides
// with terrain, a static obstacle, or another actor. excludeID names an actor
// to ignore (usually the moving body itself); pass "" to exclude nothing.
//
// Inside a door area the check is deliberately permissive: the effective
// radius shrinks and dynamic objects are ignored entirely, so bodies do not
// snag on frame geometry while passing through.
func (e *Engine) Blocked(p geom.Vec2, radius float64, excludeID string) bool {
	w, h := e.terrain.Bounds()
	margin := radius + e.params.BoundsMargin
	if p.X < margin || p.Y < margin || p.X > float64(w)-margin || p.Y > float64(h)-margin {
		return true
	}

	tx, ty := geom.TileOf(p)
	ctx := e.doorContext(tx, ty)
	if ctx.InDoorArea {
		eff := radius * e.params.DoorRadiusScale
		if ctx.IsDoubleDoor {
			eff = radius * e.params.DoubleDoorRadiusScale
		}
		return e.terrainBlocked(p, eff)
	}

	if e.terrainBlocked(p, radius*e.params.OpenRadiusScale) {
		return true
	}

	for _, obs := range e.scene.Obstacles() {
		if !obs.BlocksMovement() {
			continue
		}
		if obs.Position().Distance(p) < radius+e.params.StaticPad {
			return true
		}
	}
	for _, a := range e.scene.Actors() {
		if excludeID != "" && a.ID() == excludeID {
			continue
		}
		pad := e.params.StaticPad
		if a.Mobile() {
			pad = e.params.MobilePad
		}
		if a.Position().Distance(p) < radius+pad {
			return true
		}
	}
	return false
}

// BlockedTight is Blocked plus squeeze detection: four cardinal probes just
// beyond the body radius, tested at half radius. If both probes of an
// opposing pair hit, the gap is too narrow for the body even though its
// center fits, and the position is reported blocked.
func (e *Engine) BlockedTight(p geom.Vec2, radius float64, excludeID string) bool {
	if e.Blocked(p, radius, excludeID) {
		return true
	}

	reach := radius + e.params.SqueezeProbe
	half := radius / 2
	north := e.Blocked(geom.Vec2{X: p.X, Y: p.Y - reach}, half, excludeID)
	south := e.Blocked(geom.Vec2{X: p.X, Y: p.Y + reach}, half, excludeID)
	if north && south {
		return true
	}
	east := e.Blocked(geom.Vec2{X: p.X + reach, Y: p.Y}, half, excludeID)
	west := e.Blocked(geom.Vec2{X: p.X - reach, Y: p.Y}, half, excludeID)
	return east && west
}

// terrainBlocked tests the center and the four corners of the square of
// half-width eff around p against tile walkability.
func (e *Engine) terrainBlocked(p geom.Vec2, eff float64) bool {
	points := [5]geom.Vec2{
		p,
		{X: p.X - eff, Y: p.Y - eff},
		{X: p.X + eff, Y: p.Y - eff},
		{X: p.X - eff, Y: p.Y + eff},
		{X: p.X + eff, Y: p.Y + eff},
	}
	for _, pt := range points {
		tx, ty := geom.TileOf(pt)
		if e.terrain.Walkability(tx, ty) <= 0 {
			return true
		}
	}
	return false
}

// walkableTile reports whether a tile can be entered at all.
func (e *Engine) walkableTile(tx, ty int) bool {
	return e.terrain.Walkability(tx, ty) > 0
}
