package nav

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tilenav/pkg/geom"
)

// Engine computes paths over a tile world. It holds only read-only references
// and tuning; every FindPath call works on fresh state.
type Engine struct {
	terrain Terrain
	scene   Scene
	params  Params
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithParams overrides the default tuning constants.
func WithParams(p Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithLogger attaches a logger for per-call diagnostics. The engine logs at
// debug level only.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an Engine reading the given terrain and scene.
func New(terrain Terrain, scene Scene, opts ...Option) *Engine {
	e := &Engine{
		terrain: terrain,
		scene:   scene,
		params:  DefaultParams(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Params returns the engine's tuning constants.
func (e *Engine) Params() Params {
	return e.params
}

// FindPath computes a traversable path for a body of the given radius from
// start to goal. The returned path begins at start; it is empty when no path
// exists and may stop short of goal when validation truncated it. "No path"
// is an expected outcome, not an error.
func (e *Engine) FindPath(start, goal geom.Vec2, radius float64) []geom.Vec2 {
	return e.FindPathFor(start, goal, radius, "")
}

// FindPathFor is FindPath with the requesting actor excluded from collision
// checks, so a body never collides with itself.
func (e *Engine) FindPathFor(start, goal geom.Vec2, radius float64, selfID string) []geom.Vec2 {
	coarse := e.coarsePath(start, goal, radius, selfID)
	if len(coarse) == 0 {
		e.log.Debug("no coarse path",
			zap.Float64("sx", start.X), zap.Float64("sy", start.Y),
			zap.Float64("gx", goal.X), zap.Float64("gy", goal.Y))
		return nil
	}

	path := make([]geom.Vec2, 0, len(coarse)+1)
	path = append(path, start)
	path = append(path, coarse...)

	path = e.smoothCorners(path, radius, selfID)
	path = e.insertDoorWaypoints(path, radius)
	path = e.validatePath(path, radius, selfID)

	e.log.Debug("path computed",
		zap.Int("points", len(path)),
		zap.Float64("length", geom.PathLength(path)))
	return path
}

// LineOfSight reports whether a body of the given radius can travel the
// straight segment from a to b without collision. Sampled, not analytic.
func (e *Engine) LineOfSight(a, b geom.Vec2, radius float64) bool {
	return e.lineOfSight(a, b, radius, "")
}

func (e *Engine) lineOfSight(a, b geom.Vec2, radius float64, excludeID string) bool {
	dist := a.Distance(b)
	steps := int(dist * e.params.SightSamplesPerTile)
	if steps < 2 {
		steps = 2
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if e.Blocked(a.Lerp(b, t), radius, excludeID) {
			return false
		}
	}
	return true
}
