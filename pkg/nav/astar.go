package nav

import (
	"container/heap"
	"math"

	"github.com/Faultbox/tilenav/pkg/geom"
)

// searchNode is a node in the A* open set.
type searchNode struct {
	x, y   int
	g      float64 // cost from start
	f      float64 // g + heuristic
	parent *searchNode
	index  int // index in heap
}

// searchQueue implements a priority queue over searchNodes.
type searchQueue []*searchNode

func (q searchQueue) Len() int           { return len(q) }
func (q searchQueue) Less(i, j int) bool { return q[i].f < q[j].f }
func (q searchQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *searchQueue) Push(x interface{}) {
	n := len(*q)
	node := x.(*searchNode)
	node.index = n
	*q = append(*q, node)
}

func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*q = old[:n-1]
	return node
}

// neighborStep is one of the eight grid moves.
type neighborStep struct {
	dx, dy   int
	cost     float64
	diagonal bool
}

var neighborSteps = [...]neighborStep{
	{dx: 0, dy: -1, cost: 1},
	{dx: 1, dy: 0, cost: 1},
	{dx: 0, dy: 1, cost: 1},
	{dx: -1, dy: 0, cost: 1},
	{dx: 1, dy: -1, cost: math.Sqrt2, diagonal: true},
	{dx: 1, dy: 1, cost: math.Sqrt2, diagonal: true},
	{dx: -1, dy: 1, cost: math.Sqrt2, diagonal: true},
	{dx: -1, dy: -1, cost: math.Sqrt2, diagonal: true},
}

// coarsePath runs the tile-resolution search from start to goal and refines
// the resulting tiles to sub-tile positions. The returned path excludes the
// start position and ends at the exact goal unless the goal tile had to be
// remapped. An empty result means no path.
func (e *Engine) coarsePath(start, goal geom.Vec2, radius float64, excludeID string) []geom.Vec2 {
	sx, sy := geom.TileOf(start)
	gx, gy := geom.TileOf(goal)

	if !e.walkableTile(sx, sy) {
		var ok bool
		sx, sy, ok = e.nearestWalkable(sx, sy)
		if !ok {
			return nil
		}
	}
	goalMoved := false
	if !e.walkableTile(gx, gy) {
		var ok bool
		gx, gy, ok = e.nearestWalkable(gx, gy)
		if !ok {
			return nil
		}
		goalMoved = true
	}

	goalPoint := goal
	if goalMoved {
		goalPoint = geom.TileCenter(gx, gy)
	}

	// Adjacent tiles: skip the search entirely.
	if absInt(gx-sx) <= 1 && absInt(gy-sy) <= 1 {
		return e.shortHop(start, goalPoint, gx, gy, radius, excludeID)
	}

	tiles := e.astar(sx, sy, gx, gy)
	if len(tiles) == 0 {
		return nil
	}

	// Skip the start tile; the caller's position already covers it.
	path := make([]geom.Vec2, 0, len(tiles)-1)
	for i := 1; i < len(tiles); i++ {
		if i == len(tiles)-1 {
			path = append(path, goalPoint)
			break
		}
		path = append(path, e.subTilePosition(tiles[i][0], tiles[i][1], radius, excludeID))
	}
	return path
}

// shortHop handles start and goal within one tile of each other: direct line
// if clear, otherwise a single synthesized intermediate near the midpoint,
// otherwise the goal tile's center as a last resort.
func (e *Engine) shortHop(start, goalPoint geom.Vec2, gx, gy int, radius float64, excludeID string) []geom.Vec2 {
	if e.lineOfSight(start, goalPoint, radius, excludeID) {
		return []geom.Vec2{goalPoint}
	}

	mid := start.Lerp(goalPoint, 0.5)
	offsets := [5]geom.Vec2{
		{},
		{X: 0.5}, {X: -0.5},
		{Y: 0.5}, {Y: -0.5},
	}
	for _, off := range offsets {
		c := mid.Add(off)
		if e.Blocked(c, radius, excludeID) {
			continue
		}
		if e.lineOfSight(start, c, radius, excludeID) && e.lineOfSight(c, goalPoint, radius, excludeID) {
			return []geom.Vec2{c, goalPoint}
		}
	}
	return []geom.Vec2{geom.TileCenter(gx, gy)}
}

// astar searches the tile grid with 8-connected neighbors. Expansions are
// hard-capped; exceeding the cap yields no path, same as genuine
// unreachability.
func (e *Engine) astar(sx, sy, gx, gy int) [][2]int {
	w, _ := e.terrain.Bounds()
	key := func(x, y int) int { return y*w + x }

	open := &searchQueue{}
	heap.Init(open)
	startNode := &searchNode{x: sx, y: sy, g: 0, f: octile(sx, sy, gx, gy)}
	heap.Push(open, startNode)

	gScore := map[int]float64{key(sx, sy): 0}
	closed := make(map[int]struct{})

	expansions := 0
	for open.Len() > 0 {
		expansions++
		if expansions > e.params.MaxExpansions {
			return nil
		}

		current := heap.Pop(open).(*searchNode)
		currKey := key(current.x, current.y)
		if _, seen := closed[currKey]; seen {
			continue
		}
		closed[currKey] = struct{}{}

		if current.x == gx && current.y == gy {
			return reconstructTiles(current)
		}

		for _, step := range neighborSteps {
			nx, ny := current.x+step.dx, current.y+step.dy
			if !e.walkableTile(nx, ny) {
				continue
			}
			if step.diagonal {
				// No corner cutting past an unwalkable tile.
				if !e.walkableTile(current.x+step.dx, current.y) ||
					!e.walkableTile(current.x, current.y+step.dy) {
					continue
				}
			}
			nKey := key(nx, ny)
			if _, seen := closed[nKey]; seen {
				continue
			}

			g := current.g + e.stepCost(step.cost, nx, ny)
			if prev, ok := gScore[nKey]; ok && g >= prev {
				continue
			}
			gScore[nKey] = g
			heap.Push(open, &searchNode{
				x:      nx,
				y:      ny,
				g:      g,
				f:      g + octile(nx, ny, gx, gy),
				parent: current,
			})
		}
	}
	return nil
}

// stepCost shapes the base move cost by the destination tile: low walkability
// is penalized, door tiles are strongly discounted to pull routes through
// doorways, and wide-open tiles get a mild preference.
func (e *Engine) stepCost(base float64, nx, ny int) float64 {
	walk := e.terrain.Walkability(nx, ny)
	cost := base * (1 + e.params.WalkPenaltyScale*(1-walk))
	switch {
	case e.terrain.IsDoor(nx, ny):
		cost *= e.params.DoorCostFactor
	case walk > e.params.OpenWalkabilityMin:
		cost *= e.params.OpenCostFactor
	}
	return cost
}

// octile is the admissible distance heuristic for 8-connected grids.
func octile(x1, y1, x2, y2 int) float64 {
	dx := float64(absInt(x2 - x1))
	dy := float64(absInt(y2 - y1))
	if dx > dy {
		return dx + (math.Sqrt2-1)*dy
	}
	return dy + (math.Sqrt2-1)*dx
}

func reconstructTiles(end *searchNode) [][2]int {
	var tiles [][2]int
	for node := end; node != nil; node = node.parent {
		tiles = append(tiles, [2]int{node.x, node.y})
	}
	for i, j := 0, len(tiles)-1; i < j; i, j = i+1, j-1 {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return tiles
}

// nearestWalkable searches expanding rings around (tx, ty) for the closest
// walkable tile, up to the configured radius. Scan order is fixed, so ties
// resolve deterministically.
func (e *Engine) nearestWalkable(tx, ty int) (int, int, bool) {
	for r := 1; r <= e.params.GoalSearchRadius; r++ {
		bestX, bestY := 0, 0
		bestDist := math.Inf(1)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if maxInt(absInt(dx), absInt(dy)) != r {
					continue
				}
				if !e.walkableTile(tx+dx, ty+dy) {
					continue
				}
				d := math.Hypot(float64(dx), float64(dy))
				if d < bestDist {
					bestDist = d
					bestX, bestY = tx+dx, ty+dy
				}
			}
		}
		if !math.IsInf(bestDist, 1) {
			return bestX, bestY, true
		}
	}
	return 0, 0, false
}

// subTileOffsets are the candidate displacements from a tile's center tried
// when picking a sub-tile position.
var subTileOffsets = [...]geom.Vec2{
	{},
	{X: 0.2}, {X: -0.2},
	{Y: 0.2}, {Y: -0.2},
	{X: 0.3, Y: 0.3}, {X: 0.3, Y: -0.3},
	{X: -0.3, Y: 0.3}, {X: -0.3, Y: -0.3},
}

// subTilePosition picks a continuous point within tile (tx, ty) that keeps
// clearance from nearby blocking objects and favors open surroundings.
// Candidates are scored by distance from blocking objects inside the
// influence range and by the walkability of surrounding tiles; the best
// unblocked candidate wins, the tile center is the fallback.
func (e *Engine) subTilePosition(tx, ty int, radius float64, excludeID string) geom.Vec2 {
	center := geom.TileCenter(tx, ty)

	best := center
	bestScore := math.Inf(-1)
	for _, off := range subTileOffsets {
		c := center.Add(off)
		if e.Blocked(c, radius, excludeID) {
			continue
		}
		score := e.clearanceScore(c, excludeID)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

func (e *Engine) clearanceScore(p geom.Vec2, excludeID string) float64 {
	var score float64
	influence := e.params.SubTileInfluence
	for _, obs := range e.scene.Obstacles() {
		if !obs.BlocksMovement() {
			continue
		}
		if d := obs.Position().Distance(p); d < influence {
			score -= influence - d
		}
	}
	for _, a := range e.scene.Actors() {
		if excludeID != "" && a.ID() == excludeID {
			continue
		}
		if d := a.Position().Distance(p); d < influence {
			score -= influence - d
		}
	}

	tx, ty := geom.TileOf(p)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			score += e.terrain.Walkability(tx+dx, ty+dy) * 0.1
		}
	}
	return score
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
