// Package mapfile parses text tile maps into a world the navigation engine
// can read. One rune per tile:
//
//	#  wall
//	.  floor
//	+  door
//	C  chest (floor tile with a blocking obstacle on it)
//	N  npc (floor tile with a parked actor on it)
//	E  enemy (floor tile with a moving actor on it)
//
// Entities are lifted off the tile layer and stand at their tile's center.
package mapfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/tilenav/pkg/geom"
	"github.com/Faultbox/tilenav/pkg/nav"
)

// TileKind is the terrain class of one tile.
type TileKind byte

const (
	TileFloor TileKind = iota
	TileWall
	TileDoor
)

// CreatureRadius is the body radius given to parsed npcs and enemies.
const CreatureRadius = 0.4

// Prop is a static object standing on a tile.
type Prop struct {
	Pos    geom.Vec2
	Blocks bool
}

func (p *Prop) Position() geom.Vec2  { return p.Pos }
func (p *Prop) BlocksMovement() bool { return p.Blocks }

// Creature is a parsed npc or enemy.
type Creature struct {
	Name   string
	Pos    geom.Vec2
	Body   float64
	Moving bool
}

func (c *Creature) Position() geom.Vec2 { return c.Pos }
func (c *Creature) Radius() float64     { return c.Body }
func (c *Creature) ID() string          { return c.Name }
func (c *Creature) Mobile() bool        { return c.Moving }

// Map is a parsed tile map. It implements nav.Terrain and nav.Scene; the
// walkability grid is baked once at parse time.
type Map struct {
	width, height int
	tiles         []TileKind
	walk          []float64
	obstacles     []nav.Obstacle
	actors        []nav.Actor
}

// Parse builds a Map from text data. Short lines are padded with walls so the
// grid is always rectangular.
func Parse(data []byte) (*Map, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return nil, fmt.Errorf("empty map")
	}

	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("empty map")
	}

	m := &Map{
		width:  width,
		height: height,
		tiles:  make([]TileKind, width*height),
		walk:   make([]float64, width*height),
	}

	npcs, enemies := 0, 0
	for y, line := range lines {
		for x := 0; x < width; x++ {
			if x >= len(line) {
				m.tiles[y*width+x] = TileWall
				continue
			}
			center := geom.TileCenter(x, y)
			switch line[x] {
			case '#':
				m.tiles[y*width+x] = TileWall
			case '.', ' ':
				m.tiles[y*width+x] = TileFloor
			case '+':
				m.tiles[y*width+x] = TileDoor
			case 'C':
				m.tiles[y*width+x] = TileFloor
				m.obstacles = append(m.obstacles, &Prop{Pos: center, Blocks: true})
			case 'N':
				npcs++
				m.tiles[y*width+x] = TileFloor
				m.actors = append(m.actors, &Creature{
					Name: fmt.Sprintf("npc-%d", npcs),
					Pos:  center,
					Body: CreatureRadius,
				})
			case 'E':
				enemies++
				m.tiles[y*width+x] = TileFloor
				m.actors = append(m.actors, &Creature{
					Name:   fmt.Sprintf("enemy-%d", enemies),
					Pos:    center,
					Body:   CreatureRadius,
					Moving: true,
				})
			default:
				return nil, fmt.Errorf("line %d: unknown tile %q", y+1, line[x])
			}
		}
	}

	m.bakeWalkability()
	return m, nil
}

// LoadFile reads and parses a map file.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	return m, nil
}

// bakeWalkability scores every tile: walls 0, doors 1, floor starts at 1 and
// loses 0.3 per adjacent wall or blocking obstacle, floored at 0.1. Doors are
// exempt from the penalty so the search's door-cost bias stays undisturbed.
func (m *Map) bakeWalkability() {
	occupied := make(map[[2]int]bool)
	for _, obs := range m.obstacles {
		if obs.BlocksMovement() {
			tx, ty := geom.TileOf(obs.Position())
			occupied[[2]int{tx, ty}] = true
		}
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			idx := y*m.width + x
			switch m.tiles[idx] {
			case TileWall:
				m.walk[idx] = 0
			case TileDoor:
				m.walk[idx] = 1
			default:
				score := 1.0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if m.Kind(nx, ny) == TileWall || occupied[[2]int{nx, ny}] {
							score -= 0.3
						}
					}
				}
				if occupied[[2]int{x, y}] {
					score = 0.1
				}
				if score < 0.1 {
					score = 0.1
				}
				m.walk[idx] = score
			}
		}
	}
}

// Kind returns the terrain class of a tile, walls outside the map.
func (m *Map) Kind(tx, ty int) TileKind {
	if tx < 0 || ty < 0 || tx >= m.width || ty >= m.height {
		return TileWall
	}
	return m.tiles[ty*m.width+tx]
}

// Bounds returns the map dimensions in tiles.
func (m *Map) Bounds() (int, int) {
	return m.width, m.height
}

// Walkability returns the baked per-tile score, 0 outside the map.
func (m *Map) Walkability(tx, ty int) float64 {
	if tx < 0 || ty < 0 || tx >= m.width || ty >= m.height {
		return 0
	}
	return m.walk[ty*m.width+tx]
}

// IsDoor reports whether the tile is a door.
func (m *Map) IsDoor(tx, ty int) bool {
	return m.Kind(tx, ty) == TileDoor
}

// IsWall reports whether the tile is a wall. Out-of-map tiles are not
// reported as walls so door orientation near the edge is not skewed.
func (m *Map) IsWall(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= m.width || ty >= m.height {
		return false
	}
	return m.tiles[ty*m.width+tx] == TileWall
}

// Obstacles returns the static objects parsed from the map.
func (m *Map) Obstacles() []nav.Obstacle { return m.obstacles }

// Actors returns the npcs and enemies parsed from the map.
func (m *Map) Actors() []nav.Actor { return m.actors }
