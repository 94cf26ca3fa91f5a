package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/tilenav/internal/config"
	"github.com/Faultbox/tilenav/internal/logger"
	"github.com/Faultbox/tilenav/internal/mapfile"
	"github.com/Faultbox/tilenav/pkg/geom"
	"github.com/Faultbox/tilenav/pkg/nav"
)

// Viewer renders a map and lets the user place path requests on it.
type Viewer struct {
	screen  tcell.Screen
	cfg     *config.Config
	world   *mapfile.Map
	engine  *nav.Engine
	watcher *fsnotify.Watcher

	cursorX, cursorY int
	start, goal      *geom.Vec2
	path             []geom.Vec2
	status           string
	shade            bool
}

// NewViewer loads the map, builds the engine, and initializes the screen.
func NewViewer(cfg *config.Config) (*Viewer, error) {
	world, err := mapfile.LoadFile(cfg.Map.Path)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	v := &Viewer{
		screen: screen,
		cfg:    cfg,
		world:  world,
		engine: nav.New(world, world, nav.WithParams(cfg.Nav), nav.WithLogger(logger.Log)),
		shade:  cfg.Viewer.ShowWalkability,
		status: "s: set start  g: set goal  c: clear  w: shade  r: reload  q: quit",
	}
	v.cursorX, v.cursorY = 1, 1

	if cfg.Viewer.WatchFiles {
		if err := v.initWatcher(); err != nil {
			// The viewer still works without hot reload.
			logger.Warn("file watching disabled", zap.Error(err))
		}
	}
	return v, nil
}

func (v *Viewer) initWatcher() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(v.cfg.Map.Path)); err != nil {
		_ = w.Close()
		return err
	}
	v.watcher = w
	return nil
}

// Close releases the screen and the watcher.
func (v *Viewer) Close() {
	if v.watcher != nil {
		_ = v.watcher.Close()
	}
	if v.screen != nil {
		v.screen.Fini()
	}
}

// Run drives the event loop until the user quits.
func (v *Viewer) Run() error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if v.watcher != nil {
		watchEvents = make(chan fsnotify.Event, 8)
		watchErrors = make(chan error, 1)
		go func() {
			for {
				select {
				case ev, ok := <-v.watcher.Events:
					if !ok {
						return
					}
					watchEvents <- ev
				case err, ok := <-v.watcher.Errors:
					if !ok {
						return
					}
					watchErrors <- err
				}
			}
		}()
	}

	v.draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if done := v.handleKey(ev); done {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.draw()

		case ev := <-watchEvents:
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != filepath.Clean(v.cfg.Map.Path) {
				continue
			}
			v.reload()
			v.draw()

		case err := <-watchErrors:
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// handleKey processes one key event; returns true when the viewer should quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	w, h := v.world.Bounds()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveCursor(0, -1, w, h)
	case tcell.KeyDown:
		v.moveCursor(0, 1, w, h)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0, w, h)
	case tcell.KeyRight:
		v.moveCursor(1, 0, w, h)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			v.moveCursor(0, -1, w, h)
		case 'j':
			v.moveCursor(0, 1, w, h)
		case 'h':
			v.moveCursor(-1, 0, w, h)
		case 'l':
			v.moveCursor(1, 0, w, h)
		case 's':
			p := geom.TileCenter(v.cursorX, v.cursorY)
			v.start = &p
			v.recompute()
		case 'g':
			p := geom.TileCenter(v.cursorX, v.cursorY)
			v.goal = &p
			v.recompute()
		case 'c':
			v.start, v.goal, v.path = nil, nil, nil
			v.status = "cleared"
		case 'w':
			v.shade = !v.shade
		case 'r':
			v.reload()
		}
	}
	return false
}

func (v *Viewer) moveCursor(dx, dy, w, h int) {
	nx, ny := v.cursorX+dx, v.cursorY+dy
	if nx >= 0 && nx < w {
		v.cursorX = nx
	}
	if ny >= 0 && ny < h {
		v.cursorY = ny
	}
}

// recompute runs the engine for the current start/goal pair.
func (v *Viewer) recompute() {
	if v.start == nil || v.goal == nil {
		v.status = "place both start (s) and goal (g)"
		return
	}
	v.path = v.engine.FindPath(*v.start, *v.goal, v.cfg.Viewer.Radius)
	if len(v.path) == 0 {
		v.status = "no path"
		return
	}
	v.status = fmt.Sprintf("path: %d points, length %.2f", len(v.path), geom.PathLength(v.path))
	logger.Debug("viewer path",
		zap.Int("points", len(v.path)),
		zap.Float64("length", geom.PathLength(v.path)))
}

// reload re-parses the map file and rebuilds the engine against it.
func (v *Viewer) reload() {
	world, err := mapfile.LoadFile(v.cfg.Map.Path)
	if err != nil {
		v.status = fmt.Sprintf("reload failed: %v", err)
		logger.Warn("map reload failed", zap.Error(err))
		return
	}
	v.world = world
	v.engine = nav.New(world, world, nav.WithParams(v.cfg.Nav), nav.WithLogger(logger.Log))
	v.recompute()
	if v.status == "" {
		v.status = "map reloaded"
	}
	logger.Info("map reloaded", zap.String("path", v.cfg.Map.Path))
}

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.world.Bounds()

	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			ch, style := v.tileGlyph(tx, ty)
			v.screen.SetContent(tx, ty, ch, nil, style)
		}
	}

	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, p := range v.path {
		tx, ty := geom.TileOf(p)
		v.screen.SetContent(tx, ty, 'o', nil, pathStyle)
	}
	if v.start != nil {
		tx, ty := geom.TileOf(*v.start)
		v.screen.SetContent(tx, ty, 'S', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}
	if v.goal != nil {
		tx, ty := geom.TileOf(*v.goal)
		v.screen.SetContent(tx, ty, 'G', nil, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	cursorStyle := tcell.StyleDefault.Reverse(true)
	ch, _ := v.tileGlyph(v.cursorX, v.cursorY)
	v.screen.SetContent(v.cursorX, v.cursorY, ch, nil, cursorStyle)

	for i, r := range v.status {
		v.screen.SetContent(i, h+1, r, nil, tcell.StyleDefault)
	}

	v.screen.Show()
}

func (v *Viewer) tileGlyph(tx, ty int) (rune, tcell.Style) {
	style := tcell.StyleDefault
	var ch rune
	switch v.world.Kind(tx, ty) {
	case mapfile.TileWall:
		ch = '#'
		style = style.Foreground(tcell.ColorGray)
	case mapfile.TileDoor:
		ch = '+'
		style = style.Foreground(tcell.ColorAqua)
	default:
		ch = '.'
		if v.shade {
			// Shade penalized floor so obstacle influence is visible.
			if walk := v.world.Walkability(tx, ty); walk < 1 {
				ch = '0' + rune(walk*10)
				style = style.Foreground(tcell.ColorOlive)
			}
		}
	}

	for _, obs := range v.world.Obstacles() {
		ox, oy := geom.TileOf(obs.Position())
		if ox == tx && oy == ty {
			return 'C', style.Foreground(tcell.ColorYellow)
		}
	}
	for _, a := range v.world.Actors() {
		ax, ay := geom.TileOf(a.Position())
		if ax == tx && ay == ty {
			if a.Mobile() {
				return 'E', style.Foreground(tcell.ColorRed)
			}
			return 'N', style.Foreground(tcell.ColorBlue)
		}
	}
	return ch, style
}
