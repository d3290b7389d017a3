// Package app holds the state of an interactive session over a grid: the tool selected by the
// user, whether the grid is still being prepared, and the timer that advances the search.
//
// Front-ends (the terminal and the window UIs) own one App and translate their input into
// calls to Key, Click and Update.
package app

import (
	"fmt"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Tool applied by Click.
type Tool uint8

const (
	ToolNone Tool = iota
	ToolWall
	ToolStart
	ToolEnd
)

//go:generate go tool enumer -type=Tool -trimprefix=Tool -values -text app.go

// Key is an input key understood by the App.
type Key uint8

const (
	// KeyEscape deselects the current tool.
	KeyEscape Key = iota
	// KeyW selects the wall tool, only while preparing.
	KeyW
	// KeyS selects the start tool, only while preparing.
	KeyS
	// KeyE selects the end tool, only while preparing.
	KeyE
	// KeyEnter leaves the preparation and advances the search one tick.
	KeyEnter
	// KeySpace resets the grid and goes back to preparing.
	KeySpace
)

//go:generate go tool enumer -type=Key -trimprefix=Key app.go

// DefaultTickInterval between automatic ticks once the search started.
const DefaultTickInterval = 10 * time.Millisecond

// Options to create an App.
type Options struct {
	// Config of the grids created by the App.
	Config grid.Config

	// Layout applied to every new grid. If nil, grid.DefaultLayout is used.
	Layout *grid.Layout

	// TickInterval is the period of the automatic ticks once the search started (see Update).
	// If 0, the search only advances with KeyEnter or Step.
	TickInterval time.Duration
}

// App is the state of an interactive session. It is not safe for concurrent use: it is meant
// to be driven by one UI loop.
type App struct {
	opts      Options
	grid      *grid.Grid
	tool      Tool
	preparing bool
	lastTick  time.Time
}

// New creates an App with a fresh grid, in preparation mode.
func New(opts Options) (*App, error) {
	if opts.Layout != nil {
		opts.Layout = opts.Layout.Clone()
	}
	if opts.TickInterval < 0 {
		return nil, errors.Errorf("invalid negative tick interval %s", opts.TickInterval)
	}
	a := &App{opts: opts}
	if err := a.Reset(); err != nil {
		return nil, err
	}
	return a, nil
}

// Grid currently owned by the App. It changes after Reset or SetLayout.
func (a *App) Grid() *grid.Grid { return a.grid }

// Tool currently selected.
func (a *App) Tool() Tool { return a.tool }

// Preparing returns whether the grid is still being edited: the search has not started yet.
func (a *App) Preparing() bool { return a.preparing }

// TickInterval returns the period of the automatic ticks.
func (a *App) TickInterval() time.Duration { return a.opts.TickInterval }

// Layout used for new grids. A nil layout means grid.DefaultLayout.
func (a *App) Layout() *grid.Layout {
	if a.opts.Layout == nil {
		return nil
	}
	return a.opts.Layout.Clone()
}

// Reset replaces the grid with a new one and goes back to preparation mode.
// The selected tool is kept.
func (a *App) Reset() error {
	g, err := grid.New(a.opts.Config, a.opts.Layout)
	if err != nil {
		return errors.WithMessage(err, "failed to create grid")
	}
	a.install(g)
	return nil
}

// SetLayout changes the layout used for new grids and resets the grid with it.
// If the layout can't be applied, the App is left unchanged.
func (a *App) SetLayout(layout *grid.Layout) error {
	g, err := grid.New(a.opts.Config, layout)
	if err != nil {
		return errors.WithMessage(err, "failed to apply layout")
	}
	if layout != nil {
		layout = layout.Clone()
	}
	a.opts.Layout = layout
	a.install(g)
	return nil
}

func (a *App) install(g *grid.Grid) {
	a.grid = g
	a.preparing = true
	a.lastTick = time.Time{}
	klog.V(1).Infof("grid reset: %dx%d, start=%s, end=%s", g.Cols(), g.Rows(), g.Start().Pos(), g.End().Pos())
}

// Key handles a key press.
//
// It only returns an error if the search broke an internal invariant while ticking, in which
// case the grid is reset.
func (a *App) Key(key Key) error {
	klog.V(2).Infof("key %s (tool=%s, preparing=%v)", key, a.tool, a.preparing)
	switch key {
	case KeyEscape:
		a.tool = ToolNone
	case KeyW, KeyS, KeyE:
		if !a.preparing {
			return nil
		}
		a.tool = toolForKey[key]
	case KeyEnter:
		a.tool = ToolNone
		a.preparing = false
		a.lastTick = time.Time{}
		return a.tick()
	case KeySpace:
		return a.Reset()
	default:
		klog.Warningf("Key %s ignored", key)
	}
	return nil
}

var toolForKey = map[Key]Tool{
	KeyW: ToolWall,
	KeyS: ToolStart,
	KeyE: ToolEnd,
}

// Click applies the current tool to the cell under the pixel coordinates (px, py), and returns
// whether the grid changed. Clicks outside the grid are ignored.
//
// Dragging the mouse should call Click for every new position.
func (a *App) Click(px, py float64) bool {
	if a.tool == ToolNone || !a.grid.ContainsPixel(px, py) {
		return false
	}
	switch a.tool {
	case ToolWall:
		return a.grid.PlaceWallAt(px, py)
	case ToolStart:
		return a.grid.PlaceStartAt(px, py)
	case ToolEnd:
		return a.grid.PlaceEndAt(px, py)
	default:
		exceptions.Panicf("unknown tool %s", a.tool)
	}
	return false
}

// Update should be called periodically (e.g. every frame) with the current time: once the
// preparation is over it advances the search one tick every TickInterval, until it ends or
// stalls. The first call after the search started only starts the timer.
//
// It returns whether it ticked. Errors are as in Key.
func (a *App) Update(now time.Time) (ticked bool, err error) {
	if a.preparing || a.opts.TickInterval == 0 || a.grid.Done() || a.grid.Stalled() {
		return false, nil
	}
	if a.lastTick.IsZero() {
		a.lastTick = now
		return false, nil
	}
	if now.Sub(a.lastTick) < a.opts.TickInterval {
		return false, nil
	}
	a.lastTick = now
	return true, a.tick()
}

// Step leaves the preparation mode, like KeyEnter, and advances the search up to n ticks.
// It stops earlier if the search ends or stalls, and returns the number of ticks run.
func (a *App) Step(n int) (ticks int, err error) {
	a.tool = ToolNone
	a.preparing = false
	for ticks < n && !a.grid.Done() && !a.grid.Stalled() {
		if err = a.tick(); err != nil {
			return ticks, err
		}
		ticks++
	}
	return ticks, nil
}

// tick advances the search, converting a broken invariant into an error and resetting the grid.
func (a *App) tick() error {
	if a.grid.Done() {
		return nil
	}
	err := exceptions.TryCatch[error](a.grid.Tick)
	if err == nil {
		return nil
	}
	klog.Errorf("Search failed after %d ticks, resetting grid: %+v", a.grid.Ticks(), err)
	if resetErr := a.Reset(); resetErr != nil {
		return errors.WithMessagef(resetErr, "search failed with %v, and reset", err)
	}
	return err
}

// Status returns a one-line description of the session, for the UIs.
func (a *App) Status() string {
	g := a.grid
	switch {
	case a.preparing:
		return fmt.Sprintf("Preparing, tool: %s", a.tool)
	case g.Done():
		return fmt.Sprintf("Path found: %d nodes, cost %d, %d ticks", len(g.Selected()), g.End().GCost(), g.Ticks())
	case g.Stalled():
		return fmt.Sprintf("No path to %s: frontier exhausted after %d ticks", g.End().Pos(), g.Ticks())
	default:
		return fmt.Sprintf("Searching: %s, %d ticks, %d potential, %d checked",
			g.State(), g.Ticks(), len(g.Potential()), len(g.Checked()))
	}
}
