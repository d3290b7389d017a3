// astar-gui opens a window with the incremental A* search.
//
// Use W, S and E to select the wall, start and end tools and click (or drag) on the grid to
// apply them. Enter starts the search, Space resets the grid and Esc deselects the tool.
package main

import (
	"flag"

	"github.com/janpfeifer/astarGo/internal/app"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/layout"
	"github.com/janpfeifer/astarGo/internal/parameters"
	"github.com/janpfeifer/astarGo/internal/ui/window"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagCols        = flag.Int("cols", parameters.DefaultColumns, "Number of columns of the grid. The cell size is --width / --cols.")
	flagWidth       = flag.Int("width", int(parameters.DefaultWidth), "Width of the window in pixels.")
	flagHeight      = flag.Int("height", int(parameters.DefaultHeight), "Height of the window in pixels. The number of rows is --height / cell size.")
	flagLayout      = flag.String("layout", "", "YAML file with the start, end and walls. If empty the default layout is used.")
	flagWatchLayout = flag.Bool("watch_layout", false, "Reload --layout and reset the grid whenever the file changes.")
	flagInterval    = flag.Duration("tick_interval", app.DefaultTickInterval, "Interval between ticks once the search started. 0 to tick only on Enter.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg := grid.ConfigForViewport(*flagCols, float64(*flagWidth), float64(*flagHeight))
	if err := cfg.Validate(); err != nil {
		klog.Exitf("Invalid window geometry: %v", err)
	}
	var l *grid.Layout
	if *flagLayout != "" {
		l = must.M1(layout.Load(*flagLayout))
	}
	a := must.M1(app.New(app.Options{Config: cfg, Layout: l, TickInterval: *flagInterval}))

	var changes <-chan string
	if *flagWatchLayout {
		if *flagLayout == "" {
			klog.Exitf("--watch_layout requires --layout")
		}
		watcher := must.M1(layout.NewWatcher(*flagLayout))
		defer func() { must.M(watcher.Close()) }()
		changes = watcher.Events
		go func() {
			for err := range watcher.Errors {
				klog.Errorf("Watching %q: %v", *flagLayout, err)
			}
		}()
	}

	game := window.New(a, *flagWidth, *flagHeight, changes)
	if err := game.Run("A* search"); err != nil {
		klog.Exitf("Window failed: %+v", err)
	}
}
