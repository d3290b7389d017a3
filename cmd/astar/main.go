// astar runs the incremental A* search in the terminal.
//
// By default it is interactive: the grid is edited with commands ("help" lists them) and the
// search is advanced one tick per empty line. With --autorun the search runs until the end,
// animated with --tick_interval, and with --watch_layout it restarts every time the layout file
// changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/janpfeifer/astarGo/internal/app"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/layout"
	"github.com/janpfeifer/astarGo/internal/parameters"
	"github.com/janpfeifer/astarGo/internal/ui/cli"
	"github.com/janpfeifer/astarGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagGrid = flag.String("grid", "cols=20,cell=1,rows=12",
		"Grid geometry: comma separated cols, width, height, cell and rows. "+
			"E.g.: \"cols=40,width=1600,height=800\".")
	flagLayout      = flag.String("layout", "", "YAML file with the start, end and walls. If empty the default layout is used.")
	flagWatchLayout = flag.Bool("watch_layout", false, "Reload --layout and reset the grid whenever the file changes.")
	flagAutorun     = flag.Bool("autorun", false, "Run the search without waiting for commands.")
	flagInterval    = flag.Duration("tick_interval", 50*time.Millisecond, "Interval between ticks when running the search. 0 prints only the final grid.")
	flagMaxTicks    = flag.Int("max_ticks", 0, "If > 0, maximum number of ticks of --autorun.")
	flagColor       = flag.Bool("color", true, "Use colors in the terminal.")
	flagClear       = flag.Bool("clear", false, "Clear the screen before printing the grid.")
	flagCosts       = flag.Bool("costs", false, "Show the f-cost of the search nodes.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagWatchLayout && *flagLayout == "" {
		klog.Exitf("--watch_layout requires --layout")
	}

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	var l *grid.Layout
	if *flagLayout != "" {
		l = must.M1(layout.Load(*flagLayout))
	}
	a := must.M1(app.New(app.Options{
		Config:       must.M1(parameters.GridConfig(*flagGrid)),
		Layout:       l,
		TickInterval: *flagInterval,
	}))

	var changes <-chan string
	if *flagWatchLayout {
		watcher := must.M1(layout.NewWatcher(*flagLayout))
		defer func() { must.M(watcher.Close()) }()
		changes = watcher.Events
		go func() {
			for err := range watcher.Errors {
				klog.Errorf("Watching %q: %v", *flagLayout, err)
			}
		}()
	}

	ui := cli.New(*flagColor, *flagClear, *flagCosts)
	var err error
	if *flagAutorun {
		err = autorun(ctx, ui, a, changes)
	} else {
		err = interactive(ctx, ui, a, changes)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		klog.Exitf("Failed: %+v", err)
	}
}

// reload the layout file into the App, logging failures: the previous grid is kept.
func reload(a *app.App, path string) bool {
	l, err := layout.Load(path)
	if err == nil {
		err = a.SetLayout(l)
	}
	if err != nil {
		klog.Errorf("Layout not reloaded: %v", err)
		return false
	}
	klog.Infof("Layout %q reloaded", path)
	return true
}

// autorun runs the search and prints the final grid. With layout changes, it waits for the next
// change and runs again, until ctx is cancelled.
func autorun(ctx context.Context, ui *cli.UI, a *app.App, changes <-chan string) error {
	for {
		ui.Print(a)
		err := ui.Animate(ctx, a, *flagMaxTicks)
		if err != nil && !errors.Is(err, grid.ErrTickLimit) {
			return err
		}
		ui.Print(a)
		if err != nil {
			klog.Warningf("%v", err)
		}
		if changes == nil {
			return nil
		}
		fmt.Printf("Waiting for changes in %q (Ctrl+C to exit)...\n", *flagLayout)
		for reloaded := false; !reloaded; {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case path, ok := <-changes:
				if !ok {
					return nil
				}
				reloaded = reload(a, path)
			}
		}
	}
}

// interactive reads commands from the terminal, and applies layout changes in between them.
func interactive(ctx context.Context, ui *cli.UI, a *app.App, changes <-chan string) error {
	type readResult struct {
		cmd cli.Command
		err error
	}
	commands := make(chan readResult)
	next := make(chan struct{})
	go func() {
		defer close(commands)
		for range next {
			cmd, err := ui.ReadCommand()
			commands <- readResult{cmd, err}
			if err != nil {
				return
			}
		}
	}()
	defer close(next)

	ui.PrintHelp()
	for {
		ui.Print(a)
		next <- struct{}{}
	wait:
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case path, ok := <-changes:
				if !ok {
					changes = nil
				} else if reload(a, path) {
					fmt.Println()
					ui.Print(a)
				}
			case result := <-commands:
				if result.err == io.EOF {
					return nil
				}
				if result.err != nil {
					return errors.Wrap(result.err, "failed to read command")
				}
				quit, err := ui.Execute(ctx, a, result.cmd)
				if quit {
					return nil
				}
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return err
					}
					fmt.Printf("    * %v\n", err)
				}
				break wait
			}
		}
	}
}
