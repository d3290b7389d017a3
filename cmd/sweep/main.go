// sweep runs the search over many random layouts in parallel, verifies the paths found and
// prints a summary.
//
// It is used to exercise the search in bulk: any broken invariant or malformed path aborts the
// sweep with the seed of the layout, so it can be reproduced with --runs=1 --seed=<seed>.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/profilers"
	"github.com/janpfeifer/astarGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagRuns        = flag.Int("runs", 1000, "Number of random layouts to search.")
	flagCols        = flag.Int("cols", 40, "Number of columns of the grids.")
	flagRows        = flag.Int("rows", 20, "Number of rows of the grids.")
	flagWallDensity = flag.Float64("wall_density", 0.25, "Probability of each cell being a wall.")
	flagParallelism = flag.Int("parallelism", runtime.NumCPU(), "Number of searches run in parallel.")
	flagSeed        = flag.Uint64("seed", 0, "Seed of the first layout, the following ones use seed+1, seed+2, ... If 0 a seed is chosen from the clock.")
	flagMaxTicks    = flag.Int("max_ticks", 0, "Maximum number of ticks per search. If 0, 4 times the number of cells.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	opts := Options{
		Runs:        *flagRuns,
		Cols:        *flagCols,
		Rows:        *flagRows,
		WallDensity: *flagWallDensity,
		Parallelism: *flagParallelism,
		Seed:        *flagSeed,
		MaxTicks:    *flagMaxTicks,
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if err := opts.Validate(); err != nil {
		klog.Exitf("Invalid flags: %v", err)
	}

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()
	stopProfilers := must.M1(profilers.Setup())

	var done atomic.Int64
	opts.OnResult = func(Result) { done.Add(1) }
	spinner := spinning.New(ctx, func() string {
		return fmt.Sprintf("%d/%d searches", done.Load(), opts.Runs)
	})
	start := time.Now()
	summary, err := Sweep(ctx, opts)
	spinner.Done()
	must.M(stopProfilers())
	if err != nil {
		klog.Exitf("Sweep failed: %+v", err)
	}
	printSummary(opts, summary, time.Since(start))
}

func printSummary(opts Options, s Summary, elapsed time.Duration) {
	titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Background(lipgloss.Color("#22dd22")).Foreground(lipgloss.Color("#000000"))
	keyStyle := lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("245"))
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%d searches on %dx%d grids, %.0f%% walls (seed %d)",
			opts.Runs, opts.Cols, opts.Rows, 100*opts.WallDensity, opts.Seed)),
		"",
	}
	add := func(key, format string, args ...any) {
		lines = append(lines, keyStyle.Render(key)+fmt.Sprintf(format, args...))
	}
	add("Paths found", "%d", s.Found)
	add("Unreachable ends", "%d", s.Stalled)
	add("Tick limit reached", "%d", s.TickLimited)
	if s.Found > 0 {
		add("Mean ticks (found)", "%.1f", float64(s.FoundTicks)/float64(s.Found))
		add("Mean path nodes", "%.1f", float64(s.PathNodes)/float64(s.Found))
		add("Mean cost / octile", "%.3f", s.CostRatio/float64(s.Found))
		add("Worst cost / octile", "%.3f", s.WorstCostRatio)
	}
	add("Elapsed", "%s", elapsed.Round(time.Millisecond))
	fmt.Println(lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

// gridConfig with cells of size 1.
func gridConfig(cols, rows int) grid.Config {
	return grid.Config{Columns: cols, CellSize: 1, ViewportHeight: float64(rows)}
}
