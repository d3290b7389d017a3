package main

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/astarGo/internal/generics"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Options of a sweep.
type Options struct {
	Runs, Cols, Rows int
	WallDensity      float64
	Parallelism      int

	// Seed of the first layout: run i uses Seed+i.
	Seed uint64

	// MaxTicks per search. If 0, 4 times the number of cells.
	MaxTicks int

	// OnResult is called after each search, from the goroutine that ran it. Optional.
	OnResult func(Result)
}

// Validate the options.
func (opts Options) Validate() error {
	switch {
	case opts.Runs <= 0:
		return errors.Errorf("runs must be > 0, got %d", opts.Runs)
	case opts.Cols <= 0 || opts.Rows <= 0 || opts.Cols*opts.Rows < 2:
		return errors.Errorf("grid %dx%d must have at least 2 cells", opts.Cols, opts.Rows)
	case opts.WallDensity < 0 || opts.WallDensity >= 1:
		return errors.Errorf("wall density must be in [0, 1), got %g", opts.WallDensity)
	case opts.Parallelism <= 0:
		return errors.Errorf("parallelism must be > 0, got %d", opts.Parallelism)
	case opts.MaxTicks < 0:
		return errors.Errorf("max ticks must be >= 0, got %d", opts.MaxTicks)
	}
	return nil
}

// Result of one search.
type Result struct {
	Seed                        uint64
	Found, Stalled, TickLimited bool
	Ticks                       int

	// PathNodes and Cost of the path found, and Octile distance between start and end.
	PathNodes, Cost, Octile int
}

// Summary of a sweep.
type Summary struct {
	Found, Stalled, TickLimited int

	// FoundTicks and PathNodes are summed over the searches that found a path.
	FoundTicks, PathNodes int

	// CostRatio is the sum of Cost/Octile over the searches that found a path.
	CostRatio, WorstCostRatio float64
}

func (s *Summary) add(r Result) {
	switch {
	case r.Found:
		s.Found++
		s.FoundTicks += r.Ticks
		s.PathNodes += r.PathNodes
		ratio := float64(r.Cost) / float64(r.Octile)
		s.CostRatio += ratio
		s.WorstCostRatio = max(s.WorstCostRatio, ratio)
	case r.Stalled:
		s.Stalled++
	case r.TickLimited:
		s.TickLimited++
	}
}

// RandomLayout returns a layout with start and end in distinct random cells, and each other cell
// being a wall with probability density.
func RandomLayout(rng *rand.Rand, cols, rows int, density float64) *grid.Layout {
	randomPos := func() grid.Pos { return grid.Pos{rng.IntN(cols), rng.IntN(rows)} }
	l := &grid.Layout{Start: randomPos()}
	for l.End = randomPos(); l.End == l.Start; l.End = randomPos() {
	}
	for y := range rows {
		for x := range cols {
			pos := grid.Pos{x, y}
			if pos != l.Start && pos != l.End && rng.Float64() < density {
				l.Walls = append(l.Walls, pos)
			}
		}
	}
	return l
}

// Sweep runs opts.Runs searches over random layouts, opts.Parallelism at a time.
// It stops at the first search that fails, or when ctx is cancelled.
func Sweep(ctx context.Context, opts Options) (summary Summary, err error) {
	if err = opts.Validate(); err != nil {
		return
	}
	maxTicks := opts.MaxTicks
	if maxTicks == 0 {
		maxTicks = 4 * opts.Cols * opts.Rows
	}
	cfg := gridConfig(opts.Cols, opts.Rows)

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallelism)
	for i := range opts.Runs {
		seed := opts.Seed + uint64(i)
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, 0))
			l := RandomLayout(rng, opts.Cols, opts.Rows, opts.WallDensity)
			r, err := Search(egCtx, cfg, l, maxTicks)
			if err != nil {
				return errors.WithMessagef(err, "search with seed %d", seed)
			}
			r.Seed = seed
			klog.V(2).Infof("seed %d: %+v", seed, r)
			mu.Lock()
			summary.add(r)
			mu.Unlock()
			if opts.OnResult != nil {
				opts.OnResult(r)
			}
			return nil
		})
	}
	err = eg.Wait()
	if err == nil {
		// Searches skipped because ctx was cancelled.
		err = ctx.Err()
	}
	return
}

// Search runs one search until it finds a path, stalls or reaches maxTicks, and verifies the path.
func Search(ctx context.Context, cfg grid.Config, l *grid.Layout, maxTicks int) (r Result, err error) {
	g, err := grid.New(cfg, l)
	if err != nil {
		return
	}
	err = exceptions.TryCatch[error](func() {
		for !g.Done() && !g.Stalled() && g.Ticks() < maxTicks {
			if g.Ticks()%1000 == 0 && ctx.Err() != nil {
				return
			}
			g.Tick()
		}
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return
	}
	r = Result{
		Found:       g.Done(),
		Stalled:     g.Stalled(),
		TickLimited: !g.Done() && !g.Stalled(),
		Ticks:       g.Ticks(),
		Octile:      g.Start().DistanceTo(g.End()),
	}
	if r.Found {
		path := g.Path()
		r.PathNodes = len(path)
		r.Cost = g.End().GCost()
		err = VerifyPath(g, path)
	}
	return
}

// VerifyPath checks that path goes from the start to the end of g through adjacent, distinct and
// non-wall nodes, with strictly increasing g-costs, and a cost no lower than the octile distance.
func VerifyPath(g *grid.Grid, path []*grid.Node) error {
	if len(path) < 2 {
		return errors.Errorf("path with %d nodes", len(path))
	}
	if path[0] != g.Start() || path[len(path)-1] != g.End() {
		return errors.Errorf("path goes from %s to %s, wanted from %s to %s",
			path[0].Pos(), path[len(path)-1].Pos(), g.Start().Pos(), g.End().Pos())
	}
	seen := generics.MakeSet[grid.Pos](len(path))
	for ii, node := range path {
		if seen.Has(node.Pos()) {
			return errors.Errorf("path visits %s twice", node.Pos())
		}
		seen.Insert(node.Pos())
		if node.IsWall() {
			return errors.Errorf("path goes through the wall %s", node.Pos())
		}
		if ii == 0 {
			continue
		}
		prev := path[ii-1]
		if !prev.Pos().IsNeighbour(node.Pos()) {
			return errors.Errorf("path jumps from %s to %s", prev.Pos(), node.Pos())
		}
		if node.GCost() <= prev.GCost() {
			return errors.Errorf("g-cost doesn't increase from %s (%d) to %s (%d)",
				prev.Pos(), prev.GCost(), node.Pos(), node.GCost())
		}
	}
	if octile := g.Start().DistanceTo(g.End()); g.End().GCost() < octile {
		return errors.Errorf("path cost %d lower than the octile distance %d", g.End().GCost(), octile)
	}
	return nil
}
