package grid_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/astarGo/internal/generics"
	. "github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/grid/gridtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTick3x3(t *testing.T) {
	g := gridtest.Build(
		"S . .",
		". . .",
		". . E",
	)
	wantStates := []State{StateChecking, StateMarking, StateBacktracking, StateBacktracking, StateEnd}
	for ii, want := range wantStates {
		g.Tick()
		require.Equalf(t, want, g.State(), "after tick #%d", ii+1)
	}
	assert.Equal(t, []Pos{{0, 0}, {1, 1}, {2, 2}}, gridtest.PathPositions(g))
	assert.Equal(t, []Pos{{2, 2}, {1, 1}, {0, 0}}, gridtest.Positions(g.Selected()), "selected goes from end to start")
	assert.Equal(t, 28, g.End().GCost())
	assert.True(t, g.GetNode(1, 1).IsSelected())
	assert.True(t, g.Start().IsStart(), "start keeps its kind")
	assert.True(t, g.End().IsEnd(), "end keeps its kind")
	fmt.Print(gridtest.Render(g))

	// Further ticks are no-ops.
	for range 3 {
		g.Tick()
	}
	assert.Equal(t, StateEnd, g.State())
	assert.Len(t, g.Selected(), 3)
	assert.Equal(t, 8, g.Ticks())
}

func TestCheckingTieBreakByHCost(t *testing.T) {
	g := gridtest.Build(
		"S . . .",
		". . . E",
	)
	g.Tick()
	require.Equal(t, StateChecking, g.State())
	potential := g.Potential()
	require.Equal(t, []Pos{{0, 1}, {1, 0}, {1, 1}}, gridtest.Positions(potential))
	// (1,0) and (1,1) have the same f-cost, but (1,1) is closer to the end.
	assert.Equal(t, []int{40, 34, 34}, generics.SliceMap(potential, (*Node).FCost))
	assert.Equal(t, []int{30, 24, 20}, generics.SliceMap(potential, (*Node).HCost))

	g.Tick()
	checked := g.Checked()
	assert.Equal(t, Pos{1, 1}, checked[len(checked)-1].Pos())
	assert.True(t, g.GetNode(1, 0).IsPotential())
	assert.Equal(t, []Pos{{0, 1}, {1, 0}}, gridtest.Positions(g.Potential()))
}

func TestCheckingTieBreakByFrontierOrder(t *testing.T) {
	g := gridtest.Build(
		". S .",
		". # .",
		". E .",
	)
	g.Tick()
	potential := g.Potential()
	require.Equal(t, []Pos{{0, 0}, {2, 0}, {0, 1}, {2, 1}}, gridtest.Positions(potential))
	// (0,1) and (2,1) have the same f-cost and h-cost: the first in the frontier wins.
	assert.Equal(t, []int{34, 34, 28, 28}, generics.SliceMap(potential, (*Node).FCost))

	g.Tick()
	assert.True(t, g.GetNode(0, 1).IsChecked())
	assert.True(t, g.GetNode(2, 1).IsPotential())

	_, err := g.Run(t.Context(), 100)
	require.NoError(t, err)
	assert.Equal(t, []Pos{{1, 0}, {0, 1}, {1, 2}}, gridtest.PathPositions(g))
	assert.Equal(t, 28, g.End().GCost())
}

// checkPath verifies the path after the search has ended: it goes from start to end, through
// neighbours and strictly increasing g-costs, never crossing walls.
func checkPath(t *testing.T, g *Grid) {
	t.Helper()
	require.True(t, g.Done())
	path := g.Path()
	require.GreaterOrEqual(t, len(path), 2)
	assert.Same(t, g.Start(), path[0])
	assert.Same(t, g.End(), path[len(path)-1])
	for ii := 1; ii < len(path); ii++ {
		prev, node := path[ii-1], path[ii]
		assert.Truef(t, prev.Pos().IsNeighbour(node.Pos()), "path step %s -> %s is not between neighbours", prev.Pos(), node.Pos())
		assert.Lessf(t, prev.GCost(), node.GCost(), "g-cost must increase along the path: %s -> %s", prev, node)
		assert.False(t, node.IsWall())
	}
	for _, node := range path[1 : len(path)-1] {
		assert.Truef(t, node.IsSelected(), "inner path node %s should be selected", node)
	}
	assert.GreaterOrEqual(t, g.End().GCost(), g.Start().DistanceTo(g.End()), "cost can't beat the heuristic")
}

func TestObstacleFreePaths(t *testing.T) {
	testCases := []struct {
		cols, rows int
		start, end Pos
	}{
		{2, 1, Pos{0, 0}, Pos{1, 0}},
		{5, 5, Pos{0, 0}, Pos{4, 4}},
		{5, 5, Pos{4, 4}, Pos{0, 0}},
		{7, 3, Pos{0, 1}, Pos{6, 1}},
		{6, 9, Pos{5, 0}, Pos{0, 8}},
		{10, 10, Pos{3, 7}, Pos{8, 1}},
		{12, 4, Pos{11, 3}, Pos{0, 0}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%dx%d_%s_to_%s", tc.cols, tc.rows, tc.start, tc.end), func(t *testing.T) {
			g := gridtest.Empty(tc.cols, tc.rows, tc.start, tc.end)
			ticks, err := g.Run(t.Context(), 10_000)
			require.NoError(t, err)
			assert.Equal(t, ticks, g.Ticks())
			checkPath(t, g)
		})
	}
}

func TestPathAroundWalls(t *testing.T) {
	g := gridtest.Build(
		"S . # . . .",
		". . # . # .",
		". . # . # E",
		". . . . # .",
		". # # # # .",
		". . . . . .",
	)
	_, err := g.Run(t.Context(), 10_000)
	require.NoError(t, err)
	checkPath(t, g)
	fmt.Print(gridtest.Render(g))
}

func TestSearchInvariantsPerTick(t *testing.T) {
	g := gridtest.Build(
		". . . . . . . .",
		". S . . # . . .",
		". . . . # . . .",
		". # # # # . E .",
		". . . . . . . .",
	)
	for !g.Done() {
		before := g.State()
		numChecked, numPotential := len(g.Checked()), len(g.Potential())
		g.Tick()

		checked, potential := g.Checked(), g.Potential()
		require.Same(t, g.Start(), checked[0], "start must be the first checked node")
		require.Len(t, generics.Dedup(potential), len(potential), "potential nodes must not repeat")
		for _, node := range potential {
			require.Truef(t, node.IsPotential(), "node %s in the frontier", node)
		}
		if before == StateChecking {
			require.Len(t, checked, numChecked+1, "exactly one node checked per tick")
			require.Len(t, potential, numPotential-1)
			require.Equal(t, KindChecked, checked[len(checked)-1].Kind())
		}
		require.Less(t, g.Ticks(), 10_000)
	}
	checkPath(t, g)
}

func TestUnreachableEnd(t *testing.T) {
	g := gridtest.Build(
		"S # .",
		"# # .",
		". . E",
	)
	assert.False(t, g.Stalled())
	g.Tick()
	assert.Equal(t, StateChecking, g.State())
	assert.True(t, g.Stalled())

	ticks, err := g.Run(t.Context(), 50)
	assert.Equal(t, 50, ticks)
	assert.True(t, errors.Is(err, ErrTickLimit), "got %v", err)
	assert.False(t, g.Done())
	assert.Empty(t, g.Potential())
	assert.Empty(t, g.Selected())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	ticks, err = g.Run(ctx, 0)
	assert.Equal(t, 0, ticks)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBacktrackingWithoutPredecessor(t *testing.T) {
	g := gridtest.Build(
		"S . . .",
		". . . .",
		". . E .",
	)
	for g.State() != StateBacktracking {
		g.Tick()
	}
	// Moving the end during backtracking leaves the search without a way back.
	require.True(t, g.PlaceEndAt(gridtest.Pixel(3, 0)))
	err := exceptions.TryCatch[error](g.Tick)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariant), "got %v", err)
}
