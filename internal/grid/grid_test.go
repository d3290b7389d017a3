package grid_test

import (
	"testing"

	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/grid/gridtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cfg := ConfigForViewport(40, 1600, 830)
	assert.Equal(t, 40.0, cfg.CellSize)
	assert.Equal(t, 20, cfg.Rows(), "rows are rounded down")
	require.NoError(t, cfg.Validate())

	for _, bad := range []Config{
		{Columns: 0, CellSize: 10, ViewportHeight: 100},
		{Columns: 10, CellSize: 0, ViewportHeight: 100},
		{Columns: 10, CellSize: 10, ViewportHeight: 9},
	} {
		err := bad.Validate()
		assert.Truef(t, errors.Is(err, ErrInvalidConfig), "config %+v: got %v", bad, err)
		_, err = New(bad, nil)
		assert.Truef(t, errors.Is(err, ErrInvalidConfig), "New(%+v): got %v", bad, err)
	}
}

func TestDefaultLayout(t *testing.T) {
	g, err := New(Config{Columns: 40, CellSize: 20, ViewportHeight: 400}, nil)
	require.NoError(t, err)
	require.Equal(t, 40, g.Cols())
	require.Equal(t, 20, g.Rows())

	assert.Equal(t, Pos{1, 4}, g.Start().Pos())
	assert.Equal(t, Pos{38, 1}, g.End().Pos())
	assert.Equal(t, StateMarking, g.State())
	assert.Equal(t, []*Node{g.Start()}, g.Checked())

	var walls []Pos
	for node := range g.Nodes() {
		if node.IsWall() {
			walls = append(walls, node.Pos())
		}
	}
	assert.Len(t, walls, 23)
	for _, pos := range []Pos{
		{8, 19}, {8, 16}, {5, 16}, {7, 16}, {8, 12}, {5, 12}, {8, 0}, {8, 8},
	} {
		assert.Truef(t, g.GetNode(pos.X(), pos.Y()).IsWall(), "expected wall at %s", pos)
	}
	assert.True(t, g.GetNode(8, 9).IsEmpty())
	assert.True(t, g.GetNode(8, 11).IsEmpty())

	// Too small for the default layout.
	_, err = New(gridtest.ConfigFor(5, 5), nil)
	assert.True(t, errors.Is(err, ErrOutOfRange), "got %v", err)
}

func TestNewLayoutErrors(t *testing.T) {
	_, err := New(gridtest.ConfigFor(3, 3), &Layout{Start: Pos{0, 0}, End: Pos{0, 0}})
	assert.Error(t, err, "start and end on the same cell")
	_, err = New(gridtest.ConfigFor(3, 3), &Layout{Start: Pos{0, 0}, End: Pos{-2, -1}})
	require.NoError(t, err)
	_, err = New(gridtest.ConfigFor(3, 3), &Layout{Start: Pos{0, 0}, End: Pos{-4, 0}})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	// Walls over start or end are ignored.
	g, err := New(gridtest.ConfigFor(3, 3), &Layout{Start: Pos{0, 0}, End: Pos{2, 2}, Walls: []Pos{{0, 0}, {-1, -1}, {1, 1}}})
	require.NoError(t, err)
	assert.True(t, g.Start().IsStart())
	assert.True(t, g.End().IsEnd())
	assert.True(t, g.GetNode(1, 1).IsWall())
}

func TestGetNodeWraparound(t *testing.T) {
	g := gridtest.Empty(4, 3, Pos{0, 0}, Pos{3, 2})
	assert.Equal(t, Pos{3, 2}, g.GetNode(-1, -1).Pos())
	assert.Equal(t, Pos{0, 0}, g.GetNode(-4, -3).Pos())
	assert.Equal(t, Pos{2, 1}, g.GetNode(2, -2).Pos())

	// Only one adjustment: not a modulo.
	for _, pos := range []Pos{{-5, 0}, {0, -4}, {4, 0}, {0, 3}} {
		_, ok := g.Resolve(pos.X(), pos.Y())
		assert.Falsef(t, ok, "Resolve%s", pos)
		err := exceptions.TryCatch[error](func() { g.GetNode(pos.X(), pos.Y()) })
		assert.Truef(t, errors.Is(err, ErrOutOfRange), "GetNode%s: got %v", pos, err)
	}
}

func TestNeighborNodes(t *testing.T) {
	g := gridtest.Empty(3, 3, Pos{0, 0}, Pos{2, 2})

	// Order: up, left, down, right, up-left, down-left, up-right, down-right.
	got := gridtest.Positions(g.NeighborNodes(g.GetNode(1, 1)))
	assert.Equal(t, []Pos{{1, 0}, {0, 1}, {1, 2}, {2, 1}, {0, 0}, {0, 2}, {2, 0}, {2, 2}}, got)

	// No wraparound on the edges.
	got = gridtest.Positions(g.NeighborNodes(g.GetNode(0, 0)))
	assert.Equal(t, []Pos{{0, 1}, {1, 0}, {1, 1}}, got)
	got = gridtest.Positions(g.NeighborNodes(g.GetNode(2, 1)))
	assert.Equal(t, []Pos{{2, 0}, {1, 1}, {2, 2}, {1, 0}, {1, 2}}, got)
}

func TestPixels(t *testing.T) {
	g, err := New(Config{Columns: 4, CellSize: 20, ViewportHeight: 65}, &Layout{Start: Pos{0, 0}, End: Pos{3, 2}})
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())

	assert.Equal(t, Pos{1, 0}, g.CellAt(39.9, 0).Pos())
	assert.Equal(t, Pos{2, 2}, g.CellAt(40, 59.9).Pos())
	// Negative pixels wrap once, like GetNode.
	assert.Equal(t, Pos{3, 2}, g.CellAt(-1, -1).Pos())

	assert.True(t, g.ContainsPixel(0, 0))
	assert.True(t, g.ContainsPixel(79.9, 59.9))
	assert.False(t, g.ContainsPixel(80, 10))
	assert.False(t, g.ContainsPixel(10, 60), "pixels below the last full row")
	assert.False(t, g.ContainsPixel(-1, 10))

	px, py := g.CellOrigin(2, 1)
	assert.Equal(t, []float64{40, 20}, []float64{px, py})
	px, py = g.CellCenter(2, 1)
	assert.Equal(t, []float64{50, 30}, []float64{px, py})
}

func TestPlaceWallAt(t *testing.T) {
	g := gridtest.Build(
		"S . .",
		". . .",
		". . E",
	)
	assert.True(t, g.PlaceWallAt(gridtest.Pixel(1, 1)))
	assert.True(t, g.GetNode(1, 1).IsWall())

	// Walls never overwrite the start or the end.
	assert.False(t, g.PlaceWallAt(gridtest.Pixel(2, 2)))
	assert.True(t, g.GetNode(2, 2).IsEnd())
	assert.Same(t, g.End(), g.GetNode(2, 2))
	assert.False(t, g.PlaceWallAt(gridtest.Pixel(0, 0)))
	assert.True(t, g.GetNode(0, 0).IsStart())

	// Nodes already marked by the search are overwritten.
	g.Tick()
	require.True(t, g.GetNode(0, 1).IsPotential())
	assert.True(t, g.PlaceWallAt(gridtest.Pixel(0, 1)))
	assert.True(t, g.GetNode(0, 1).IsWall())

	// The wall stays in the frontier without costs, so the next Checking tick picks it and breaks.
	require.Equal(t, StateChecking, g.State())
	assert.Equal(t, []Pos{{0, 1}, {1, 0}}, gridtest.Positions(g.Potential()))
	err := exceptions.TryCatch[error](g.Tick)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariant), "got %v", err)
}

func TestPlaceStartAt(t *testing.T) {
	g := gridtest.Build(
		"S . . .",
		". . . .",
		". . . E",
	)
	oldStart := g.Start()
	g.Tick() // Marking.
	g.Tick() // Checking.
	require.Equal(t, StateMarking, g.State())
	potential := g.Potential()
	require.NotEmpty(t, potential)

	require.True(t, g.PlaceStartAt(gridtest.Pixel(0, 2)))
	assert.True(t, oldStart.IsEmpty())
	assert.Equal(t, Pos{0, 2}, g.Start().Pos())
	assert.Equal(t, 0, g.Start().GCost())
	assert.Equal(t, []*Node{g.Start()}, g.Checked(), "closed set restarts from the new start")

	// Stale state is preserved.
	assert.Equal(t, StateMarking, g.State())
	assert.Equal(t, potential, g.Potential())

	// The end can't be replaced by the start.
	assert.False(t, g.PlaceStartAt(gridtest.Pixel(3, 2)))
	assert.True(t, g.End().IsEnd())
	assert.Equal(t, Pos{0, 2}, g.Start().Pos())
}

func TestPlaceEndAt(t *testing.T) {
	g := gridtest.Build(
		"S . . .",
		". . . .",
		". . . E",
	)
	oldEnd := g.End()
	g.Tick()
	potential := g.Potential()

	require.True(t, g.PlaceEndAt(gridtest.Pixel(3, 0)))
	assert.True(t, oldEnd.IsEmpty())
	assert.Equal(t, Pos{3, 0}, g.End().Pos())
	assert.Equal(t, StateChecking, g.State())
	assert.Equal(t, potential, g.Potential(), "frontier is not reset")

	assert.False(t, g.PlaceEndAt(gridtest.Pixel(0, 0)))
	assert.True(t, g.Start().IsStart())

	// The new end is used by the search.
	_, err := g.Run(t.Context(), 1000)
	require.NoError(t, err)
	path := gridtest.PathPositions(g)
	assert.Equal(t, Pos{0, 0}, path[0])
	assert.Equal(t, Pos{3, 0}, path[len(path)-1])
}
