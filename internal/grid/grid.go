package grid

import (
	"iter"
	"math"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config describes the geometry of a Grid: the number of columns is given, and the number of rows
// is derived from the viewport height and the size of each (square) cell, in pixels.
type Config struct {
	Columns        int
	CellSize       float64
	ViewportHeight float64
}

// ConfigForViewport returns the Config that fits cols columns in a viewport of the given size:
// the cell size is width/cols.
func ConfigForViewport(cols int, width, height float64) Config {
	cfg := Config{Columns: cols, ViewportHeight: height}
	if cols > 0 {
		cfg.CellSize = width / float64(cols)
	}
	return cfg
}

// Rows derived from the viewport height and the cell size.
func (cfg Config) Rows() int {
	if cfg.CellSize <= 0 {
		return 0
	}
	return int(math.Floor(cfg.ViewportHeight / cfg.CellSize))
}

// Validate returns an error wrapping ErrInvalidConfig if the configuration can't hold at least
// one cell.
func (cfg Config) Validate() error {
	if cfg.Columns <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "columns must be > 0, got %d", cfg.Columns)
	}
	if cfg.CellSize <= 0 || math.IsNaN(cfg.CellSize) || math.IsInf(cfg.CellSize, 0) {
		return errors.Wrapf(ErrInvalidConfig, "cell size must be > 0, got %g", cfg.CellSize)
	}
	if cfg.Rows() <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "viewport height %g is smaller than one cell (%g)",
			cfg.ViewportHeight, cfg.CellSize)
	}
	return nil
}

// Grid owns the nodes and the state of the search over them.
type Grid struct {
	cfg        Config
	rows, cols int
	nodes      []*Node

	startNode, endNode *Node

	// potential is the frontier, checked the closed set and selected the path from the end
	// back to the start.
	potential, checked, selected []*Node

	state            State
	backtrackCurrent *Node
	ticks            int
}

// New creates a grid with the given configuration and applies the layout to it.
// If layout is nil, DefaultLayout is used.
func New(cfg Config, layout *Layout) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if layout == nil {
		layout = DefaultLayout()
	}
	g := &Grid{
		cfg:   cfg,
		cols:  cfg.Columns,
		rows:  cfg.Rows(),
		state: StateMarking,
	}
	g.nodes = make([]*Node, g.rows*g.cols)
	for y := range g.rows {
		for x := range g.cols {
			g.nodes[y*g.cols+x] = NewNode(x, y)
		}
	}
	if err := g.apply(layout); err != nil {
		return nil, err
	}
	klog.V(1).Infof("New grid %dx%d (cell size %g), start=%s, end=%s, %d walls",
		g.cols, g.rows, cfg.CellSize, g.startNode.Pos(), g.endNode.Pos(), len(layout.Walls))
	return g, nil
}

// apply the layout to a freshly created grid.
func (g *Grid) apply(layout *Layout) error {
	start, ok := g.Resolve(layout.Start.X(), layout.Start.Y())
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "start %s in %dx%d grid", layout.Start, g.cols, g.rows)
	}
	end, ok := g.Resolve(layout.End.X(), layout.End.Y())
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "end %s in %dx%d grid", layout.End, g.cols, g.rows)
	}
	if start == end {
		return errors.Errorf("start and end can't be on the same cell %s", start)
	}
	g.startNode = g.GetNode(start.X(), start.Y())
	g.endNode = g.GetNode(end.X(), end.Y())
	g.startNode.MakeStart()
	g.endNode.MakeEnd()
	g.backtrackCurrent = g.endNode
	g.checked = append(g.checked, g.startNode)

	for _, wall := range layout.Walls {
		pos, ok := g.Resolve(wall.X(), wall.Y())
		if !ok {
			return errors.Wrapf(ErrOutOfRange, "wall %s in %dx%d grid", wall, g.cols, g.rows)
		}
		node := g.GetNode(pos.X(), pos.Y())
		if node.IsStart() || node.IsEnd() {
			klog.Warningf("Layout wall %s on top of the %s node ignored", wall, node.Kind())
			continue
		}
		node.MakeWall()
	}
	return nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the size of each cell in pixels.
func (g *Grid) CellSize() float64 { return g.cfg.CellSize }

// Config used to create the grid.
func (g *Grid) Config() Config { return g.cfg }

// Start returns the current start node.
func (g *Grid) Start() *Node { return g.startNode }

// End returns the current end node.
func (g *Grid) End() *Node { return g.endNode }

// Nodes iterates over all nodes in row-major order.
func (g *Grid) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, node := range g.nodes {
			if !yield(node) {
				return
			}
		}
	}
}

// Resolve applies the grid addressing to (x, y): a negative y is adjusted once by adding the
// number of rows, and a negative x once by adding the number of columns. It returns false if the
// result is still outside the grid.
//
// Notice this is not a modulo: (-rows-1) remains out of range.
func (g *Grid) Resolve(x, y int) (Pos, bool) {
	if y < 0 {
		y += g.rows
	}
	if x < 0 {
		x += g.cols
	}
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return Pos{x, y}, false
	}
	return Pos{x, y}, true
}

// GetNode returns the node at (x, y), with the wraparound addressing described in Resolve.
// It panics with an error wrapping ErrOutOfRange if the position doesn't address a cell.
func (g *Grid) GetNode(x, y int) *Node {
	pos, ok := g.Resolve(x, y)
	if !ok {
		panic(errors.Wrapf(ErrOutOfRange, "GetNode(%d, %d) in %dx%d grid", x, y, g.cols, g.rows))
	}
	return g.nodes[pos.Y()*g.cols+pos.X()]
}

// neighbourOffsets in the order they are visited: up, left, down, right, then the diagonals
// up-left, down-left, up-right, down-right.
var neighbourOffsets = [8]Pos{
	{0, -1}, {-1, 0}, {0, 1}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// NeighborNodes returns the up to 8 nodes surrounding node. Unlike GetNode, there is no
// wraparound: neighbours outside the grid are simply not included.
func (g *Grid) NeighborNodes(node *Node) []*Node {
	neighbours := make([]*Node, 0, len(neighbourOffsets))
	for _, offset := range neighbourOffsets {
		x, y := node.X()+offset.X(), node.Y()+offset.Y()
		if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
			continue
		}
		neighbours = append(neighbours, g.nodes[y*g.cols+x])
	}
	return neighbours
}

// pixelToCell converts pixel coordinates to cell coordinates, before any wraparound.
func (g *Grid) pixelToCell(px, py float64) (x, y int) {
	return int(math.Floor(px / g.cfg.CellSize)), int(math.Floor(py / g.cfg.CellSize))
}

// CellAt returns the node under the pixel coordinates (px, py).
// It panics (ErrOutOfRange) like GetNode if there is no such cell.
func (g *Grid) CellAt(px, py float64) *Node {
	x, y := g.pixelToCell(px, py)
	return g.GetNode(x, y)
}

// ContainsPixel returns whether (px, py) is over a cell of the grid, without wraparound.
func (g *Grid) ContainsPixel(px, py float64) bool {
	x, y := g.pixelToCell(px, py)
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// CellOrigin returns the pixel coordinates of the top-left corner of cell (x, y).
func (g *Grid) CellOrigin(x, y int) (px, py float64) {
	return float64(x) * g.cfg.CellSize, float64(y) * g.cfg.CellSize
}

// CellCenter returns the pixel coordinates of the center of cell (x, y).
func (g *Grid) CellCenter(x, y int) (px, py float64) {
	px, py = g.CellOrigin(x, y)
	half := g.cfg.CellSize / 2
	return px + half, py + half
}

// PlaceWallAt turns the cell under (px, py) into a wall.
//
// The start and end nodes are never overwritten: it returns false in that case. Any other node,
// including one already marked by the search, becomes a wall.
//
// A potential node turned into a wall is not removed from the frontier. Having no costs, it is
// the next node picked by StateChecking, and Tick panics with ErrInvariant. Walls should only be
// placed before the search starts.
func (g *Grid) PlaceWallAt(px, py float64) bool {
	node := g.CellAt(px, py)
	if node.IsStart() || node.IsEnd() {
		klog.V(2).Infof("PlaceWallAt(%g, %g): %s not overwritten", px, py, node)
		return false
	}
	node.MakeWall()
	return true
}

// PlaceStartAt moves the start to the cell under (px, py): the old start becomes empty and the
// closed set is reset to contain only the new start.
//
// The frontier, the selected path and the search state are left untouched, so moving the start
// in the middle of a search continues from stale state. It returns false, and does nothing, if
// the cell is the end node.
func (g *Grid) PlaceStartAt(px, py float64) bool {
	node := g.CellAt(px, py)
	if node.IsEnd() {
		klog.V(2).Infof("PlaceStartAt(%g, %g): can't place start over the end %s", px, py, node)
		return false
	}
	g.startNode.MakeEmpty()
	node.MakeStart()
	g.checked = []*Node{node}
	g.startNode = node
	return true
}

// PlaceEndAt moves the end to the cell under (px, py): the old end becomes empty and the
// backtracking restarts from the new end.
//
// The frontier, the closed set and the search state are left untouched. It returns false, and
// does nothing, if the cell is the start node.
func (g *Grid) PlaceEndAt(px, py float64) bool {
	node := g.CellAt(px, py)
	if node.IsStart() {
		klog.V(2).Infof("PlaceEndAt(%g, %g): can't place end over the start %s", px, py, node)
		return false
	}
	g.endNode.MakeEmpty()
	node.MakeEnd()
	g.endNode = node
	g.backtrackCurrent = node
	return true
}
