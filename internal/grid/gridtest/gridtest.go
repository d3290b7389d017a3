// Package gridtest provides helper functions to create tests using grids.
//
// Grids are described with one string per row, one character per cell:
//
//	'.' empty, '#' wall, 'S' start, 'E' end
//
// Spaces are ignored, so rows can be written as "S . # E".
package gridtest

import (
	"strings"

	"github.com/janpfeifer/astarGo/internal/generics"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

// ParseLayout converts the ASCII rows to a Layout, and returns the dimensions of the grid.
func ParseLayout(rows ...string) (layout *grid.Layout, cols int, err error) {
	layout = &grid.Layout{}
	var foundStart, foundEnd bool
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if y == 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, 0, errors.Errorf("row %d has %d cells, wanted %d", y, len(row), cols)
		}
		for x, cell := range row {
			switch cell {
			case '.':
			case '#':
				layout.Walls = append(layout.Walls, grid.Pos{x, y})
			case 'S':
				if foundStart {
					return nil, 0, errors.Errorf("second start at %s", grid.Pos{x, y})
				}
				foundStart = true
				layout.Start = grid.Pos{x, y}
			case 'E':
				if foundEnd {
					return nil, 0, errors.Errorf("second end at %s", grid.Pos{x, y})
				}
				foundEnd = true
				layout.End = grid.Pos{x, y}
			default:
				return nil, 0, errors.Errorf("unknown cell %q at %s", cell, grid.Pos{x, y})
			}
		}
	}
	if !foundStart || !foundEnd {
		return nil, 0, errors.New("layout needs one start ('S') and one end ('E')")
	}
	return layout, cols, nil
}

// ConfigFor returns a grid configuration with cols x rows cells of size 1, so pixel coordinates
// are the same as cell coordinates.
func ConfigFor(cols, rows int) grid.Config {
	return grid.Config{Columns: cols, CellSize: 1, ViewportHeight: float64(rows)}
}

// Build creates a grid from the ASCII rows. It panics on malformed input.
func Build(rows ...string) *grid.Grid {
	layout, cols := must.M2(ParseLayout(rows...))
	return must.M1(grid.New(ConfigFor(cols, len(rows)), layout))
}

// Empty creates an obstacle-free grid of the given size, with start and end at the given positions.
func Empty(cols, rows int, start, end grid.Pos) *grid.Grid {
	return must.M1(grid.New(ConfigFor(cols, rows), &grid.Layout{Start: start, End: end}))
}

// Pixel returns the pixel coordinates of the center of cell (x, y), for grids of cells of size 1.
func Pixel(x, y int) (px, py float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}

// Positions converts nodes to their positions.
func Positions(nodes []*grid.Node) []grid.Pos {
	return generics.SliceMap(nodes, func(n *grid.Node) grid.Pos { return n.Pos() })
}

// PathPositions returns the positions of Grid.Path.
func PathPositions(g *grid.Grid) []grid.Pos {
	return Positions(g.Path())
}

// kindLetters used by Render.
var kindLetters = map[grid.Kind]byte{
	grid.KindEmpty:     '.',
	grid.KindWall:      '#',
	grid.KindStart:     'S',
	grid.KindEnd:       'E',
	grid.KindPotential: 'p',
	grid.KindChecked:   'c',
	grid.KindSelected:  '*',
}

// Render returns the grid in the same ASCII format, with search kinds as 'p' (potential),
// 'c' (checked) and '*' (selected).
func Render(g *grid.Grid) string {
	var sb strings.Builder
	for node := range g.Nodes() {
		sb.WriteByte(kindLetters[node.Kind()])
		if node.X() == g.Cols()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
