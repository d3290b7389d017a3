package grid

import "fmt"

// Pos packages the x (column), y (row) coordinates of a cell.
type Pos [2]int

// X coordinate (column) of the position.
func (pos Pos) X() int {
	return pos[0]
}

// Y coordinate (row) of the position.
func (pos Pos) Y() int {
	return pos[1]
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// IsNeighbour returns whether pos2 is one of the 8 cells surrounding pos.
func (pos Pos) IsNeighbour(pos2 Pos) bool {
	dx, dy := absInt(pos[0]-pos2[0]), absInt(pos[1]-pos2[1])
	return max(dx, dy) == 1
}

// Octile distance between two positions: every orthogonal step costs OrthogonalCost and every
// diagonal step costs DiagonalCost.
func (pos Pos) Octile(pos2 Pos) int {
	dx, dy := absInt(pos[0]-pos2[0]), absInt(pos[1]-pos2[1])
	minDiff, maxDiff := min(dx, dy), max(dx, dy)
	return minDiff*DiagonalCost + (maxDiff-minDiff)*OrthogonalCost
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
