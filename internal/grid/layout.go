package grid

// Layout describes the initial content of a grid: where the start and the end are, and which
// cells are walls.
//
// Coordinates follow the grid addressing (see Grid.Resolve), so negative values count from the
// right/bottom edges, once.
type Layout struct {
	Start Pos   `yaml:"start,flow" json:"start"`
	End   Pos   `yaml:"end,flow" json:"end"`
	Walls []Pos `yaml:"walls,flow,omitempty" json:"walls,omitempty"`
}

// DefaultLayout returns the layout of a new grid when none is given: the start at (1, 4), the end
// on the second row of the next-to-last column and a comb of walls anchored to the bottom of the
// 9th column.
//
// It requires a grid of at least 9 columns and 9 rows.
func DefaultLayout() *Layout {
	l := &Layout{
		Start: Pos{1, 4},
		End:   Pos{-2, 1},
	}
	for _, bottom := range []int{-4, -8} {
		for y := bottom + 3; y >= bottom; y-- {
			l.Walls = append(l.Walls, Pos{8, y})
		}
		for x := 7; x >= 5; x-- {
			l.Walls = append(l.Walls, Pos{x, bottom})
		}
	}
	for y := range 9 {
		l.Walls = append(l.Walls, Pos{8, y})
	}
	return l
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	clone := *l
	clone.Walls = append([]Pos(nil), l.Walls...)
	return &clone
}
