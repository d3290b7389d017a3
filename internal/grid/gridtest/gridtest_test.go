package gridtest

import (
	"testing"

	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	layout, cols, err := ParseLayout(
		"S . #",
		"# . E",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, cols)
	assert.Equal(t, &grid.Layout{
		Start: grid.Pos{0, 0},
		End:   grid.Pos{2, 1},
		Walls: []grid.Pos{{2, 0}, {0, 1}},
	}, layout)

	for name, rows := range map[string][]string{
		"uneven rows":  {"S . .", ". E"},
		"two starts":   {"S S E"},
		"two ends":     {"S E E"},
		"no end":       {"S . ."},
		"unknown cell": {"S x E"},
	} {
		_, _, err = ParseLayout(rows...)
		assert.Error(t, err, "case %q", name)
	}
}

func TestRender(t *testing.T) {
	rows := []string{
		"S . #",
		"# . E",
	}
	g := Build(rows...)
	assert.Equal(t, "S.#\n#.E\n", Render(g))
	g.Tick()
	assert.Equal(t, "Sp#\n#pE\n", Render(g))
}
