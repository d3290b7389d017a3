package layout_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/grid/gridtest"
	. "github.com/janpfeifer/astarGo/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	l, err := Parse([]byte(`
start: [1, 4]
end: [-2, 1]
walls:
  - [8, -1]
  - [8, 0]
  - [8, -1]
`))
	require.NoError(t, err)
	assert.Equal(t, grid.Pos{1, 4}, l.Start)
	assert.Equal(t, grid.Pos{-2, 1}, l.End)
	assert.Equal(t, []grid.Pos{{8, -1}, {8, 0}}, l.Walls, "repeated walls are dropped")

	for name, data := range map[string]string{
		"empty":         "",
		"missing end":   "start: [0, 0]\n",
		"unknown field": "start: [0, 0]\nend: [1, 1]\nwalls: []\nholes: [[2, 2]]\n",
		"bad position":  "start: [0, 0, 1]\nend: [1, 1]\n",
		"not yaml":      "start: [0, 0\n",
	} {
		_, err = Parse([]byte(data))
		assert.Error(t, err, "case %q", name)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")
	want := grid.DefaultLayout()
	require.NoError(t, Save(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "start: [1, 4]")
	assert.Contains(t, string(data), "end: [-2, 1]")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromGrid(t *testing.T) {
	g := gridtest.Build(
		"S . # .",
		". # . E",
	)
	l := FromGrid(g)
	assert.Equal(t, grid.Pos{0, 0}, l.Start)
	assert.Equal(t, grid.Pos{3, 1}, l.End)
	assert.Equal(t, []grid.Pos{{2, 0}, {1, 1}}, l.Walls)

	data, err := Marshal(l)
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, l, back)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	require.NoError(t, Save(path, grid.DefaultLayout()))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// Files other than the watched one are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("start: [0, 0]\n"), 0o644))
	require.NoError(t, Save(path, &grid.Layout{Start: grid.Pos{0, 0}, End: grid.Pos{2, 2}}))

	select {
	case changed := <-w.Events:
		absPath, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, absPath, changed)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received for the changed layout")
	}
	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Pos{2, 2}, l.End)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "closing twice is fine")
	for range w.Events {
		// Drain events buffered before Close: the loop ends once the channel is closed.
	}
}

func TestWatcherReportsLastWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	require.NoError(t, Save(path, grid.DefaultLayout()))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// A save in several steps, with an unparseable file in between, is reported once, after the
	// last write.
	require.NoError(t, os.WriteFile(path, []byte("start: [0"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("start: [0, 0]\nend: [3, 3]\n"), 0o644))

	select {
	case <-w.Events:
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received for the changed layout")
	}
	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Pos{3, 3}, l.End)

	select {
	case <-w.Events:
		t.Fatal("burst of writes reported more than once")
	case <-time.After(300 * time.Millisecond):
	}
}
