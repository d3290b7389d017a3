// Package layout loads and saves grid layouts (start, end and walls) as YAML files, and watches
// layout files for changes.
//
// Example of a layout file:
//
//	start: [1, 4]
//	end: [-2, 1]
//	walls: [[8, 0], [8, 1], [8, -1]]
//
// Coordinates follow the grid addressing: negative values count once from the right/bottom edge.
package layout

import (
	"bytes"
	"io"
	"os"

	"github.com/janpfeifer/astarGo/internal/generics"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// file is the on-disk representation: start and end are pointers so missing fields can be
// detected.
type file struct {
	Start *grid.Pos   `yaml:"start,flow"`
	End   *grid.Pos   `yaml:"end,flow"`
	Walls []grid.Pos `yaml:"walls,flow,omitempty"`
}

// Parse a YAML layout. Unknown fields are rejected, start and end are required, and repeated
// walls are dropped.
func Parse(data []byte) (*grid.Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty layout")
		}
		return nil, errors.Wrap(err, "failed to parse layout")
	}
	if f.Start == nil || f.End == nil {
		return nil, errors.New("layout requires both start and end")
	}
	l := &grid.Layout{Start: *f.Start, End: *f.End}
	if len(f.Walls) > 0 {
		l.Walls = generics.Dedup(f.Walls)
		if dropped := len(f.Walls) - len(l.Walls); dropped > 0 {
			klog.V(1).Infof("layout: dropped %d repeated walls", dropped)
		}
	}
	return l, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*grid.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read layout %q", path)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "layout file %q", path)
	}
	klog.V(1).Infof("Loaded layout %q: start=%s, end=%s, %d walls", path, l.Start, l.End, len(l.Walls))
	return l, nil
}

// Marshal returns the YAML encoding of the layout.
func Marshal(l *grid.Layout) ([]byte, error) {
	start, end := l.Start, l.End
	data, err := yaml.Marshal(&file{Start: &start, End: &end, Walls: l.Walls})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode layout")
	}
	return data, nil
}

// Save writes the layout to path.
func Save(path string, l *grid.Layout) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write layout %q", path)
	}
	return nil
}

// FromGrid captures the current start, end and walls of g as a Layout, with non-negative
// coordinates.
func FromGrid(g *grid.Grid) *grid.Layout {
	l := &grid.Layout{Start: g.Start().Pos(), End: g.End().Pos()}
	for node := range g.Nodes() {
		if node.IsWall() {
			l.Walls = append(l.Walls, node.Pos())
		}
	}
	return l
}
