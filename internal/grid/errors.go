package grid

import "github.com/pkg/errors"

var (
	// ErrInvariant is wrapped by the panics raised when the search's internal contracts are broken.
	ErrInvariant = errors.New("grid: invariant violated")

	// ErrOutOfRange indicates a coordinate that doesn't address a cell, even after wraparound.
	ErrOutOfRange = errors.New("grid: coordinate out of range")

	// ErrInvalidConfig indicates a Config that can't produce a grid with at least one cell.
	ErrInvalidConfig = errors.New("grid: invalid configuration")

	// ErrTickLimit is returned by Grid.Run when the maximum number of ticks is reached before
	// the search ends.
	ErrTickLimit = errors.New("grid: tick limit reached")
)
