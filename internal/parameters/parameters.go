// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with strings like "cols=40,width=1600,height=800".
package parameters

import (
	"strconv"
	"strings"

	"github.com/janpfeifer/astarGo/internal/generics"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString create params from user's configuration string.
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2) // Split into up to 2 parts to handle '=' in values
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T interface {
	bool | int | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T interface {
	bool | int | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	vAny := (any)(defaultValue)
	var t T
	toT := func(v any) T { return v.(T) }
	switch vAny.(type) {
	case string:
		if value, exists := params[key]; exists {
			return toT(value), nil
		}
	case int:
		if value, exists := params[key]; exists && value != "" {
			parsedValue, err := strconv.Atoi(value)
			if err != nil {
				return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
			}
			return toT(parsedValue), nil
		}
	case float64:
		if value, exists := params[key]; exists && value != "" {
			parsedValue, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return t, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
			}
			return toT(parsedValue), nil
		}
	case bool:
		if value, exists := params[key]; exists {
			if value == "" || strings.ToLower(value) == "true" || value == "1" { // Empty value is considered "true"
				return toT(true), nil
			}
			if strings.ToLower(value) == "false" || value == "0" {
				return toT(false), nil
			}
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	}
	return defaultValue, nil
}

// CheckAllUsed returns an error listing the parameters left in params, typically the ones
// that were not recognized after all the known ones were popped.
func CheckAllUsed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	unknown := generics.MakeSet[string](len(params))
	for key := range params {
		unknown.Insert(key)
	}
	return errors.Errorf("unknown parameters: %s", strings.Join(unknown.Sorted(strings.Compare), ", "))
}

const (
	// DefaultColumns of the grid.
	DefaultColumns = 40

	// DefaultWidth and DefaultHeight of the viewport in pixels.
	DefaultWidth, DefaultHeight = 1600.0, 800.0
)

// GridConfig parses a grid geometry from a configuration string. Known parameters:
//
//   - cols: number of columns, default DefaultColumns.
//   - width: viewport width in pixels, used to derive the cell size as width/cols, default DefaultWidth.
//   - cell: cell size in pixels; if given it takes precedence over width.
//   - height: viewport height in pixels, from which the number of rows is derived, default DefaultHeight.
//   - rows: alternative to height, sets the height so the grid has exactly that many rows.
func GridConfig(config string) (cfg grid.Config, err error) {
	params := NewFromConfigString(config)
	cols, err := PopParamOr(params, "cols", DefaultColumns)
	if err != nil {
		return
	}
	width, err := PopParamOr(params, "width", DefaultWidth)
	if err != nil {
		return
	}
	height, err := PopParamOr(params, "height", DefaultHeight)
	if err != nil {
		return
	}
	cfg = grid.ConfigForViewport(cols, width, height)
	if cfg.CellSize, err = PopParamOr(params, "cell", cfg.CellSize); err != nil {
		return
	}
	var rows int
	if rows, err = PopParamOr(params, "rows", 0); err != nil {
		return
	}
	if rows > 0 {
		// Half a cell of slack: rows*cell/cell may round to just below rows with fractional cells.
		cfg.ViewportHeight = (float64(rows) + 0.5) * cfg.CellSize
	}
	if err = CheckAllUsed(params); err != nil {
		return
	}
	err = errors.WithMessagef(cfg.Validate(), "grid configuration %q", config)
	return
}
