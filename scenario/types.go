package scenario

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for scenario loading.
var (
	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("scenario: unknown file format")
	// ErrMissingStart indicates the grid has no start cell.
	ErrMissingStart = errors.New("scenario: grid has no start cell")
	// ErrMissingEnd indicates the grid has no end cell.
	ErrMissingEnd = errors.New("scenario: grid has no end cell")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("scenario: grid has more than one start cell")
	// ErrDuplicateEnd indicates more than one end cell.
	ErrDuplicateEnd = errors.New("scenario: grid has more than one end cell")
	// ErrBadSize indicates a non-positive generated board size.
	ErrBadSize = errors.New("scenario: rows and columns must be positive")
	// ErrBadInterval indicates an unparsable or non-positive step interval.
	ErrBadInterval = errors.New("scenario: invalid step interval")
)

// Defaults applied when a file leaves a field unset.
const (
	DefaultName         = "default"
	DefaultStepInterval = 50 * time.Millisecond
	DefaultTileSize     = 36
	DefaultMinAxisTiles = 11
)

// File is the on-disk form shared by the YAML and HCL decoders.
type File struct {
	Name         string   `yaml:"name" hcl:"name,optional"`
	Grid         []string `yaml:"grid" hcl:"grid,optional"`
	Rows         int      `yaml:"rows" hcl:"rows,optional"`
	Columns      int      `yaml:"columns" hcl:"columns,optional"`
	Animate      bool     `yaml:"animate" hcl:"animate,optional"`
	StepInterval string   `yaml:"step_interval" hcl:"step_interval,optional"`
	TileSize     int      `yaml:"tile_size" hcl:"tile_size,optional"`
	MinAxisTiles int      `yaml:"min_axis_tiles" hcl:"min_axis_tiles,optional"`
}

// Scenario is a validated board ready to hand to a board.Board or a
// pathfinder.
type Scenario struct {
	Name         string
	Cells        [][]gridgraph.CellState
	Start, End   gridgraph.Coordinate
	Animate      bool
	StepInterval time.Duration
	TileSize     int
	MinAxisTiles int
}

// Rows returns the number of grid rows.
func (s *Scenario) Rows() int { return len(s.Cells) }

// Columns returns the number of grid columns.
func (s *Scenario) Columns() int {
	if len(s.Cells) == 0 {
		return 0
	}
	return len(s.Cells[0])
}
