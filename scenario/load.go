package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Decode(path, data)
}

// Decode parses data using the decoder selected by filename's extension
// and validates the result.
func Decode(filename string, data []byte) (*Scenario, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario: decode %s: %w", filename, err)
		}
	case ".hcl":
		if err := hclsimple.Decode(filename, data, nil, &f); err != nil {
			return nil, fmt.Errorf("scenario: decode %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return f.Resolve()
}

// Resolve validates f and fills defaults. A file without a grid gets an
// empty board of Rows×Columns with the default start and end layout. When
// the size is omitted too, MinAxisTiles spans the short side of a 9:16
// portrait board.
func (f File) Resolve() (*Scenario, error) {
	s := &Scenario{
		Name:         f.Name,
		Animate:      f.Animate,
		StepInterval: DefaultStepInterval,
		TileSize:     f.TileSize,
		MinAxisTiles: f.MinAxisTiles,
	}
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.TileSize <= 0 {
		s.TileSize = DefaultTileSize
	}
	if s.MinAxisTiles <= 0 {
		s.MinAxisTiles = DefaultMinAxisTiles
	}
	if f.StepInterval != "" {
		d, err := time.ParseDuration(f.StepInterval)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadInterval, f.StepInterval)
		}
		s.StepInterval = d
	}

	if len(f.Grid) == 0 {
		rows, cols := f.Rows, f.Columns
		if rows == 0 && cols == 0 {
			rows, cols = Size(s.MinAxisTiles, 9, 16)
		}
		cells, start, end, err := Default(rows, cols)
		if err != nil {
			return nil, err
		}
		s.Cells, s.Start, s.End = cells, start, end
		return s, nil
	}

	g, err := gridgraph.Parse(f.Grid)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if s.Start, err = single(g, gridgraph.Start, ErrMissingStart, ErrDuplicateStart); err != nil {
		return nil, err
	}
	if s.End, err = single(g, gridgraph.End, ErrMissingEnd, ErrDuplicateEnd); err != nil {
		return nil, err
	}
	s.Cells = g.Cells()
	return s, nil
}

// single returns the only cell in state st.
func single(g *gridgraph.Grid, st gridgraph.CellState, missing, duplicate error) (gridgraph.Coordinate, error) {
	found := g.Find(st)
	switch len(found) {
	case 0:
		return gridgraph.Coordinate{}, missing
	case 1:
		return found[0], nil
	default:
		return gridgraph.Coordinate{}, fmt.Errorf("%w: %v", duplicate, found)
	}
}
