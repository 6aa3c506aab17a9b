package graphio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/gridgraph"
)

// GridSpec describes an occupancy grid. Cells[y][x] is the cell value;
// values below Threshold are walls.
type GridSpec struct {
	Cells       [][]int `json:"cells" yaml:"cells"`
	Diagonal    bool    `json:"diagonal,omitempty" yaml:"diagonal,omitempty"`
	Threshold   *int    `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	TerrainCost bool    `json:"terrain_cost,omitempty" yaml:"terrain_cost,omitempty"`
}

// Options converts the spec into gridgraph options.
func (s *GridSpec) Options() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if s.Threshold != nil {
		opts.PassableThreshold = *s.Threshold
	}
	if s.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	opts.TerrainCost = s.TerrainCost

	return opts
}

// Graph builds the grid and converts it into a *core.Graph with
// positioned "x,y" nodes. Shape errors match both ErrMalformedInput and the
// gridgraph sentinel. With TerrainCost every passable cell must cost at
// least 1, so the threshold must be at least 1.
func (s *GridSpec) Graph() (*core.Graph, error) {
	opts := s.Options()
	if s.TerrainCost && opts.PassableThreshold < 1 {
		return nil, errors.Wrapf(ErrMalformedInput,
			"grid: terrain_cost needs threshold >= 1, got %d", opts.PassableThreshold)
	}
	gg, err := gridgraph.NewGridGraph(s.Cells, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: grid: %w", ErrMalformedInput, err)
	}

	return gg.ToGraph()
}

// ReadGridFile decodes a GridSpec from a .json, .yaml or .yml file.
func ReadGridFile(path string) (*GridSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: open %s", path)
	}
	defer f.Close()

	var spec GridSpec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.NewDecoder(f).Decode(&spec)
		if err != nil {
			err = decodeError(err, "JSON")
		}
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&spec)
		if err != nil {
			err = decodeError(err, "YAML")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "grid %s", path)
	}

	return &spec, nil
}
