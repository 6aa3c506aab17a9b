package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind"
	"github.com/katalvlaran/pathfind/graphio"
	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/route"
)

type gridOptions struct {
	file      string
	from, to  string
	algorithm string
	heuristic string
	output    string
}

func newGridCommand(root *rootOptions) *cobra.Command {
	gridOpts := &gridOptions{}
	cmd := &cobra.Command{
		Use:     "grid",
		Short:   "Shortest path across an occupancy grid",
		Args:    cobra.NoArgs,
		Example: "  pathfind grid --file maze.yaml --from 0,0 --to 9,9 --algorithm astar --heuristic manhattan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseCell(gridOpts.from)
			if err != nil {
				return err
			}
			to, err := parseCell(gridOpts.to)
			if err != nil {
				return err
			}

			spec, err := graphio.ReadGridFile(gridOpts.file)
			if err != nil {
				return err
			}
			g, err := spec.Graph()
			if err != nil {
				return errors.Wrapf(err, "build grid from %s", gridOpts.file)
			}
			root.logger.Debugf("Grid %s has %d passable cells", gridOpts.file, g.NodeCount())

			var res *route.Result
			switch gridOpts.algorithm {
			case "dijkstra":
				res, err = pathfind.ShortestPath(g, from, to)
			case "astar":
				tag := gridOpts.heuristic
				if tag == "" {
					tag = string(root.cfg.DefaultHeuristic())
				}
				res, err = pathfind.ShortestPathGuided(g, from, to, tag)
			default:
				return errors.Errorf("unknown algorithm %q, use dijkstra or astar", gridOpts.algorithm)
			}
			if err != nil {
				return err
			}
			if res == nil {
				return noPath(root, from, to)
			}

			return newPrinter(cmd.OutOrStdout(), gridOpts.output).result(res)
		},
	}
	cmd.Flags().StringVarP(&gridOpts.file, "file", "f", "", "grid file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&gridOpts.from, "from", "", "start cell as x,y")
	cmd.Flags().StringVar(&gridOpts.to, "to", "", "end cell as x,y")
	cmd.Flags().StringVarP(&gridOpts.algorithm, "algorithm", "a", "astar", "dijkstra or astar")
	cmd.Flags().StringVar(&gridOpts.heuristic, "heuristic", "", "euclidean or manhattan (default from config)")
	cmd.Flags().StringVarP(&gridOpts.output, "output", "o", outputText, "output format: text, json or yaml")
	requireFlags(cmd.Flags(), "file", "from", "to")

	return cmd
}

// parseCell turns "x,y" into the grid node ID.
func parseCell(s string) (string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return "", errors.Errorf("cell %q must be x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", errors.Wrapf(err, "cell %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", errors.Wrapf(err, "cell %q", s)
	}

	return gridgraph.NodeID(x, y), nil
}
