package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/graphio"
	"github.com/katalvlaran/pathfind/route"
)

type searchMode int

const (
	searchDijkstra searchMode = iota
	searchAStar
	searchCompare
)

// searchOptions are the flags of dijkstra, astar and compare.
type searchOptions struct {
	file      string
	from, to  string
	heuristic string
	output    string
}

func newSearchCommand(root *rootOptions, mode searchMode) *cobra.Command {
	so := &searchOptions{}
	cmd := &cobra.Command{Args: cobra.NoArgs}

	switch mode {
	case searchDijkstra:
		cmd.Use = "dijkstra"
		cmd.Short = "Shortest path with uniform-cost search"
	case searchAStar:
		cmd.Use = "astar"
		cmd.Short = "Shortest path with heuristic-guided search"
		cmd.Flags().StringVar(&so.heuristic, "heuristic", "", "euclidean or manhattan (default from config)")
	case searchCompare:
		cmd.Use = "compare"
		cmd.Short = "Run every algorithm on the same endpoints"
	}
	cmd.Example = "  pathfind " + cmd.Use + " --file graph.yaml --from A --to C"

	cmd.Flags().StringVarP(&so.file, "file", "f", "", "graph file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&so.from, "from", "", "start node")
	cmd.Flags().StringVar(&so.to, "to", "", "end node")
	cmd.Flags().StringVarP(&so.output, "output", "o", outputText, "output format: text, json or yaml")
	requireFlags(cmd.Flags(), "file", "from", "to")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		g, err := loadGraph(root, so.file)
		if err != nil {
			return err
		}
		out := newPrinter(cmd.OutOrStdout(), so.output)

		switch mode {
		case searchCompare:
			cmp, err := pathfind.Compare(g, so.from, so.to)
			if err != nil {
				return err
			}
			if cmp.Empty() {
				return noPath(root, so.from, so.to)
			}
			return out.comparison(cmp)
		default:
			var res *route.Result
			if mode == searchDijkstra {
				res, err = pathfind.ShortestPath(g, so.from, so.to)
			} else {
				tag := so.heuristic
				if tag == "" {
					tag = string(root.cfg.DefaultHeuristic())
				}
				res, err = pathfind.ShortestPathGuided(g, so.from, so.to, tag)
			}
			if err != nil {
				return err
			}
			if res == nil {
				return noPath(root, so.from, so.to)
			}
			return out.result(res)
		}
	}

	return cmd
}

func loadGraph(root *rootOptions, path string) (*core.Graph, error) {
	spec, err := graphio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := pathfind.BuildGraph(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "build graph from %s", path)
	}
	root.logger.Debugf("Loaded %d nodes and %d arcs from %s", g.NodeCount(), g.ArcCount(), path)

	return g, nil
}

func noPath(root *rootOptions, from, to string) error {
	root.logger.WithFields(map[string]interface{}{"from": from, "to": to}).Warn("No path found")

	return errors.Wrapf(ErrNoPath, "%s -> %s", from, to)
}
