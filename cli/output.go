package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind"
	"github.com/katalvlaran/pathfind/route"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// printer renders results in the selected format.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: strings.ToLower(format)}
}

func (p *printer) result(res *route.Result) error {
	switch p.format {
	case outputText:
		_, err := fmt.Fprintf(p.w, "algorithm: %s\npath: %s\ndistance: %g\nnodes explored: %d\ntime: %.4f ms\n",
			res.Algorithm, strings.Join(res.Path, " -> "), res.Distance, res.NodesExplored, res.ExecutionTimeMs)
		return err
	default:
		return p.structured(res)
	}
}

func (p *printer) comparison(cmp pathfind.Comparison) error {
	if p.format != outputText {
		return p.structured(cmp)
	}

	data := pterm.TableData{{"Algorithm", "Distance", "Explored", "Time (ms)", "Path"}}
	for _, alg := range cmp.Algorithms() {
		res := cmp[alg]
		data = append(data, []string{
			string(alg),
			fmt.Sprintf("%g", res.Distance),
			fmt.Sprintf("%d", res.NodesExplored),
			fmt.Sprintf("%.4f", res.ExecutionTimeMs),
			strings.Join(res.Path, " -> "),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	_, err = fmt.Fprintln(p.w, table)

	return err
}

func (p *printer) structured(v interface{}) error {
	switch p.format {
	case outputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(p.w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.Errorf("unknown output format %q, use %s, %s or %s", p.format, outputText, outputJSON, outputYAML)
	}
}
