// Package cli implements the pathfind command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathfind/config"
)

// ErrNoPath is returned by search commands that found nothing, so the
// process exits non-zero.
var ErrNoPath = errors.New("no path found")

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	cfg        *config.Config
	logger     *log.Logger
}

// Execute is the entry point to running the CLI. It returns the process
// exit code.
func Execute(ctx context.Context, version string) int {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "pathfind",
		Short:        "Shortest paths over weighted graphs with Dijkstra and A*.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newSearchCommand(opts, searchDijkstra),
		newSearchCommand(opts, searchAStar),
		newSearchCommand(opts, searchCompare),
		newGridCommand(opts),
		newServeCommand(opts),
	)

	return rootCmd
}

// init loads configuration and prepares the logger.
func (o *rootOptions) init(stderr io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = newLogger(cfg.Log, o.verbose, stderr)
	o.logger.Debugf("Loaded configuration from %q", o.configPath)

	return nil
}

// newLogger builds a logrus logger writing to out. Format "auto" picks the
// text formatter on a terminal and JSON otherwise.
func newLogger(lc config.LogConfig, verbose bool, out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)

	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	switch lc.Format {
	case config.FormatJSON:
		logger.SetFormatter(&log.JSONFormatter{})
	case config.FormatText:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		if isTerminal(out) {
			logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		} else {
			logger.SetFormatter(&log.JSONFormatter{})
		}
	}

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func requireFlags(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = cobra.MarkFlagRequired(fs, name)
	}
}
