// Package cli implements the citygraph command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/citymesh/citygraph/pkg/buildinfo"
	"github.com/citymesh/citygraph/pkg/config"
	apperr "github.com/citymesh/citygraph/pkg/errors"
	"github.com/citymesh/citygraph/pkg/loader"
	"github.com/citymesh/citygraph/pkg/multigraph"
	"github.com/citymesh/citygraph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "citygraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath  string
	regionsPath string
	streetsPath string
	cfg         config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Citygraph explores the street network between neighborhoods",
		Long: `Citygraph loads a neighborhood list and a street list into an undirected
multigraph and answers questions about it: who connects to whom, through
which streets, and what lies within a few hops of a neighborhood.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/citygraph/config.toml)")
	flags.StringVar(&c.regionsPath, "regions", "", "neighborhood feed (.csv, .xlsx, .json, .yaml)")
	flags.StringVar(&c.streetsPath, "streets", "", "street feed (.csv, .xlsx, .json, .yaml)")

	root.AddCommand(c.statsCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.betweenCommand())
	root.AddCommand(c.expandCommand())
	root.AddCommand(c.regionsCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies flag overrides and registers the
// logging observer. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	path := c.configPath
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s", path)
		}
	} else {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if c.regionsPath != "" {
		cfg.Sources.Regions = c.regionsPath
	}
	if c.streetsPath != "" {
		cfg.Sources.Streets = c.streetsPath
	}
	c.cfg = cfg
	c.Logger.Debug("Configuration loaded", "path", path, "regions", cfg.Sources.Regions, "streets", cfg.Sources.Streets)

	observability.SetBuildHooks(newLogHooks(c.Logger))
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Graph Loading
// =============================================================================

// loadGraph reads both feeds named by the configuration and builds the graph.
// A spinner is shown while loading when stderr is a terminal.
func (c *CLI) loadGraph(ctx context.Context) (*multigraph.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var spin *Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		spin = newSpinnerWithContext(ctx, "Loading street graph...")
		spin.Start()
	}

	g, report, err := loader.LoadFiles(ctx, c.cfg.Sources.Regions, c.cfg.Sources.Streets, c.cfg.Columns)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return nil, err
	}

	if report.Skipped > 0 {
		logger.Warn("Skipped records with blank names", "count", report.Skipped)
	}
	prog.done(g.String())
	return g, nil
}
