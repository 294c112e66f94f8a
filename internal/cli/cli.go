// Package cli implements the graphkit command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/heliosviz/graphkit/pkg/buildinfo"
	"github.com/heliosviz/graphkit/pkg/cache"
	"github.com/heliosviz/graphkit/pkg/config"
	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/observability"
	"github.com/heliosviz/graphkit/pkg/observability/prom"
	"github.com/heliosviz/graphkit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// spinnerThreshold is the node count above which long stages show a spinner.
	spinnerThreshold = 500
)

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
	Config config.Config

	configPath  string
	metricsFile string
	noCache     bool
	metrics     *prom.Collector
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Graphkit analyzes and clusters node-link graphs",
		Long:              `Graphkit is a CLI tool for analyzing graphs with 2D node positions: network metrics, centrality, paths, layout quality, clustering, and rendering.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphkit/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the report cache")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	// Register all subcommands
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.centralityCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.sccCommand())
	root.AddCommand(c.toposortCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.clusterCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and installs the metrics collector before any
// command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	path := c.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			c.Logger.Debug("no config path", "error", err)
		}
		path = p
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	if c.metricsFile == "" {
		c.metricsFile = c.Config.MetricsFile
	}
	if c.metricsFile != "" && c.metrics == nil {
		c.metrics = prom.New()
		observability.SetPipelineHooks(c.metrics)
		observability.SetCacheHooks(c.metrics)
	}

	cmd.SetContext(withLogger(contextOf(cmd), c.Logger))
	return nil
}

// Close writes collected metrics when a metrics file is configured.
func (c *CLI) Close() error {
	if c.metrics == nil {
		return nil
	}
	defer observability.Reset()
	if err := c.metrics.WriteToTextfile(c.metricsFile); err != nil {
		return err
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsFile)
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// build version.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	store, err := c.newCache()
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache || !c.Config.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// load creates a runner and reads the graph file at path. The caller closes
// the runner.
func (c *CLI) load(ctx context.Context, path string) (*pipeline.Runner, *graph.Graph, error) {
	runner, err := c.newRunner()
	if err != nil {
		return nil, nil, err
	}
	g, err := runner.Load(ctx, path)
	if err != nil {
		runner.Close()
		return nil, nil, err
	}
	return runner, g, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// commonOpts holds the flags shared by report-producing commands.
type commonOpts struct {
	refresh bool   // bypass cached reports
	json    bool   // print the report as JSON
	output  string // write the JSON report to this file
}

func (o *commonOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "recompute even if a cached report exists")
	cmd.Flags().BoolVar(&o.json, "json", false, "print the report as JSON")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the JSON report to a file")
}

// wantsJSON reports whether the report should be encoded instead of styled.
func (o commonOpts) wantsJSON() bool {
	return o.json || o.output != ""
}

// options builds pipeline options from the config file, letting the common
// flags override.
func (c *CLI) options(common commonOpts) pipeline.Options {
	return pipeline.Options{
		Workers:          c.Config.Workers,
		OverlapThreshold: c.Config.OverlapThreshold,
		K:                c.Config.DefaultK,
		Refresh:          common.refresh,
		TTL:              c.Config.Cache.TTL.Std(),
	}
}
