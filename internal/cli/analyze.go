package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	commonOpts
	centrality bool    // include per-node centrality
	workers    int     // BFS workers (0 = config)
	overlap    float64 // overlap threshold (0 = config)
}

// analyzeCommand creates the analyze command for network and layout metrics.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compute network and layout metrics for a graph",
		Long: `Compute density, clustering coefficient, average path length, connected
components, edge crossings, node overlaps and layout quality for a graph file
(JSON, YAML or TOML).

Reports are cached by graph content and options; use --refresh to recompute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.centrality, "centrality", false, "include degree, betweenness and closeness for every node")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel BFS workers (default from config)")
	cmd.Flags().Float64Var(&opts.overlap, "overlap", 0, "distance below which two nodes overlap (default from config)")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, w io.Writer, path string, opts analyzeOpts) error {
	runner, g, err := c.load(ctx, path)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.options(opts.commonOpts)
	popts.Centrality = opts.centrality
	if opts.workers > 0 {
		popts.Workers = opts.workers
	}
	if opts.overlap > 0 {
		popts.OverlapThreshold = opts.overlap
	}

	spin := startSpinner(ctx, g.NodeCount(), "Analyzing %d nodes...", g.NodeCount())
	report, err := runner.Analyze(ctx, g, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	return emit(w, opts.commonOpts, report, func() { printReport(w, report) })
}
