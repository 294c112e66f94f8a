package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heliosviz/graphkit/pkg/analysis"
	errs "github.com/heliosviz/graphkit/pkg/errors"
)

// centralityBy maps --by values to the measure they rank on.
var centralityBy = map[string]func(analysis.CentralityMeasures) float64{
	"degree":      func(m analysis.CentralityMeasures) float64 { return m.Degree },
	"betweenness": func(m analysis.CentralityMeasures) float64 { return m.Betweenness },
	"closeness":   func(m analysis.CentralityMeasures) float64 { return m.Closeness },
}

// centralityOpts holds the command-line flags for the centrality command.
type centralityOpts struct {
	commonOpts
	by   string // ranking measure
	top  int    // rows to print (0 = all)
	pick bool   // choose the node interactively
}

// centralityCommand creates the centrality command.
func (c *CLI) centralityCommand() *cobra.Command {
	opts := centralityOpts{by: "betweenness", top: 10}

	cmd := &cobra.Command{
		Use:   "centrality [file] [node]",
		Short: "Show degree, betweenness and closeness centrality",
		Long: `Show centrality measures for one node, or rank every node by a measure.

With --pick and no node, choose the node from an interactive list.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := centralityBy[opts.by]; !ok {
				return errs.New(errs.ErrCodeInvalidParameter, "unknown measure %q (must be %s)", opts.by, measureNames())
			}
			node := ""
			if len(args) == 2 {
				node = args[1]
			}
			return c.runCentrality(cmd.Context(), cmd.OutOrStdout(), args[0], node, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.by, "by", opts.by, "rank by: "+measureNames())
	cmd.Flags().IntVar(&opts.top, "top", opts.top, "number of nodes to list (0 = all)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "pick the node interactively")

	return cmd
}

func measureNames() string {
	names := make([]string, 0, len(centralityBy))
	for name := range centralityBy {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (c *CLI) runCentrality(ctx context.Context, w io.Writer, path, node string, opts centralityOpts) error {
	runner, g, err := c.load(ctx, path)
	if err != nil {
		return err
	}
	defer runner.Close()

	if node == "" && opts.pick {
		if !canPick() {
			return errs.New(errs.ErrCodeInvalidInput, "--pick needs an interactive terminal")
		}
		if node, err = pickNode(ctx, "Select Node", nodeRows(g)); err != nil {
			return err
		}
	}
	if node != "" {
		if _, ok := g.Node(node); !ok {
			return errs.NodeNotFound(node)
		}
	}

	popts := c.options(opts.commonOpts)
	popts.Centrality = true

	spin := startSpinner(ctx, g.NodeCount(), "Computing centrality for %d nodes...", g.NodeCount())
	report, err := runner.Analyze(ctx, g, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	if node != "" {
		m := report.Centrality[node]
		return emit(w, opts.commonOpts, map[string]analysis.CentralityMeasures{node: m}, func() {
			fmt.Fprintln(w, StyleTitle.Render(node))
			printKeyValue(w, "degree", fmtMetric(m.Degree))
			printKeyValue(w, "betweenness", fmtMetric(m.Betweenness))
			printKeyValue(w, "closeness", fmtMetric(m.Closeness))
		})
	}

	return emit(w, opts.commonOpts, report.Centrality, func() {
		printCentrality(w, report.Centrality, centralityBy[opts.by], opts.top)
		printStats(w, report.Stats, report.CacheHit)
	})
}
