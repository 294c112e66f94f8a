package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heliosviz/graphkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path (default: input name with the format extension)
	format   string  // dot, svg, png, pdf
	cluster  string  // color nodes by this clustering algorithm ("" = none)
	k        int     // cluster count for kmeans/hierarchical (0 = config)
	from, to string  // highlight the shortest path between these nodes
	weighted bool    // highlight the minimum-weight path instead of fewest hops
	directed bool    // draw arrows
	weights  bool    // label edges with weights
	pinned   bool    // keep the file's coordinates instead of laying out
	scale    float64 // PNG scale factor
	refresh  bool    // recompute cached clustering and path reports
}

// renderCommand creates the render command for node-link diagrams.
//
// Default settings:
//   - format: svg
//   - layout: dot, or neato with --pinned
//   - scale: 2x for PNG
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatSVG, scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph as a node-link diagram",
		Long: `Render a graph as a node-link diagram with Graphviz.

Nodes can be colored by cluster (--cluster) and a shortest path highlighted
(--from, --to). With --pinned the file's coordinates are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if (opts.from == "") != (opts.to == "") {
				return fmt.Errorf("--from and --to must be given together")
			}
			if err := checkK(cmd, opts.k); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(pipeline.RenderFormats, ", "))
	cmd.Flags().StringVar(&opts.cluster, "cluster", "", "color nodes by cluster: kmeans, hierarchical, community")
	cmd.Flags().IntVarP(&opts.k, "k", "k", 0, "number of clusters (default from config)")
	cmd.Flags().StringVar(&opts.from, "from", "", "highlight the shortest path starting at this node")
	cmd.Flags().StringVar(&opts.to, "to", "", "highlight the shortest path ending at this node")
	cmd.Flags().BoolVar(&opts.weighted, "weighted", false, "highlight the minimum-weight path")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "draw edges as arrows")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label edges with their weights")
	cmd.Flags().BoolVar(&opts.pinned, "pinned", false, "keep node coordinates from the file")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached cluster and path reports")

	return cmd
}

// validateFormat checks that format is one of pipeline.RenderFormats.
func validateFormat(format string) error {
	for _, f := range pipeline.RenderFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s (must be %s)", format, strings.Join(pipeline.RenderFormats, ", "))
}

// outputPath derives the output file from the input path when none is given.
func outputPath(input, output, format string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}

func (c *CLI) runRender(ctx context.Context, w io.Writer, path string, opts renderOpts) error {
	runner, g, err := c.load(ctx, path)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.options(commonOpts{refresh: opts.refresh})
	ropts := pipeline.RenderOptions{
		Format:   opts.format,
		Directed: opts.directed,
		Weights:  opts.weights,
		Pinned:   opts.pinned,
		Scale:    opts.scale,
	}

	if opts.cluster != "" {
		copts := popts
		copts.Algorithm = opts.cluster
		if opts.k > 0 {
			copts.K = opts.k
		}
		rep, err := runner.Cluster(ctx, g, copts)
		if err != nil {
			return err
		}
		ropts.Clusters = rep.Clusters
	}

	if opts.from != "" {
		popts.Weighted = opts.weighted
		rep, err := runner.Path(ctx, g, opts.from, opts.to, popts)
		if err != nil {
			return err
		}
		switch {
		case !rep.Reachable:
			printWarning(w, "%s is not reachable from %s", opts.to, opts.from)
		case rep.Weighted != nil:
			ropts.Highlight = rep.Weighted.Nodes
		default:
			ropts.Highlight = rep.Hops
		}
	}

	data, err := runner.Render(ctx, g, ropts)
	if err != nil {
		return err
	}

	out := outputPath(path, opts.output, opts.format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess(w, "Rendered %d nodes", g.NodeCount())
	printFile(w, out)
	return nil
}
