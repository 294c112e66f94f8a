package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	errs "github.com/heliosviz/graphkit/pkg/errors"
)

// clusterOpts holds the command-line flags for the cluster command.
type clusterOpts struct {
	commonOpts
	algorithm string // kmeans, hierarchical, community
	k         int    // cluster count (0 = config)
}

// clusterCommand creates the cluster command.
func (c *CLI) clusterCommand() *cobra.Command {
	var opts clusterOpts

	cmd := &cobra.Command{
		Use:   "cluster [file]",
		Short: "Group nodes by position or by links",
		Long: `Group nodes into clusters.

Algorithms:
  kmeans        k-means on node positions (default)
  hierarchical  average-linkage agglomerative clustering on node positions
  community     greedy community detection on edges (ignores --k)

The report includes the silhouette score and modularity of the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkK(cmd, opts.k); err != nil {
				return err
			}
			return c.runCluster(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "clustering algorithm: kmeans (default), hierarchical, community")
	cmd.Flags().IntVarP(&opts.k, "k", "k", 0, "number of clusters (default from config)")

	return cmd
}

// checkK rejects an explicit --k below one. Without the flag the cluster
// count comes from the config.
func checkK(cmd *cobra.Command, k int) error {
	if !cmd.Flags().Changed("k") {
		return nil
	}
	return errs.ValidateClusterCount(k)
}

func (c *CLI) runCluster(ctx context.Context, w io.Writer, path string, opts clusterOpts) error {
	runner, g, err := c.load(ctx, path)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.options(opts.commonOpts)
	popts.Algorithm = opts.algorithm
	if opts.k > 0 {
		popts.K = opts.k
	}

	spin := startSpinner(ctx, g.NodeCount(), "Clustering %d nodes...", g.NodeCount())
	report, err := runner.Cluster(ctx, g, popts)
	spin.Stop()
	if err != nil {
		return err
	}
	return emit(w, opts.commonOpts, report, func() { printClusterReport(w, report) })
}
