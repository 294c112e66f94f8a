package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	errs "github.com/heliosviz/graphkit/pkg/errors"
)

// pathOpts holds the command-line flags for the path command.
type pathOpts struct {
	commonOpts
	weighted bool // also compute the minimum-weight path
}

// pathCommand creates the path command for shortest paths.
func (c *CLI) pathCommand() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path [file] [source] [target]",
		Short: "Find the shortest path between two nodes",
		Long: `Find the fewest-hop path between two nodes. With --weighted, also find the
minimum-weight path using edge weights.

When source or target is omitted on an interactive terminal, pick them from a list.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src, dst string
			if len(args) > 1 {
				src = args[1]
			}
			if len(args) > 2 {
				dst = args[2]
			}
			return c.runPath(cmd.Context(), cmd.OutOrStdout(), args[0], src, dst, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.weighted, "weighted", false, "also compute the minimum-weight path")

	return cmd
}

func (c *CLI) runPath(ctx context.Context, w io.Writer, path, src, dst string, opts pathOpts) error {
	runner, g, err := c.load(ctx, path)
	if err != nil {
		return err
	}
	defer runner.Close()

	if src == "" || dst == "" {
		if !canPick() {
			return errs.New(errs.ErrCodeInvalidInput, "source and target are required")
		}
		rows := nodeRows(g)
		if src == "" {
			if src, err = pickNode(ctx, "Select Source", rows); err != nil {
				return err
			}
		}
		if dst == "" {
			if dst, err = pickNode(ctx, "Select Target", rows); err != nil {
				return err
			}
		}
	}

	popts := c.options(opts.commonOpts)
	popts.Weighted = opts.weighted

	report, err := runner.Path(ctx, g, src, dst, popts)
	if err != nil {
		return err
	}
	return emit(w, opts.commonOpts, report, func() { printPathReport(w, report) })
}
