package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/graph/algo"
)

// =============================================================================
// Structural Commands
// =============================================================================

// structureCommand builds a command that loads one graph file and hands it to
// run. These commands are not cached; the algorithms are linear or near-linear.
func (c *CLI) structureCommand(use, short string, run func(ctx context.Context, w io.Writer, g *graph.Graph, common commonOpts) error) *cobra.Command {
	var common commonOpts

	cmd := &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, g, err := c.load(ctx, args[0])
			if err != nil {
				return err
			}
			defer runner.Close()
			return run(ctx, cmd.OutOrStdout(), g, common)
		},
	}

	cmd.Flags().BoolVar(&common.json, "json", false, "print the result as JSON")
	cmd.Flags().StringVarP(&common.output, "output", "o", "", "write the JSON result to a file")

	return cmd
}

// componentsCommand lists connected components, treating edges as undirected.
func (c *CLI) componentsCommand() *cobra.Command {
	return c.structureCommand("components", "List connected components", func(ctx context.Context, w io.Writer, g *graph.Graph, common commonOpts) error {
		groups := algo.ConnectedComponents(g)
		loggerFromContext(ctx).Debug("components", "count", len(groups))
		return emit(w, common, groups, func() { printGroups(w, "Components", groups) })
	})
}

// sccCommand lists strongly connected components of the directed graph.
func (c *CLI) sccCommand() *cobra.Command {
	return c.structureCommand("scc", "List strongly connected components", func(ctx context.Context, w io.Writer, g *graph.Graph, common commonOpts) error {
		groups := algo.StronglyConnectedComponents(g)
		loggerFromContext(ctx).Debug("strongly connected components", "count", len(groups))
		return emit(w, common, groups, func() { printGroups(w, "Strongly connected components", groups) })
	})
}

// toposortCommand prints a topological order or fails on a cycle.
func (c *CLI) toposortCommand() *cobra.Command {
	return c.structureCommand("toposort", "Print a topological order of the nodes", func(ctx context.Context, w io.Writer, g *graph.Graph, common commonOpts) error {
		prog := newProgress(loggerFromContext(ctx))
		order, ok := algo.TopologicalSort(g)
		if !ok {
			return errs.New(errs.ErrCodeInvalidGraph, "graph has a directed cycle")
		}
		prog.done(fmt.Sprintf("Sorted %d nodes", len(order)))
		return emit(w, common, order, func() {
			for i, id := range order {
				fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%4d", i+1))+" "+StyleValue.Render(id))
			}
		})
	})
}

// mstCommand prints a minimum spanning forest and its total weight.
func (c *CLI) mstCommand() *cobra.Command {
	return c.structureCommand("mst", "Compute a minimum spanning forest", func(ctx context.Context, w io.Writer, g *graph.Graph, common commonOpts) error {
		forest, err := algo.MinimumSpanningForest(g)
		if err != nil {
			return err
		}
		return emit(w, common, forest, func() {
			rows := make([][]string, len(forest.Edges))
			for i, e := range forest.Edges {
				rows[i] = []string{e.Source, e.Target, fmtFloat(e.Weight)}
			}
			printTable(w, []string{"Source", "Target", "Weight"}, rows)
			printKeyValue(w, "total weight", fmtFloat(forest.Weight))
		})
	})
}

// printGroups prints one numbered line per group.
func printGroups(w io.Writer, title string, groups [][]string) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s (%d)", title, len(groups))))
	rows := make([][]string, len(groups))
	for i, members := range groups {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(len(members)), joinIDs(members, 8)}
	}
	printTable(w, []string{"#", "Size", "Members"}, rows)
}
