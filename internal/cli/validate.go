package cli

import (
	"io"

	"github.com/spf13/cobra"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
)

// validateCommand creates the validate command. It exits non-zero when the
// graph has any structural issue.
func (c *CLI) validateCommand() *cobra.Command {
	var common commonOpts

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a graph file for structural problems",
		Long: `Check a graph file for invalid or duplicate node ids, edges that reference
unknown nodes, and negative or non-finite weights.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer runner.Close()
			return runValidate(cmd.OutOrStdout(), g, common)
		},
	}

	cmd.Flags().BoolVar(&common.json, "json", false, "print issues as JSON")
	cmd.Flags().StringVarP(&common.output, "output", "o", "", "write issues as JSON to a file")

	return cmd
}

func runValidate(w io.Writer, g *graph.Graph, common commonOpts) error {
	issues := g.Issues()
	if issues == nil {
		issues = []graph.Issue{}
	}
	err := emit(w, common, issues, func() {
		if len(issues) == 0 {
			printSuccess(w, "Graph is valid")
			printDetail(w, "%d nodes, %d edges", g.NodeCount(), g.EdgeCount())
			return
		}
		for _, is := range issues {
			printWarning(w, "%s", is)
		}
	})
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		return errs.New(errs.ErrCodeInvalidGraph, "%d issue(s) found", len(issues))
	}
	return nil
}
