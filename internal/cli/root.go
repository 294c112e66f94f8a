package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// Execute runs the graphkit CLI with args and returns an error if the command
// fails. Reports go to stdout, logs to stderr. Metrics are flushed even when
// the command fails.
//
// Logging:
//   - Default: info level
//   - With --verbose (-v): debug level
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	var verbose bool

	c := New(stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	setup := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		return setup(cmd, args)
	}

	err := root.ExecuteContext(ctx)
	if cerr := c.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
