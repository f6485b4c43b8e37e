package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the lvpath CLI under ctx and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree writing results to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool
	var format string

	root := &cobra.Command{
		Use:           "lvpath",
		Short:         "lvpath finds shortest and K shortest loopless paths",
		Long:          `lvpath loads a weighted graph or a grid map and prints the cheapest route between two nodes, or the K cheapest loopless routes ranked by cost.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(stderr, level))
			ctx = withFormat(ctx, format)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("lvpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&format, "format", "f", formatText, "output format: text, json")

	root.AddCommand(newShortestCmd())
	root.AddCommand(newKShortestCmd())
	root.AddCommand(newGridCmd())

	return root
}
