// Package watch implements the "watch" subcommand: it re-runs resolution
// whenever a watched source file or package.json changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
)

type watchOptions struct {
	repoPath   string
	extensions string
	remappings []string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		extensions: ".sol",
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve a project's import graph on file-system changes",
		Long: `Watch re-runs resolution whenever a watched source file or
package.json under the project changes, printing the updated remapping
table each time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repoPath, "root", "r", "", "Project root directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.extensions, "ext", "e", opts.extensions, "Comma-separated entry file extensions")
	cmd.Flags().StringSliceVar(&opts.remappings, "remap", nil, "User remapping, in context:prefix=target form (repeatable)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	repoPath := opts.repoPath
	if repoPath == "" {
		repoPath = "."
	}

	absRepoPath, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("watch: failed to resolve project root: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rebuild(cmd, absRepoPath, opts)

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", absRepoPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRebuild(ctx, absRepoPath, opts)
}
