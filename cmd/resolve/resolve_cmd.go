// Package resolve implements the "resolve" subcommand: it drives a resolver
// instance over a project's entry files and prints resolved files and the
// final remapping table.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LegacyCodeHQ/solresolve/nodelookup"
	"github.com/LegacyCodeHQ/solresolve/project"
	"github.com/LegacyCodeHQ/solresolve/resolver"
	"github.com/LegacyCodeHQ/solresolve/sourcefs"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	outputFormat     string
	projectRoot      string
	workingDirectory string
	extensions       string
	remappings       []string
	copyToClipboard  bool
)

// Cmd represents the resolve command.
var Cmd = &cobra.Command{
	Use:   "resolve [entry files...]",
	Short: "Resolve a Solidity project's import graph to canonical source names",
	Long: `Resolve walks a project's entry files, follows their imports through
user remappings, the project tree, and node_modules, and prints the resulting
source names alongside the remapping table an external compiler would need.`,
	RunE: runResolve,
}

func init() {
	_ = godotenv.Load()
	if projectRoot == "" {
		projectRoot = os.Getenv("SOLRESOLVE_PROJECT_ROOT")
	}
	if workingDirectory == "" {
		workingDirectory = os.Getenv("SOLRESOLVE_WORKING_DIR")
	}

	Cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text|json)")
	Cmd.Flags().StringVarP(&projectRoot, "root", "r", projectRoot, "Project root directory (default: current directory)")
	Cmd.Flags().StringVarP(&workingDirectory, "working-dir", "w", workingDirectory, "Working directory used for friendly path display")
	Cmd.Flags().StringVarP(&extensions, "ext", "e", ".sol", "Comma-separated entry file extensions")
	Cmd.Flags().StringSliceVar(&remappings, "remap", nil, "User remapping, in context:prefix=target form (repeatable)")
	Cmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "b", false, "Copy the resolved output (files and remapping table) to your clipboard")
}

func runResolve(cmd *cobra.Command, args []string) error {
	root := projectRoot
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	entries := args
	if len(entries) == 0 {
		entries, err = project.DiscoverEntryFiles(absRoot, project.SplitExts(extensions))
		if err != nil {
			return fmt.Errorf("resolve: %w", err)
		}
	}

	fs := sourcefs.New()
	lookup := nodelookup.New(fs.Exists)

	res, err := resolver.Create(absRoot, remappings, workingDirectory, fs, lookup)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	report, err := runOverEntries(res, entries)
	if err != nil {
		return err
	}

	output, err := formatReport(report, outputFormat)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)

	if copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("resolve: failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied the resolved output to your clipboard.")
	}

	return nil
}

// runOverEntries resolves every entry file and transitively every import it
// reaches, then collects the resulting remapping table and any import cycle
// discovered along the way.
func runOverEntries(res *resolver.Resolver, entries []string) (report, error) {
	files, err := project.ResolveEntries(res, entries)
	if err != nil {
		return report{}, err
	}

	cycles, err := res.Graph().Cycles()
	if err != nil {
		return report{}, fmt.Errorf("resolve: %w", err)
	}

	return report{
		Files:            files,
		Remappings:       res.GetRemappings(),
		Cycles:           cycles,
		WorkingDirectory: res.WorkingDirectory(),
	}, nil
}

func formatReport(r report, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(r.toJSON(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("resolve: %w", err)
		}
		return string(data), nil
	case "text", "":
		return r.toText(), nil
	default:
		return "", fmt.Errorf("resolve: unsupported format %q", format)
	}
}
