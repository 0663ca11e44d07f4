package cmd

import (
	"os"

	"github.com/LegacyCodeHQ/solresolve/cmd/resolve"
	"github.com/LegacyCodeHQ/solresolve/cmd/watch"

	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solresolve",
	Short: "Resolve a Solidity project's import graph to canonical source names",
	Long: `solresolve resolves a Solidity project's transitive import graph to
canonical source names, tracking every project file and every npm-style
package it reaches, and emits the remapping table an external compiler needs
to reproduce the same resolution.

Use 'solresolve --help' to see all available commands, or 'solresolve <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
