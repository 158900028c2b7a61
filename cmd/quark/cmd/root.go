// Package cmd implements the quark CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0-dev"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quark",
		Short: "Workspace tool for quark webview applications",
		Long: `quark scaffolds and validates workspaces for applications built on the
quark widget toolkit: a retained widget tree rendered as HTML inside a
host webview.

Use "quark <command> --help" for more information about a command.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
