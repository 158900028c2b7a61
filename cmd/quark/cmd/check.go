package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextcore/quark/cmd/quark/internal/config"
	"github.com/nextcore/quark/pkg/theme"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [directory]",
		Short: "Validate a quark workspace",
		Long: `Validate the workspace in the given directory (default ".").

Checks that go.mod parses and carries a legal module path, that quark.yaml
(if present) is well-formed with a valid app id, and that the configured
theme file loads.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	res, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	fmt.Printf("  Module:  %s\n", res.ModulePath)
	fmt.Printf("  App:     %s (%s)\n", res.AppName, res.AppID)

	if res.ThemePath == "" {
		fmt.Println("  Theme:   built-in default")
	} else {
		th, err := theme.Load(res.ThemePath)
		if err != nil {
			return fmt.Errorf("theme check failed: %w", err)
		}
		fmt.Printf("  Theme:   %s (%s)\n", th.Name, res.ThemePath)
	}

	fmt.Println("Workspace OK")
	return nil
}
