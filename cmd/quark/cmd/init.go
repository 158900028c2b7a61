package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/module"

	"github.com/nextcore/quark/cmd/quark/internal/templates"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <directory> [module-path]",
		Short: "Create a new quark application",
		Long: `Create a new quark application in a new directory.

This command creates:
  - A new directory at the specified path
  - go.mod with the specified module path
  - main.go with a starter widget tree
  - quark.yaml and theme.yaml

The project name is derived from the directory basename. The module path
defaults to example.com/<name> if not specified.

Examples:
  quark init myapp
  quark init myapp github.com/username/myapp
  quark init ./projects/myapp`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by quark; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)
	if err := validateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	if err := validateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", projectName, err)
	}

	modulePath := "example.com/" + projectName
	if len(args) > 1 {
		modulePath = args[1]
	}
	if err := module.CheckPath(modulePath); err != nil {
		return fmt.Errorf("invalid module path %q: %w", modulePath, err)
	}

	if err := scaffoldProject(dir, projectName, modulePath); err != nil {
		return err
	}

	// Best effort; a missing network or unpublished toolkit is not fatal.
	fmt.Println("  Adding quark dependency...")
	getCmd := exec.Command("go", "get", "github.com/nextcore/quark@latest")
	getCmd.Dir = dir
	getCmd.Stdout = os.Stdout
	getCmd.Stderr = os.Stderr
	if err := getCmd.Run(); err != nil {
		fmt.Println("  Warning: go get failed (this is expected if quark is not yet published)")
	}

	fmt.Printf("\nProject created successfully!\n\n")
	fmt.Printf("Next steps:\n")
	fmt.Printf("  cd %s\n", dir)
	fmt.Printf("  quark check          # Validate the workspace\n")
	fmt.Printf("  go run .             # Print the rendered starter page\n")

	return nil
}

// scaffoldProject creates the project directory and writes the template
// files. This is the portion of init that has no side effects beyond the
// filesystem, making it safe to call from tests without network access.
func scaffoldProject(dir, projectName, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	data := &templates.InitData{
		ModulePath: modulePath,
		AppName:    projectName,
		AppID:      "com.example." + strings.ReplaceAll(projectName, "-", "_"),
	}
	for tmplName, outName := range templates.InitFiles {
		content, err := templates.RenderInit(tmplName, data)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", tmplName, err)
		}
		out := filepath.Join(dir, outName)
		if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("  Created %s\n", out)
	}
	return nil
}

// validateDirectory rejects paths that would scaffold over system locations.
func validateDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory is required")
	}
	if dir == "." || dir == ".." {
		return fmt.Errorf("directory must name a new path, not %q", dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	// A root or root-level directory is never a sensible project location.
	parent := filepath.Dir(abs)
	if abs == string(filepath.Separator) || parent == abs || filepath.Dir(parent) == parent {
		return fmt.Errorf("refusing to scaffold at root-level path %q", dir)
	}
	return nil
}

var projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// validateProjectName checks the name derived from the directory basename.
func validateProjectName(name string) error {
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("must start with a lowercase letter and contain only lowercase letters, digits, '-' and '_'")
	}
	return nil
}
