package cmd

import (
	"path/filepath"
	"testing"
)

func TestCheckScaffoldedWorkspace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "myapp")
	if err := scaffoldProject(dir, "myapp", "example.com/myapp"); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"check", dir})
	if err := root.Execute(); err != nil {
		t.Errorf("check on a fresh scaffold failed: %v", err)
	}
}

func TestCheckRejectsNonWorkspace(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"check", t.TempDir()})
	if err := root.Execute(); err == nil {
		t.Error("check on an empty directory did not fail")
	}
}
