// Package config resolves a quark application workspace: the Go module it
// lives in and the optional quark.yaml next to it.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/nextcore/quark/pkg/errors"
)

// Config represents the optional quark.yaml configuration.
type Config struct {
	App   AppConfig `yaml:"app"`
	Theme string    `yaml:"theme,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// Resolved contains resolved workspace values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	AppID      string
	// ThemePath is the theme file to load, empty when the workspace has none.
	ThemePath string
}

// LoadOptional reads quark.yaml if present. A missing file yields an empty
// config, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "quark.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read quark.yaml: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse quark.yaml: %w", err)
	}
	return cfg, nil
}

// Resolve reads the workspace rooted at dir: go.mod must exist and carry a
// legal module path; quark.yaml fills in app metadata, with defaults derived
// from the module path. Failures come back as *errors.QuarkError with
// KindConfig.
func Resolve(dir string) (*Resolved, error) {
	fail := func(err error) (*Resolved, error) {
		return nil, &errors.QuarkError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return fail(err)
	}

	gomod := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(gomod)
	if err != nil {
		return fail(fmt.Errorf("not a quark workspace (no go.mod): %w", err))
	}
	f, err := modfile.Parse(gomod, data, nil)
	if err != nil {
		return fail(fmt.Errorf("failed to parse go.mod: %w", err))
	}
	if f.Module == nil {
		return fail(fmt.Errorf("go.mod has no module directive"))
	}
	modulePath := f.Module.Mod.Path
	if err := module.CheckPath(modulePath); err != nil {
		return fail(fmt.Errorf("invalid module path %q: %w", modulePath, err))
	}

	cfg, err := LoadOptional(root)
	if err != nil {
		return fail(err)
	}

	appName := cfg.App.Name
	if appName == "" {
		appName = filepath.Base(modulePath)
	}
	appID := cfg.App.ID
	if appID == "" {
		appID = "com.example." + sanitizeIDSegment(appName)
	}
	if err := validateAppID(appID); err != nil {
		return fail(fmt.Errorf("invalid app id %q: %w", appID, err))
	}

	themePath := ""
	switch {
	case cfg.Theme != "":
		themePath = filepath.Join(root, cfg.Theme)
	default:
		candidate := filepath.Join(root, "theme.yaml")
		if _, err := os.Stat(candidate); err == nil {
			themePath = candidate
		}
	}

	return &Resolved{
		Root:       root,
		ModulePath: modulePath,
		AppName:    appName,
		AppID:      appID,
		ThemePath:  themePath,
	}, nil
}

// validateAppID checks a reverse-DNS application identifier: at least two
// dot-separated segments, each starting with a letter and containing only
// letters, digits, and underscores.
func validateAppID(id string) error {
	segments := strings.Split(id, ".")
	if len(segments) < 2 {
		return fmt.Errorf("want at least two dot-separated segments")
	}
	for _, seg := range segments {
		if seg == "" {
			return fmt.Errorf("empty segment")
		}
		if !isLetter(rune(seg[0])) {
			return fmt.Errorf("segment %q must start with a letter", seg)
		}
		for _, r := range seg {
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return fmt.Errorf("segment %q contains %q", seg, r)
			}
		}
	}
	return nil
}

// sanitizeIDSegment rewrites s into a legal app-id segment.
func sanitizeIDSegment(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case isLetter(r), isDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" || !isLetter(rune(out[0])) {
		out = "app" + out
	}
	return out
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
