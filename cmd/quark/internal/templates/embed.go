// Package templates provides embedded template files for project creation.
package templates

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed init/*
var FS embed.FS

// InitData contains the data for init template substitution.
type InitData struct {
	ModulePath string // e.g., "example.com/myapp"
	AppName    string // e.g., "myapp"
	AppID      string // e.g., "com.example.myapp"
}

// InitFiles maps template names under init/ to the file each produces in a
// new project. Files without a .tmpl suffix are copied verbatim.
var InitFiles = map[string]string{
	"go.mod.tmpl":     "go.mod",
	"main.go.tmpl":    "main.go",
	"quark.yaml.tmpl": "quark.yaml",
	"theme.yaml":      "theme.yaml",
}

// RenderInit reads the named template under init/ and substitutes data into
// it. Non-template files pass through unchanged.
func RenderInit(name string, data *InitData) (string, error) {
	raw, err := FS.ReadFile("init/" + name)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(name, ".tmpl") {
		return string(raw), nil
	}
	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
