// Package theme turns a small YAML-declared palette into the stylesheet the
// standard widget classes rely on.
//
// Widgets never consult the theme: Eval output is class-based, and the host
// page injects the stylesheet from CSS() next to the rendered markup. That
// keeps rendering deterministic and restyling a page a matter of swapping
// one string.
package theme

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is a declarative palette for the standard widget classes. Zero
// fields fall back to the matching Default() value when parsed, so a theme
// file only has to name what it changes.
type Theme struct {
	// Name identifies the theme in tooling output.
	Name string `yaml:"name,omitempty"`
	// Background is the widget background color.
	Background string `yaml:"background,omitempty"`
	// Foreground is the text color.
	Foreground string `yaml:"foreground,omitempty"`
	// Accent is the color of checked decorations and progress fill.
	Accent string `yaml:"accent,omitempty"`
	// Border is the outline color for boxed widgets.
	Border string `yaml:"border,omitempty"`
	// FontFamily is the label font stack.
	FontFamily string `yaml:"font-family,omitempty"`
	// FontSize is the base font size, any CSS length.
	FontSize string `yaml:"font-size,omitempty"`
}

// Default returns the built-in light theme.
func Default() Theme {
	return Theme{
		Name:       "default",
		Background: "#ffffff",
		Foreground: "#24292f",
		Accent:     "#2090f0",
		Border:     "#d0d7de",
		FontFamily: "system-ui, sans-serif",
		FontSize:   "14px",
	}
}

// Parse decodes a YAML theme, filling unset fields from Default().
func Parse(data []byte) (Theme, error) {
	t := Theme{}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	return t.withDefaults(), nil
}

// Load reads and parses a theme file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme %q: %w", path, err)
	}
	return Parse(data)
}

func (t Theme) withDefaults() Theme {
	d := Default()
	if t.Name == "" {
		t.Name = d.Name
	}
	if t.Background == "" {
		t.Background = d.Background
	}
	if t.Foreground == "" {
		t.Foreground = d.Foreground
	}
	if t.Accent == "" {
		t.Accent = d.Accent
	}
	if t.Border == "" {
		t.Border = d.Border
	}
	if t.FontFamily == "" {
		t.FontFamily = d.FontFamily
	}
	if t.FontSize == "" {
		t.FontSize = d.FontSize
	}
	return t
}

// CSS assembles the stylesheet for the standard widget classes.
func (t Theme) CSS() string {
	var b strings.Builder
	rule := func(selector, body string) {
		b.WriteString(selector)
		b.WriteString(" { ")
		b.WriteString(body)
		b.WriteString(" }\n")
	}

	rule("body", fmt.Sprintf("background: %s; color: %s; font-family: %s; font-size: %s;",
		t.Background, t.Foreground, t.FontFamily, t.FontSize))

	rule(".checkbox", "display: inline-flex; align-items: center; cursor: pointer;")
	rule(".checkbox-outer", fmt.Sprintf("width: 14px; height: 14px; border: 1px solid %s; margin-right: 6px;", t.Border))
	rule(".checkbox-outer.checked", fmt.Sprintf("border-color: %s;", t.Accent))
	rule(".checkbox-inner", "width: 8px; height: 8px; margin: 2px;")
	rule(".checkbox-inner.checked", fmt.Sprintf("background: %s;", t.Accent))

	rule(".button", fmt.Sprintf("display: inline-block; padding: 4px 12px; border: 1px solid %s; cursor: pointer;", t.Border))
	rule(".button:active", fmt.Sprintf("border-color: %s;", t.Accent))

	rule(".label", "display: inline-block;")

	rule(".textinput input", fmt.Sprintf("border: 1px solid %s; color: %s; font-size: %s;",
		t.Border, t.Foreground, t.FontSize))
	rule(".textinput input:focus", fmt.Sprintf("border-color: %s; outline: none;", t.Accent))

	rule(".progressbar", fmt.Sprintf("height: 6px; border: 1px solid %s;", t.Border))
	rule(".progressbar-inner", fmt.Sprintf("height: 100%%; background: %s;", t.Accent))

	rule(".image img", "display: block; max-width: 100%;")

	rule(".stretch", "width: 100%;")

	return b.String()
}
