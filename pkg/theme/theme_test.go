package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCSSCoversWidgetClasses(t *testing.T) {
	css := Default().CSS()
	for _, selector := range []string{
		".checkbox",
		".checkbox-outer.checked",
		".checkbox-inner.checked",
		".button",
		".label",
		".textinput input",
		".progressbar-inner",
		".stretch",
	} {
		if !strings.Contains(css, selector) {
			t.Errorf("stylesheet missing rule for %q", selector)
		}
	}
}

func TestParseFillsDefaults(t *testing.T) {
	th, err := Parse([]byte("name: midnight\naccent: \"#ff8800\"\n"))
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if th.Name != "midnight" || th.Accent != "#ff8800" {
		t.Errorf("overrides not applied: %+v", th)
	}
	if th.Background != Default().Background {
		t.Errorf("unset field not defaulted: %q", th.Background)
	}
	if !strings.Contains(th.CSS(), "#ff8800") {
		t.Error("stylesheet does not use the overridden accent")
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("accent: [unterminated")); err == nil {
		t.Error("malformed yaml did not error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("accent: \"#00aa55\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if th.Accent != "#00aa55" {
		t.Errorf("accent = %q", th.Accent)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file did not error")
	}
}
