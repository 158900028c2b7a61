package events

import (
	"strings"
	"testing"
)

func TestChangeScript(t *testing.T) {
	tests := []struct {
		name   string
		source string
		value  string
		want   string
	}{
		{"empty value", "cb1", "", "quark.emit('change','cb1','')"},
		{"plain value", "input1", "hello", "quark.emit('change','input1','hello')"},
		{"quote in value", "input1", "it's", `quark.emit('change','input1','it\'s')`},
		{"backslash in value", "input1", `a\b`, `quark.emit('change','input1','a\\b')`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangeScript(tt.source, tt.value)
			if got != tt.want {
				t.Errorf("ChangeScript(%q, %q) = %q, want %q", tt.source, tt.value, got, tt.want)
			}
		})
	}
}

func TestValueScript(t *testing.T) {
	got := ValueScript("input1")
	want := "quark.emit('change','input1',this.value)"
	if got != want {
		t.Errorf("ValueScript(%q) = %q, want %q", "input1", got, want)
	}
}

func TestQuoteJSNeutralizesMarkup(t *testing.T) {
	got := ChangeScript("cb1", "</script><script>")
	if strings.Contains(got, "</script>") {
		t.Errorf("ChangeScript left a literal closing script tag in %q", got)
	}
	if !strings.Contains(got, `\x3c`) {
		t.Errorf("ChangeScript did not hex-escape '<' in %q", got)
	}
}

func TestEventVariantsAreDistinct(t *testing.T) {
	var ev Event = Change{Source: "cb1", Value: "v"}
	switch e := ev.(type) {
	case Change:
		if e.Source != "cb1" || e.Value != "v" {
			t.Errorf("Change payload = %+v, want {cb1 v}", e)
		}
	default:
		t.Fatalf("Change did not dispatch as Change: %T", ev)
	}

	ev = Update{}
	if _, ok := ev.(Update); !ok {
		t.Fatalf("Update did not dispatch as Update: %T", ev)
	}
}
