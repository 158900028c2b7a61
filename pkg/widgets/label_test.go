package widgets_test

import (
	"testing"

	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/uitest"
	"github.com/nextcore/quark/pkg/widgets"
)

func TestLabelEval(t *testing.T) {
	l := widgets.NewLabel("status").WithText("Ready")
	m := uitest.Render(t, &l)
	m.RequireOne("div.label")
	if got := m.Text("div.label"); got != "Ready" {
		t.Errorf("text = %q, want %q", got, "Ready")
	}
}

func TestLabelIgnoresChange(t *testing.T) {
	l := widgets.NewLabel("status").WithText("Ready")
	before := l
	if err := l.Trigger(events.Change{Source: "status", Value: "x"}); err != nil {
		t.Fatalf("Trigger returned %v", err)
	}
	if l != before {
		t.Errorf("Change mutated a label: %+v -> %+v", before, l)
	}
}

func TestLabelOnUpdate(t *testing.T) {
	l := widgets.NewLabel("status").WithObserver(snapshot(map[string]string{"text": "Done"}))
	if err := l.Trigger(events.Update{}); err != nil {
		t.Fatalf("Trigger(Update) returned %v", err)
	}
	if l.Text() != "Done" {
		t.Errorf("text = %q, want %q", l.Text(), "Done")
	}
}
