package widgets_test

import (
	"testing"

	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/uitest"
	"github.com/nextcore/quark/pkg/widgets"
)

func TestTextInputEval(t *testing.T) {
	ti := widgets.NewTextInput("name").WithValue("Ada").WithSize(24)
	m := uitest.Render(t, &ti)

	m.RequireOne("div.textinput > input")
	if got := m.Attr("input", "value"); got != "Ada" {
		t.Errorf("value attribute = %q, want %q", got, "Ada")
	}
	if got := m.Attr("input", "size"); got != "24" {
		t.Errorf("size attribute = %q, want %q", got, "24")
	}
	if got, want := m.Attr("input", "onchange"), events.ValueScript("name"); got != want {
		t.Errorf("onchange = %q, want %q", got, want)
	}
}

func TestTextInputChangeStoresValueAndNotifies(t *testing.T) {
	l := &recordListener{}
	ti := widgets.NewTextInput("name").WithListener(l)

	if err := ti.Trigger(events.Change{Source: "name", Value: "Grace"}); err != nil {
		t.Fatalf("Trigger returned %v", err)
	}
	if ti.Value() != "Grace" {
		t.Errorf("value = %q, want %q", ti.Value(), "Grace")
	}
	if len(l.changes) != 1 || l.changes[0] != "Grace" {
		t.Errorf("OnChange calls = %v, want [Grace]", l.changes)
	}

	if err := ti.Trigger(events.Change{Source: "other", Value: "x"}); err != nil {
		t.Fatalf("Trigger returned %v", err)
	}
	if ti.Value() != "Grace" {
		t.Errorf("non-matching Change mutated value to %q", ti.Value())
	}
}

func TestTextInputOnUpdate(t *testing.T) {
	ti := widgets.NewTextInput("name").WithObserver(snapshot(map[string]string{"value": "Joan"}))
	if err := ti.OnUpdate(); err != nil {
		t.Fatalf("OnUpdate returned %v", err)
	}
	if ti.Value() != "Joan" {
		t.Errorf("value = %q, want %q", ti.Value(), "Joan")
	}

	missing := widgets.NewTextInput("name").WithValue("Keep").WithObserver(snapshot(nil))
	if err := missing.OnUpdate(); err == nil {
		t.Error("missing value key did not fail the update")
	}
	if missing.Value() != "Keep" {
		t.Errorf("failed update mutated value to %q", missing.Value())
	}
}

func TestTextInputSizeGuard(t *testing.T) {
	ti := widgets.NewTextInput("name").WithSize(0)
	m := uitest.Render(t, &ti)
	if got := m.Attr("input", "size"); got != "10" {
		t.Errorf("size = %q, want default 10", got)
	}
}
