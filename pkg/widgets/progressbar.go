package widgets

import (
	"fmt"

	"github.com/nextcore/quark/pkg/core"
	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/markup"
)

// ProgressBar displays a completion percentage between 0 and 100.
//
// The bar is non-interactive: events.Change is inert. OnUpdate requires the
// snapshot key "value", a base-10 integer; out-of-range values are clamped,
// unparseable ones fail the update.
type ProgressBar struct {
	name     string
	value    int
	observer core.Observer
	stretch  string
}

var _ core.Widget = (*ProgressBar)(nil)

// NewProgressBar creates a bar at 0% with no observer and no stretch.
func NewProgressBar(name string) ProgressBar {
	return ProgressBar{name: name}
}

// WithValue returns a copy of the bar at the given percentage, clamped to
// the 0-100 range.
func (p ProgressBar) WithValue(value int) ProgressBar {
	p.value = clampPercent(value)
	return p
}

// WithObserver returns a copy of the bar with the given observer.
func (p ProgressBar) WithObserver(observer core.Observer) ProgressBar {
	p.observer = observer
	return p
}

// WithStretch returns a copy of the bar carrying the "stretch" modifier.
func (p ProgressBar) WithStretch() ProgressBar {
	p.stretch = "stretch"
	return p
}

// Name returns the bar's identity key.
func (p *ProgressBar) Name() string { return p.name }

// Value returns the current percentage.
func (p *ProgressBar) Value() int { return p.value }

// Eval renders the bar. The inner element's width carries the percentage;
// everything else is class-based.
//
// Styling:
//
//	class = progressbar [stretch]
//	class = progressbar-inner
func (p *ProgressBar) Eval() string {
	return fmt.Sprintf(
		`<div class="%s"><div class="progressbar-inner" style="width: %d%%;"></div></div>`,
		markup.ClassList("progressbar", p.stretch),
		p.value,
	)
}

// Trigger reacts to events.Update only; interaction events are inert.
func (p *ProgressBar) Trigger(ev events.Event) error {
	if _, ok := ev.(events.Update); ok {
		return p.OnUpdate()
	}
	return nil
}

// OnUpdate overwrites the percentage from the observer snapshot.
// Snapshot key: "value" (integer, clamped to 0-100).
func (p *ProgressBar) OnUpdate() error {
	if p.observer == nil {
		return nil
	}
	value, err := core.SnapshotInt(p.observer.Observe(), p.name, "value")
	if err != nil {
		return err
	}
	p.value = clampPercent(value)
	return nil
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
