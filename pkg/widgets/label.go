package widgets

import (
	"fmt"

	"github.com/nextcore/quark/pkg/core"
	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/markup"
)

// Label is a non-interactive piece of text. It never reacts to
// events.Change; its only mutation path is OnUpdate, which requires the
// snapshot key "text".
type Label struct {
	name     string
	text     string
	observer core.Observer
	stretch  string
}

var _ core.Widget = (*Label)(nil)

// NewLabel creates a label with empty text, no observer, and no stretch.
func NewLabel(name string) Label {
	return Label{name: name}
}

// WithText returns a copy of the label with the given text.
func (l Label) WithText(text string) Label {
	l.text = text
	return l
}

// WithObserver returns a copy of the label with the given observer.
func (l Label) WithObserver(observer core.Observer) Label {
	l.observer = observer
	return l
}

// WithStretch returns a copy of the label carrying the "stretch" modifier.
func (l Label) WithStretch() Label {
	l.stretch = "stretch"
	return l
}

// Name returns the label's identity key.
func (l *Label) Name() string { return l.name }

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// Eval renders the label.
//
// Styling:
//
//	class = label [stretch]
func (l *Label) Eval() string {
	return fmt.Sprintf(
		`<div class="%s">%s</div>`,
		markup.ClassList("label", l.stretch),
		markup.Escape(l.text),
	)
}

// Trigger reacts to events.Update only; interaction events are inert.
func (l *Label) Trigger(ev events.Event) error {
	if _, ok := ev.(events.Update); ok {
		return l.OnUpdate()
	}
	return nil
}

// OnUpdate overwrites the text from the observer snapshot.
// Snapshot key: "text".
func (l *Label) OnUpdate() error {
	if l.observer == nil {
		return nil
	}
	text, err := core.SnapshotString(l.observer.Observe(), l.name, "text")
	if err != nil {
		return err
	}
	l.text = text
	return nil
}
