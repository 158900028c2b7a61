package widgets

import (
	"fmt"

	"github.com/nextcore/quark/pkg/core"
	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/markup"
)

// TextInput is a single-line text entry field.
//
// The rendered input forwards its live content, so a matching events.Change
// carries the new text as its value: the widget stores it and passes it to
// the listener's OnChange. OnUpdate requires the snapshot key "value".
type TextInput struct {
	name     string
	value    string
	size     int
	listener core.Listener
	observer core.Observer
	stretch  string
}

var _ core.Widget = (*TextInput)(nil)

// NewTextInput creates an empty text input of size 10 with no listener, no
// observer, and no stretch.
func NewTextInput(name string) TextInput {
	return TextInput{
		name: name,
		size: 10,
	}
}

// WithValue returns a copy of the input with the given content.
func (t TextInput) WithValue(value string) TextInput {
	t.value = value
	return t
}

// WithSize returns a copy of the input with the given visible width in
// characters. Non-positive sizes keep the default.
func (t TextInput) WithSize(size int) TextInput {
	if size > 0 {
		t.size = size
	}
	return t
}

// WithListener returns a copy of the input with the given listener.
func (t TextInput) WithListener(listener core.Listener) TextInput {
	t.listener = listener
	return t
}

// WithObserver returns a copy of the input with the given observer.
func (t TextInput) WithObserver(observer core.Observer) TextInput {
	t.observer = observer
	return t
}

// WithStretch returns a copy of the input carrying the "stretch" modifier.
func (t TextInput) WithStretch() TextInput {
	t.stretch = "stretch"
	return t
}

// Name returns the input's identity key.
func (t *TextInput) Name() string { return t.name }

// Value returns the current content.
func (t *TextInput) Value() string { return t.value }

// Eval renders the input.
//
// Styling:
//
//	class = textinput [stretch]
func (t *TextInput) Eval() string {
	return fmt.Sprintf(
		`<div class="%s"><input size="%d" value="%s" onchange="%s" /></div>`,
		markup.ClassList("textinput", t.stretch),
		t.size,
		markup.Escape(t.value),
		markup.Escape(events.ValueScript(t.name)),
	)
}

// Trigger reacts to one event: an events.Update delegates to OnUpdate and a
// matching events.Change stores the event's value then notifies the
// listener's OnChange with it.
func (t *TextInput) Trigger(ev events.Event) error {
	switch e := ev.(type) {
	case events.Update:
		return t.OnUpdate()
	case events.Change:
		if e.Source == t.name {
			t.value = e.Value
			if t.listener != nil {
				t.listener.OnChange(e.Value)
			}
		}
	}
	return nil
}

// OnUpdate overwrites the content from the observer snapshot.
// Snapshot key: "value".
func (t *TextInput) OnUpdate() error {
	if t.observer == nil {
		return nil
	}
	value, err := core.SnapshotString(t.observer.Observe(), t.name, "value")
	if err != nil {
		return err
	}
	t.value = value
	return nil
}
