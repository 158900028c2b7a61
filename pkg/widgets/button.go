package widgets

import (
	"fmt"

	"github.com/nextcore/quark/pkg/core"
	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/markup"
)

// Button is a clickable push button with a text caption.
//
// A matching events.Change notifies the listener's OnClick; the button
// itself holds no toggle state. OnUpdate requires the snapshot key "text".
type Button struct {
	name     string
	text     string
	listener core.Listener
	observer core.Observer
	stretch  string
}

var _ core.Widget = (*Button)(nil)

// NewButton creates a button captioned "Button" with no listener, no
// observer, and no stretch.
func NewButton(name string) Button {
	return Button{
		name: name,
		text: "Button",
	}
}

// WithText returns a copy of the button with the given caption.
func (b Button) WithText(text string) Button {
	b.text = text
	return b
}

// WithListener returns a copy of the button with the given listener.
func (b Button) WithListener(listener core.Listener) Button {
	b.listener = listener
	return b
}

// WithObserver returns a copy of the button with the given observer.
func (b Button) WithObserver(observer core.Observer) Button {
	b.observer = observer
	return b
}

// WithStretch returns a copy of the button carrying the "stretch" modifier.
func (b Button) WithStretch() Button {
	b.stretch = "stretch"
	return b
}

// Name returns the button's identity key.
func (b *Button) Name() string { return b.name }

// Text returns the current caption.
func (b *Button) Text() string { return b.text }

// Eval renders the button.
//
// Styling:
//
//	class = button [stretch]
func (b *Button) Eval() string {
	return fmt.Sprintf(
		`<div class="%s" onmousedown="%s"><label>%s</label></div>`,
		markup.ClassList("button", b.stretch),
		markup.Escape(events.ChangeScript(b.name, "")),
		markup.Escape(b.text),
	)
}

// Trigger reacts to one event: an events.Update delegates to OnUpdate and a
// matching events.Change notifies the listener's OnClick.
func (b *Button) Trigger(ev events.Event) error {
	switch e := ev.(type) {
	case events.Update:
		return b.OnUpdate()
	case events.Change:
		if e.Source == b.name && b.listener != nil {
			b.listener.OnClick()
		}
	}
	return nil
}

// OnUpdate overwrites the caption from the observer snapshot.
// Snapshot key: "text".
func (b *Button) OnUpdate() error {
	if b.observer == nil {
		return nil
	}
	text, err := core.SnapshotString(b.observer.Observe(), b.name, "text")
	if err != nil {
		return err
	}
	b.text = text
	return nil
}
