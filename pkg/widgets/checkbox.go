package widgets

import (
	"fmt"

	"github.com/nextcore/quark/pkg/core"
	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/markup"
)

// Checkbox is a togglable checkbox with a label.
//
// Activating the rendered element makes the host bridge deliver
// events.Change{Source: name, Value: ""}; a matching Change toggles the
// checked state and notifies the listener. OnUpdate requires the snapshot
// keys "text" (any string) and "checked" ("true"/"false").
//
//	cb := widgets.NewCheckbox("accept").
//	    WithText("Accept the terms").
//	    WithListener(myListener)
type Checkbox struct {
	name     string
	checked  bool
	text     string
	listener core.Listener
	observer core.Observer
	stretch  string
}

var _ core.Widget = (*Checkbox)(nil)

// NewCheckbox creates an unchecked checkbox labeled "Checkbox" with no
// listener, no observer, and no stretch.
func NewCheckbox(name string) Checkbox {
	return Checkbox{
		name: name,
		text: "Checkbox",
	}
}

// WithChecked returns a copy of the checkbox with the given checked state.
func (c Checkbox) WithChecked(checked bool) Checkbox {
	c.checked = checked
	return c
}

// WithText returns a copy of the checkbox with the given label.
func (c Checkbox) WithText(text string) Checkbox {
	c.text = text
	return c
}

// WithListener returns a copy of the checkbox with the given listener.
func (c Checkbox) WithListener(listener core.Listener) Checkbox {
	c.listener = listener
	return c
}

// WithObserver returns a copy of the checkbox with the given observer.
func (c Checkbox) WithObserver(observer core.Observer) Checkbox {
	c.observer = observer
	return c
}

// WithStretch returns a copy of the checkbox carrying the "stretch" class
// modifier, which the stylesheet maps to full container width.
func (c Checkbox) WithStretch() Checkbox {
	c.stretch = "stretch"
	return c
}

// Name returns the checkbox's identity key.
func (c *Checkbox) Name() string { return c.name }

// Checked reports the current toggle state.
func (c *Checkbox) Checked() bool { return c.checked }

// Text returns the current label.
func (c *Checkbox) Text() string { return c.text }

// Eval renders the checkbox.
//
// Styling:
//
//	class = checkbox [stretch]
//	class = checkbox-outer [checked]
//	class = checkbox-inner [checked]
func (c *Checkbox) Eval() string {
	checked := markup.BoolClass(c.checked, "checked")
	return fmt.Sprintf(
		`<div class="%s" onmousedown="%s"><div class="%s"><div class="%s"></div></div><label>%s</label></div>`,
		markup.ClassList("checkbox", c.stretch),
		markup.Escape(events.ChangeScript(c.name, "")),
		markup.ClassList("checkbox-outer", checked),
		markup.ClassList("checkbox-inner", checked),
		markup.Escape(c.text),
	)
}

// Trigger reacts to one event: an events.Update delegates to OnUpdate, a
// matching events.Change toggles the checked state and notifies the
// listener with the event's value. Everything else is ignored.
func (c *Checkbox) Trigger(ev events.Event) error {
	switch e := ev.(type) {
	case events.Update:
		return c.OnUpdate()
	case events.Change:
		if e.Source == c.name {
			c.checked = !c.checked
			if c.listener != nil {
				c.listener.OnChange(e.Value)
			}
		}
	}
	return nil
}

// OnUpdate overwrites the label and checked state from the observer
// snapshot. Snapshot keys: "text", "checked".
func (c *Checkbox) OnUpdate() error {
	if c.observer == nil {
		return nil
	}
	snap := c.observer.Observe()
	text, err := core.SnapshotString(snap, c.name, "text")
	if err != nil {
		return err
	}
	checked, err := core.SnapshotBool(snap, c.name, "checked")
	if err != nil {
		return err
	}
	c.text = text
	c.checked = checked
	return nil
}
