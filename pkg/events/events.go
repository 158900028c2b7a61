// Package events defines the stimulus values the host runtime delivers to
// widgets, and the script snippets widgets embed in their markup so the host
// bridge can synthesize those values from DOM-level interaction.
//
// The variant set is closed on the toolkit side: widgets dispatch on the
// concrete type and ignore anything they do not recognize, so new variants
// can be introduced without breaking existing widgets.
package events

import "strings"

// Event is an immutable stimulus delivered to a widget's Trigger method.
//
// The host runtime constructs events from host-level occurrences (webview
// callbacks, timers, data refreshes); widgets never construct events for
// themselves.
type Event interface {
	event()
}

// Update asks a widget to refresh its state from its observer.
//
// Update is a broadcast: it is not addressed to any particular widget, and
// the runtime normally delivers it to every widget in a tree.
type Update struct{}

// Change reports a user interaction on the widget whose name equals Source.
//
// Value is an opaque payload whose meaning belongs to the target widget
// (a text input's new content, an empty string for a plain toggle). Widgets
// whose name differs from Source ignore the event.
type Change struct {
	Source string
	Value  string
}

func (Update) event() {}
func (Change) event() {}

// ChangeScript returns the JavaScript snippet a widget embeds in an
// interaction attribute (onmousedown, onchange, ...) so that activating the
// element makes the host bridge synthesize Change{Source: source, Value: value}
// and feed it back into the tree.
//
// The host page is expected to install a global quark.emit(kind, source, value)
// function wired to its event loop; the scaffolded runner does this.
func ChangeScript(source, value string) string {
	return "quark.emit('change'," + quoteJS(source) + "," + quoteJS(value) + ")"
}

// ValueScript is like ChangeScript but forwards the element's live value
// instead of a fixed payload. Widgets whose payload is the element content
// (text inputs, ranges) use this form.
func ValueScript(source string) string {
	return "quark.emit('change'," + quoteJS(source) + ",this.value)"
}

// quoteJS returns s as a single-quoted JavaScript string literal, safe to
// place inside a double-quoted HTML attribute.
func quoteJS(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '<':
			// Keeps "</script>" and friends out of inline handlers.
			b.WriteString(`\x3c`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
