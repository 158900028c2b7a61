// Package widgets provides the concrete widget implementations: Checkbox,
// Button, Label, TextInput, ProgressBar, and Image.
//
// # Construction
//
// Every widget is created by a NewXxx constructor taking the widget's name
// (its identity key, immutable for the widget's life) and configured through
// WithXxx methods that return copies:
//
//	cb := widgets.NewCheckbox("accept").
//	    WithText("Accept the terms").
//	    WithChecked(true).
//	    WithListener(myListener).
//	    WithObserver(myObserver)
//
// WithXxx methods never mutate the receiver, so the chain is order
// independent and a configured widget can be used as a template for others.
// Once installed into a core.Tree the widget is addressed through its
// pointer and mutates in place via Trigger and OnUpdate.
//
// # Markup conventions
//
// Eval output is class-based: each widget renders a container carrying its
// kind as a class token ("checkbox", "button", ...), plus the optional
// "stretch" modifier, with state mirrored in decoration classes ("checked")
// rather than inline styles. The stylesheet from pkg/theme targets exactly
// these classes. Interaction attributes embed events.ChangeScript snippets;
// the host bridge turns them back into events.Change values.
//
// # Observer keys
//
// Each widget documents the snapshot keys its OnUpdate requires. Missing or
// unparseable keys fail the update with *errors.ObserverDataError and leave
// the widget's prior state untouched.
package widgets
