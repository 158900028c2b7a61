package core

import (
	stderrors "errors"
	"strings"

	"github.com/nextcore/quark/pkg/errors"
	"github.com/nextcore/quark/pkg/events"
)

// Tree owns a flat collection of widgets and is the unit the host runtime
// drives: it validates names at construction time, fans events out, and
// concatenates child markup into one document fragment.
//
// Widgets are evaluated and rendered in insertion order. A widget belongs to
// exactly one tree for its whole life.
type Tree struct {
	widgets []Widget
	byName  map[string]Widget
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{byName: make(map[string]Widget)}
}

// Add installs widgets into the tree. Names must be unique within the tree;
// a duplicate is rejected with a *errors.DuplicateNameError and nothing from
// that call onward is installed.
func (t *Tree) Add(ws ...Widget) error {
	for _, w := range ws {
		name := w.Name()
		if _, exists := t.byName[name]; exists {
			err := &errors.DuplicateNameError{Name: name}
			errors.Report(&errors.QuarkError{
				Op:     "core.Tree.Add",
				Kind:   errors.KindTree,
				Widget: name,
				Err:    err,
			})
			return err
		}
		t.byName[name] = w
		t.widgets = append(t.widgets, w)
	}
	return nil
}

// Lookup returns the widget with the given name, if present.
func (t *Tree) Lookup(name string) (Widget, bool) {
	w, ok := t.byName[name]
	return w, ok
}

// Len returns the number of widgets in the tree.
func (t *Tree) Len() int {
	return len(t.widgets)
}

// Trigger delivers one event to the tree.
//
// An events.Change is routed directly to the widget it targets; an unknown
// source is inert, matching the per-widget routing rule. Everything else,
// events.Update included, is broadcast to every widget in insertion order.
// Per-widget update failures are reported to the global error handler and
// joined into the returned error; a failed widget keeps its prior state and
// the remaining widgets are still updated.
func (t *Tree) Trigger(ev events.Event) error {
	if ch, ok := ev.(events.Change); ok {
		w, ok := t.byName[ch.Source]
		if !ok {
			return nil
		}
		return w.Trigger(ev)
	}

	var errs []error
	for _, w := range t.widgets {
		if err := w.Trigger(ev); err != nil {
			errors.Report(&errors.QuarkError{
				Op:     "core.Tree.Trigger",
				Kind:   errors.KindObserverData,
				Widget: w.Name(),
				Err:    err,
			})
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Eval renders every widget and concatenates the markup in insertion order.
func (t *Tree) Eval() string {
	var b strings.Builder
	for _, w := range t.widgets {
		b.WriteString(w.Eval())
	}
	return b.String()
}
