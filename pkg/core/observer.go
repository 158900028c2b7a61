package core

import (
	"strconv"

	"github.com/nextcore/quark/pkg/errors"
)

// Observer is the capability a widget queries to refresh its state from
// external data. Observe returns a snapshot of named fields as strings; it
// is called synchronously and must be side-effect-free from the widget's
// perspective.
//
// Each widget documents the snapshot keys it requires. A missing required
// key, or a value that fails the field's parse rule, is surfaced as an
// *errors.ObserverDataError — never a silent default.
type Observer interface {
	Observe() map[string]string
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func() map[string]string

func (f ObserverFunc) Observe() map[string]string {
	return f()
}

// SnapshotString extracts the string field key from an observer snapshot.
// widget names the widget whose update is in progress, for error reporting.
func SnapshotString(snap map[string]string, widget, key string) (string, error) {
	v, ok := snap[key]
	if !ok {
		return "", &errors.ObserverDataError{Widget: widget, Key: key}
	}
	return v, nil
}

// SnapshotBool extracts the field key as a boolean. The value must satisfy
// strconv.ParseBool, which covers the canonical "true"/"false" spellings.
func SnapshotBool(snap map[string]string, widget, key string) (bool, error) {
	v, ok := snap[key]
	if !ok {
		return false, &errors.ObserverDataError{Widget: widget, Key: key}
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &errors.ObserverDataError{Widget: widget, Key: key, Value: v, Err: err}
	}
	return b, nil
}

// SnapshotInt extracts the field key as a base-10 integer.
func SnapshotInt(snap map[string]string, widget, key string) (int, error) {
	v, ok := snap[key]
	if !ok {
		return 0, &errors.ObserverDataError{Widget: widget, Key: key}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &errors.ObserverDataError{Widget: widget, Key: key, Value: v, Err: err}
	}
	return n, nil
}
