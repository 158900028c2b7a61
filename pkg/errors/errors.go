// Package errors provides structured error handling for the quark toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindObserverData indicates an observer snapshot missing a required
	// field or carrying a value that fails to parse.
	KindObserverData
	// KindTree indicates a widget tree configuration error.
	KindTree
	// KindDecode indicates an asset decoding failure.
	KindDecode
	// KindConfig indicates a workspace configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindObserverData:
		return "observer-data"
	case KindTree:
		return "tree"
	case KindDecode:
		return "decode"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// QuarkError represents a structured error in the quark toolkit.
type QuarkError struct {
	// Op is the operation that failed (e.g., "core.Tree.Trigger").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the name of the widget involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *QuarkError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *QuarkError) Unwrap() error {
	return e.Err
}

// ObserverDataError reports an observer snapshot that cannot be applied to a
// widget: a required key is missing, or its value failed to parse into the
// field's type. The widget's prior state is left untouched when this error
// is returned.
type ObserverDataError struct {
	// Widget is the name of the widget whose update failed.
	Widget string
	// Key is the snapshot key that was missing or unparseable.
	Key string
	// Value is the offending value. Empty when the key was missing.
	Value string
	// Err is the underlying parse error, nil when the key was missing.
	Err error
}

func (e *ObserverDataError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("observer snapshot for widget %q is missing key %q", e.Widget, e.Key)
	}
	return fmt.Sprintf("observer snapshot for widget %q has unparseable %q value %q: %v", e.Widget, e.Key, e.Value, e.Err)
}

func (e *ObserverDataError) Unwrap() error {
	return e.Err
}

// DuplicateNameError reports an attempt to add a widget to a tree that
// already holds a widget with the same name. Names route Change events, so
// they must be unique within a tree.
type DuplicateNameError struct {
	// Name is the widget name already present in the tree.
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("widget name %q is already used in this tree", e.Name)
}

// DecodeError reports a failure to decode an asset file.
type DecodeError struct {
	// Path is the asset path that failed to decode.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode asset %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *QuarkError)
}
