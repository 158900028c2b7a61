package core

import "github.com/nextcore/quark/pkg/events"

// Widget is a retained UI element: it holds its own state, renders itself to
// markup, and reacts to events delivered by the host runtime.
type Widget interface {
	// Name returns the widget's identity key. It is set once at construction
	// and never changes; events.Change values are routed by it.
	Name() string

	// Eval renders the current state as a complete markup string. It must
	// not mutate state and must be deterministic for identical state.
	Eval() string

	// Trigger consumes one event and reacts to it. Unrecognized events are
	// ignored. Only the events.Update path can fail (an observer snapshot
	// that is missing fields or fails to parse); interaction paths never
	// return an error.
	Trigger(ev events.Event) error

	// OnUpdate refreshes the widget's tracked fields from its Observer.
	// Without an observer it is a no-op. On failure the widget's prior
	// state is left unchanged and the error surfaces to the caller.
	OnUpdate() error
}
