// Package core defines the widget contract and the capability interfaces
// that keep widget state, user-driven mutation, and externally-sourced state
// in sync without coupling widgets to application logic.
//
// # Contract
//
// A Widget is a long-lived, stateful object with three operations:
//
//   - Eval renders the current state to a complete markup string. It is pure:
//     two calls without an intervening Trigger yield identical output.
//   - Trigger consumes one events.Event and reacts: an events.Update is
//     delegated to OnUpdate, an events.Change addressed to the widget's name
//     mutates local state and notifies the Listener, and anything else is
//     ignored.
//   - OnUpdate pulls a snapshot from the widget's Observer (when one is
//     wired) and overwrites the tracked fields from it.
//
// # Capabilities
//
// Listener is the outbound capability: the widget calls it when the user
// acts on the widget, so application code can react without the widget
// knowing anything about it. Observer is the inbound capability: the widget
// queries it to refresh its state from external data. A widget owns at most
// one of each; absence is a valid configuration, not an error.
//
// A Listener or Observer must not re-enter the widget that invoked it. If an
// implementation needs to reach back into application state shared with the
// widget's owner, it should hold a non-owning handle (an index or an injected
// callback), never the widget itself.
//
// # Trees
//
// Tree owns a flat set of widgets, rejects duplicate names at Add time (names
// route events.Change values, so they must be unambiguous), broadcasts
// events, and concatenates child markup.
//
// The whole package is single-threaded by design: the host runtime drives
// all widget interaction from one logical thread, so there is no locking
// here. A multi-threaded host must serialize access to the tree itself.
package core
