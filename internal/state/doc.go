// Package state provides the session state container shared between the
// poller and the UI.
//
// The store replaces what would otherwise be ambient UI state with explicit,
// typed mutation operations. The poller writes connectivity and the catalog;
// the query flow writes loading, transcript turns, selection, and the error
// message. The two act on disjoint fields, and a single mutex serializes
// everything.
//
// Query submissions carry a generation number issued by BeginQuery.
// CompleteQuery and FailQuery for a superseded generation are no-ops, so a
// slow response from an abandoned submission cannot overwrite newer state.
package state
