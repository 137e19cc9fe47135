// Package ui implements the terminal interface for reel.
//
// The layout is a catalog list on the left and a selected-movie panel over
// the conversation transcript on the right, with a query input line and a
// help footer underneath. Focus cycles between the catalog, the input, and
// the transcript with tab.
//
// The model never blocks the event loop: backend calls run as commands, and
// the shared state store is re-read on a half-second tick plus immediately
// after any action that mutates it. Query submissions can outlive each other;
// the store's generation counter makes stale completions no-ops, so the UI
// does not guard against overlapping submissions itself.
package ui
