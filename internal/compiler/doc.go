// Package compiler turns a case model into an executable activity tree.
//
// The walk is depth first and single threaded. Every element kind has one
// Handler, picked from a fixed table. A handler builds its activity with
// the shared tree building steps, then attaches control rules, then
// listeners, and finally walks its own children when it has any. A finished
// activity is attached to its parent; a failed one is discarded together
// with the ids it registered. The first error aborts the pass and no tree is
// returned.
package compiler
