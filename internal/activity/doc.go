// Package activity defines the executable activity tree produced by the
// case compiler.
//
// An Activity owns its children as an ordered slice and points back to its
// parent without owning it. The parent is set once, by CreateChild or
// Attach, and an activity is never moved to another parent.
package activity
