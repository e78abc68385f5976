// Package registry provides the dynamic loading capability for class
// delegate listeners.
//
// The Registry stores mappings between the qualified type names used in case
// models (e.g., "casegrid.print.Listener") and factories producing fresh Go
// objects. Compiled class delegate listeners only keep the type name; the
// runtime asks the registry for an instance every time the listener fires.
//
// Modules register their types during application startup. After a case is
// compiled, Missing reports the referenced type names no module provides, so
// a mismatch between models and compiled code is visible before any case runs.
package registry
