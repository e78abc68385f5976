// Package cli wires the casegrid command tree: flags and environment
// variables become an app.Config, and validation failures surface as an
// ExitError carrying the process exit code.
package cli
