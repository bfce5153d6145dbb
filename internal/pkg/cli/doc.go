// Package cli adapts application handlers to cobra commands.
//
// A Handler receives a Request and returns a response payload or an error.
// The package writes the JSON envelope to stdout and turns the outcome into a
// process exit code.
package cli
