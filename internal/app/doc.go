// Package app holds the validated run configuration and wires the hasher,
// input source and output writer behind the CLI.
//
// Config is built once from the command line and never mutated; the App
// dispatches it to either the print loop or the manifest verifier.
package app
