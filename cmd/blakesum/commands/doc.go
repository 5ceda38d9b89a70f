// Package commands defines the blakesum CLI.
//
// blakesum computes salted BLAKE checksums of files or standard input,
// or, with -c, verifies a saved checksum manifest. Flags select the digest
// size in bits (-a), the 4-word salt (-s) and the mode; positional
// arguments name the inputs, with "-" for standard input.
//
// # Implementation
//
// The root command validates the flags into an immutable app.Config before
// running, so the hash loops never re-check them.
package commands
