// Package manifest parses saved checksum manifests and verifies the files
// they name.
//
// A manifest is a text file of lines "<digest> *<path>", the format the
// print mode emits. The Verifier re-hashes each referenced file with the
// run's algorithm and salt and reports "OK" or "FAILED" per line; a
// mismatch is a verdict, not an error, and verification continues.
// Malformed lines and unreadable files abort the run.
package manifest
