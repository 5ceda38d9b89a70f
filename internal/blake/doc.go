// Package blake selects and drives the BLAKE hash primitives used by the
// CLI.
//
// Contents
//
//   - Resolve maps a digest size in bits to one of the four supported
//     variants (224, 256, 384, 512)
//   - Hasher binds a variant and a 4-word salt and hashes byte content to
//     its canonical hex digest
//   - FormatWords renders digest words as zero-padded lowercase hex
//
// # Notes
//
// The compression function itself comes from github.com/dchest/blake256 and
// github.com/dchest/blake512; this package only packs the salt, feeds the
// message and formats the output words.
package blake
