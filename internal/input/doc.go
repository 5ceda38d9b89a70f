// Package input turns the CLI's positional arguments into an ordered
// stream of fully read (path, content) items.
//
// The path "-" names standard input, and an empty argument list is
// treated as "-" alone. Content is materialized in full before it is
// handed to the caller; a read failure stops the stream immediately.
package input
