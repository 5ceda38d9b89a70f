package manifest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"blakesum/internal/blake"
)

// separator sits between the saved digest and the path on every line.
const separator = " *"

// ErrFormat marks a line that does not split into digest and path.
var ErrFormat = errors.New("malformed checksum line")

// Entry is one parsed manifest line.
type Entry struct {
	SumHex string
	Path   string
}

// ParseLine splits a manifest line on " *". Exactly two fields are
// required; anything else fails with ErrFormat.
func ParseLine(line string) (Entry, error) {
	sum, path, ok := strings.Cut(line, separator)
	if !ok || strings.Contains(path, separator) {
		return Entry{}, fmt.Errorf("%w: %q", ErrFormat, line)
	}
	return Entry{SumHex: sum, Path: path}, nil
}

// Verifier re-hashes files named by manifest entries and writes a verdict
// per line.
type Verifier struct {
	Hash *blake.Hasher
	Read func(path string) ([]byte, error)
	Out  io.Writer
}

// Run checks every line of one manifest. name identifies the manifest in
// error messages ("-" for standard input). Verdicts go to Out as
// "<path>: OK" or "<path>: FAILED"; a FAILED verdict never stops the
// loop. A malformed line or an unreadable target aborts the whole run.
func (v *Verifier) Run(name string, text []byte) error {
	lines := strings.Split(string(text), "\n")
	for i, line := range lines {
		if line == "" && i == len(lines)-1 {
			break // trailing newline
		}
		entry, err := ParseLine(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, i+1, err)
		}
		data, err := v.Read(entry.Path)
		if err != nil {
			return err
		}
		verdict := "FAILED"
		if v.Hash.Sum(data) == entry.SumHex {
			verdict = "OK"
		}
		if _, err := fmt.Fprintf(v.Out, "%s: %s\n", entry.Path, verdict); err != nil {
			return err
		}
	}
	return nil
}
