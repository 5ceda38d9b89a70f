package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects what a run does with its arguments.
type Mode int

const (
	// ModePrint hashes each argument and prints one checksum line per file.
	ModePrint Mode = iota
	// ModeCheck reads each argument as a manifest and verifies the files
	// it names.
	ModeCheck
)

// ErrSalt marks a salt flag that is not four comma-separated non-negative
// integers.
var ErrSalt = errors.New("salt must be 4 comma-separated non-negative integers")

// Config carries everything a run needs. It is constructed once from the
// command line, validated there, and read-only afterwards.
type Config struct {
	Mode  Mode
	Bits  int
	Salt  [4]uint64
	Paths []string
}

// ParseSalt parses the -s flag value into the four salt words.
func ParseSalt(s string) ([4]uint64, error) {
	var salt [4]uint64
	parts := strings.Split(s, ",")
	if len(parts) != len(salt) {
		return salt, fmt.Errorf("%w: %q", ErrSalt, s)
	}
	for i, p := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return salt, fmt.Errorf("%w: %q", ErrSalt, s)
		}
		salt[i] = w
	}
	return salt, nil
}
