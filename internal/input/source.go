package input

import (
	"io"
	"os"
)

// StdinPath is the argument that names standard input.
const StdinPath = "-"

// Item is one unit of work: a path and its fully read content.
type Item struct {
	Path string
	Data []byte
}

// Source reads files and standard input for the CLI. Stdin may be
// injected for tests; when nil, os.Stdin is used.
type Source struct {
	Stdin io.Reader
}

// Each yields one Item per path, in argument order. An empty path list
// reads standard input once under the path "-". The first read error
// stops iteration and is returned; remaining paths are not touched.
func (s *Source) Each(paths []string, fn func(Item) error) error {
	if len(paths) == 0 {
		paths = []string{StdinPath}
	}
	for _, p := range paths {
		data, err := s.Read(p)
		if err != nil {
			return err
		}
		if err := fn(Item{Path: p, Data: data}); err != nil {
			return err
		}
	}
	return nil
}

// Read materializes the content at path, honoring the "-" sentinel.
func (s *Source) Read(path string) ([]byte, error) {
	if path == StdinPath {
		in := s.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.ReadAll(in)
	}
	return os.ReadFile(path)
}
