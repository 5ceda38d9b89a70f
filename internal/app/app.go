package app

import (
	"fmt"
	"io"
	"os"

	"blakesum/internal/blake"
	"blakesum/internal/input"
	"blakesum/internal/manifest"
)

// App binds a resolved algorithm and salt to the streams a run uses.
type App struct {
	cfg  Config
	hash *blake.Hasher
	src  *input.Source
	out  io.Writer
}

// New resolves cfg's algorithm and builds the app. stdin and out default
// to the process streams when nil.
func New(cfg Config, stdin io.Reader, out io.Writer) (*App, error) {
	alg, err := blake.Resolve(cfg.Bits)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		cfg:  cfg,
		hash: blake.NewHasher(alg, cfg.Salt),
		src:  &input.Source{Stdin: stdin},
		out:  out,
	}, nil
}

// Run executes the configured mode over the configured paths.
func (a *App) Run() error {
	if a.cfg.Mode == ModeCheck {
		return a.check()
	}
	return a.print()
}

// print emits one "<hex> *<path>" line per input, in argument order, each
// line written before the next input is read.
func (a *App) print() error {
	return a.src.Each(a.cfg.Paths, func(it input.Item) error {
		_, err := fmt.Fprintf(a.out, "%s *%s\n", a.hash.Sum(it.Data), it.Path)
		return err
	})
}

// check treats each input as a manifest and verifies the files it names.
func (a *App) check() error {
	v := &manifest.Verifier{Hash: a.hash, Read: a.src.Read, Out: a.out}
	return a.src.Each(a.cfg.Paths, func(it input.Item) error {
		return v.Run(it.Path, it.Data)
	})
}
