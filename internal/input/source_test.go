package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blakesum/internal/input"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEach_OrderPreserved(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	b := writeFile(t, dir, "b.txt", "bravo")
	c := writeFile(t, dir, "c.txt", "charlie")

	src := &input.Source{}
	var got []string
	err := src.Each([]string{c, a, b}, func(it input.Item) error {
		got = append(got, it.Path+"="+string(it.Data))
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	want := []string{c + "=charlie", a + "=alpha", b + "=bravo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEach_EmptyPathsReadsStdin(t *testing.T) {
	src := &input.Source{Stdin: strings.NewReader("from stdin")}
	var items []input.Item
	if err := src.Each(nil, func(it input.Item) error {
		items = append(items, it)
		return nil
	}); err != nil {
		t.Fatalf("Each: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Path != input.StdinPath || string(items[0].Data) != "from stdin" {
		t.Fatalf("got (%q, %q)", items[0].Path, items[0].Data)
	}
}

func TestEach_DashSentinelAmongFiles(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "f.txt", "file content")

	src := &input.Source{Stdin: strings.NewReader("stdin content")}
	var got []string
	if err := src.Each([]string{f, "-"}, func(it input.Item) error {
		got = append(got, string(it.Data))
		return nil
	}); err != nil {
		t.Fatalf("Each: %v", err)
	}
	if got[0] != "file content" || got[1] != "stdin content" {
		t.Fatalf("got %q", got)
	}
}

func TestEach_MissingFileAbortsRun(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	missing := filepath.Join(dir, "nope.txt")
	b := writeFile(t, dir, "b.txt", "bravo")

	src := &input.Source{}
	var seen int
	err := src.Each([]string{a, missing, b}, func(it input.Item) error {
		seen++
		return nil
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if seen != 1 {
		t.Fatalf("callback ran %d times, want 1 (run aborts on first error)", seen)
	}
}
