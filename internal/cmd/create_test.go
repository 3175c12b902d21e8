package cmd

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dendrascience/djzip/djzip"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func readEntries(t *testing.T, raw []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(data)
	}
	return entries
}

func TestArchivePaths_Tree(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "data")
	writeTree(t, src, map[string]string{
		"a.txt":      "alpha",
		"sub/b.json": `{"beta":2}`,
		"sub/deep/c": "gamma",
		"z-last.log": "omega",
	})

	var buf bytes.Buffer
	zw := djzip.NewWriter(&buf)
	count, err := archivePaths(zw, []string{src}, djzip.Default, false)
	if err != nil {
		t.Fatalf("archivePaths() error = %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if count != 4 {
		t.Errorf("archived %d entries, want 4", count)
	}

	got := readEntries(t, buf.Bytes())
	want := map[string]string{
		"data/a.txt":      "alpha",
		"data/sub/b.json": `{"beta":2}`,
		"data/sub/deep/c": "gamma",
		"data/z-last.log": "omega",
	}
	if len(got) != len(want) {
		t.Fatalf("archive holds %d entries, want %d: %v", len(got), len(want), got)
	}
	for name, content := range want {
		if got[name] != content {
			t.Errorf("entry %q = %q, want %q", name, got[name], content)
		}
	}
}

func TestArchivePaths_EntryOrderIsLexical(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "tree")
	writeTree(t, src, map[string]string{
		"b":   "2",
		"a":   "1",
		"c/x": "3",
	})

	var buf bytes.Buffer
	zw := djzip.NewWriter(&buf)
	if _, err := archivePaths(zw, []string{src}, djzip.Store, false); err != nil {
		t.Fatalf("archivePaths() error = %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	want := []string{"tree/a", "tree/b", "tree/c/x"}
	for i, f := range zr.File {
		if f.Name != want[i] {
			t.Errorf("entry %d = %q, want %q", i, f.Name, want[i])
		}
	}
}

func TestArchivePaths_SingleFileUsesBaseName(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "standalone.txt")
	if err := os.WriteFile(path, []byte("on its own"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var buf bytes.Buffer
	zw := djzip.NewWriter(&buf)
	count, err := archivePaths(zw, []string{path}, djzip.Store, false)
	if err != nil {
		t.Fatalf("archivePaths() error = %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if count != 1 {
		t.Errorf("archived %d entries, want 1", count)
	}

	got := readEntries(t, buf.Bytes())
	if got["standalone.txt"] != "on its own" {
		t.Errorf("entries = %v, want standalone.txt only", got)
	}
}

func TestArchivePaths_MissingPath(t *testing.T) {
	var buf bytes.Buffer
	zw := djzip.NewWriter(&buf)
	_, err := archivePaths(zw, []string{filepath.Join(t.TempDir(), "nope")}, djzip.Store, false)
	if err == nil {
		t.Fatal("archivePaths() succeeded on a missing path")
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestParseLevelFlagValues(t *testing.T) {
	// Every value the create command documents must parse.
	for _, name := range []string{"store", "fast", "default", "best"} {
		if _, err := djzip.ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", name, err)
		}
	}
}
