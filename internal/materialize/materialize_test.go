package materialize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hlop3z/tabula/internal/tberr"
)

func TestWriteCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()

	files := []File{
		{Path: filepath.Join(dir, "models", "blog", "post.go"), Content: "package blog\n"},
		{Path: filepath.Join(dir, "migrations", "20240315103000_create_post.sql"), Content: "-- migrate:up\n"},
	}
	if err := Write(files); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, f := range files {
		got, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatalf("read %s: %v", f.Path, err)
		}
		if string(got) != f.Content {
			t.Errorf("content of %s = %q, want %q", f.Path, got, f.Content)
		}
	}
}

func TestWriteFailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()

	// A file where a directory is needed makes MkdirAll fail.
	blocker := filepath.Join(dir, "models")
	if err := os.WriteFile(blocker, []byte("x"), FilePerm); err != nil {
		t.Fatal(err)
	}

	err := Write([]File{{Path: filepath.Join(blocker, "post.go"), Content: "package models\n"}})
	if !tberr.Is(err, tberr.ErrWrite) {
		t.Fatalf("Write = %v, want %s", err, tberr.ErrWrite)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabula.yaml")

	if Exists(path) {
		t.Error("Exists = true before write")
	}
	if err := os.WriteFile(path, []byte("dialect: postgres\n"), FilePerm); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists = false after write")
	}
}
