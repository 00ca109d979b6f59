// Package materialize writes rendered artifacts to disk. It is deliberately
// dumb: it creates parent directories, writes each file, and fails fast on
// the first problem. No rollback is attempted; a partially written run is an
// accepted failure mode for a generator.
package materialize

import (
	"os"
	"path/filepath"

	"github.com/hlop3z/tabula/internal/tberr"
)

const (
	// DirPerm is the mode for created directories (rwxr-xr-x).
	DirPerm = 0755
	// FilePerm is the mode for written files (rw-r--r--).
	FilePerm = 0644
)

// File pairs an output path with its rendered content.
type File struct {
	Path    string
	Content string
}

// Exists reports whether a path already exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Write writes all files in order, creating parent directories as needed.
// The first failure aborts the run; earlier files stay on disk.
func Write(files []File) error {
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.Path), DirPerm); err != nil {
			return tberr.Wrap(tberr.ErrWrite, err, "failed to create directory").
				With("path", filepath.Dir(f.Path))
		}
		if err := os.WriteFile(f.Path, []byte(f.Content), FilePerm); err != nil {
			return tberr.Wrap(tberr.ErrWrite, err, "failed to write file").
				With("path", f.Path)
		}
	}
	return nil
}
