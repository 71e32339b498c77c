// Package output writes rendered sitemap documents into the output directory.
package output

import (
	"context"
	"os"
	"path/filepath"

	derrors "github.com/Uranus-Queen/fuwari/internal/errors"
	"github.com/Uranus-Queen/fuwari/internal/logfields"
	"github.com/Uranus-Queen/fuwari/internal/observability"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Document is a fully rendered file. Pages is the number of entries it
// lists and is only used for reporting.
type Document struct {
	Filename string
	Content  string
	Pages    int
}

// Writer writes documents into a single directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write creates the output directory if needed and writes each document in
// order, replacing existing files. The first failure stops the run; files
// written before it are left in place. Returns the written paths.
func (w *Writer) Write(ctx context.Context, docs ...Document) ([]string, error) {
	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return nil, derrors.OutputDirFailed(w.dir, err)
	}

	written := make([]string, 0, len(docs))
	for _, doc := range docs {
		path := filepath.Join(w.dir, doc.Filename)
		if err := os.WriteFile(path, []byte(doc.Content), filePerm); err != nil {
			return written, derrors.WriteFailed(path, err)
		}
		written = append(written, path)
		observability.InfoContext(ctx, "Document written", logfields.File(path), logfields.Pages(doc.Pages))
	}
	return written, nil
}
