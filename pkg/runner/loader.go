package runner

import (
	"context"

	"github.com/yaklabco/gocsslint/pkg/fsutil"
)

// Loader reads the full text of a file.
type Loader interface {
	Load(ctx context.Context, path string) (string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (string, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// FileLoader reads files from disk as UTF-8 text.
type FileLoader struct{}

// Load reads path, replacing invalid UTF-8 sequences.
func (FileLoader) Load(ctx context.Context, path string) (string, error) {
	return fsutil.ReadText(ctx, path)
}
