package files

import (
	"context"
	"errors"
	"net/url"
	"os"
)

// ErrIsDirectory is returned by Store.ReadFile when the path is a directory.
var ErrIsDirectory = errors.New("is a directory")

// Store abstracts the filesystem operations the scanner and the interactive
// session need, so that tests can substitute failing implementations.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	// ReadFile returns up to max bytes of the file content.
	// max <= 0 reads the whole file.
	ReadFile(ctx context.Context, name string, max int) ([]byte, error)
	Delete(ctx context.Context, path string) error
}
