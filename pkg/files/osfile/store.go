package osfile

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/filesift/filesift/pkg/files"
	"github.com/filesift/filesift/pkg/fsutils"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osRemove = os.Remove
var osHostname = os.Hostname
var readHead = fsutils.ReadHead

var _ files.Store = (*Store)(nil)

// Store serves the local filesystem.
type Store struct {
	title string
	root  string
}

func NewStore(root string) *Store {
	if root == "" {
		_, _ = fmt.Fprintf(os.Stderr, "osfile store root is empty, defaulting to .\n")
		root = "."
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   s.root,
	}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) ReadFile(ctx context.Context, name string, max int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := osStat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", name, files.ErrIsDirectory)
	}
	return readHead(name, max)
}

func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osRemove(path)
}
