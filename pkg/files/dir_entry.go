package files

import (
	"os"
	"path/filepath"
	"time"
)

type DirEntryOption func(*DirEntry)

// Size sets the size reported by the entry's FileInfo.
func Size(v int64) DirEntryOption {
	return func(d *DirEntry) {
		d.size = v
	}
}

// ModTime sets the modification time reported by the entry's FileInfo.
func ModTime(v time.Time) DirEntryOption {
	return func(d *DirEntry) {
		d.modTime = v
	}
}

// InfoErr makes Info() fail with the given error, to simulate entries whose
// metadata cannot be read.
func InfoErr(err error) DirEntryOption {
	return func(d *DirEntry) {
		d.infoErr = err
	}
}

// NewDirEntry creates a synthetic directory entry for stores backed by
// something other than the local filesystem and for tests.
func NewDirEntry(name string, isDir bool, o ...DirEntryOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	for _, opt := range o {
		opt(&dirEntry)
	}
	return dirEntry
}

var _ os.DirEntry = DirEntry{}

type DirEntry struct {
	name    string
	isDir   bool
	size    int64
	modTime time.Time
	infoErr error
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }

func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (os.FileInfo, error) {
	if d.infoErr != nil {
		return nil, d.infoErr
	}
	return FileInfo{entry: d}, nil
}
