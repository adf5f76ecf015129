package files

import (
	"os"
	"time"
)

var _ os.FileInfo = FileInfo{}

// FileInfo is the os.FileInfo view of a synthetic DirEntry.
type FileInfo struct {
	entry DirEntry
}

func (f FileInfo) Name() string       { return f.entry.name }
func (f FileInfo) Size() int64        { return f.entry.size }
func (f FileInfo) Mode() os.FileMode  { return f.entry.Type() }
func (f FileInfo) ModTime() time.Time { return f.entry.modTime }
func (f FileInfo) IsDir() bool        { return f.entry.isDir }
func (f FileInfo) Sys() any           { return nil }
