package scanner

import (
	"path"
	"strings"
)

// NoExtension is the category key for files whose name has no dot suffix.
const NoExtension = "no_extension"

// FileEntry describes one file discovered during a categorization pass.
// Entries are created fresh on every pass and never mutated.
type FileEntry struct {
	Name string // base file name
	Path string // full path composed from the scan root
	Size int64  // byte length at scan time
}

// CategoryMap groups discovered files by extension key. Within a category
// entries keep insertion order: files of a directory come before files of
// its subdirectories, subdirectories in traversal order.
type CategoryMap map[string][]FileEntry

// ExtensionKey returns the category key for a file name: the lower-cased
// extension including the leading dot, or NoExtension for names without a
// dot suffix. Dot files like ".gitignore" count as having no extension.
func ExtensionKey(name string) string {
	ext := path.Ext(name)
	if ext == "" || ext == name {
		return NoExtension
	}
	return strings.ToLower(ext)
}
