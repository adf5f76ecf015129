package files

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestNewDirEntry(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		modTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		entry := NewDirEntry("report.txt", false, Size(42), ModTime(modTime))
		assert.Equal(t, "report.txt", entry.Name())
		assert.False(t, entry.IsDir())
		assert.Equal(t, os.FileMode(0), entry.Type())

		info, err := entry.Info()
		assert.NoError(t, err)
		assert.Equal(t, "report.txt", info.Name())
		assert.Equal(t, int64(42), info.Size())
		assert.Equal(t, modTime, info.ModTime())
		assert.False(t, info.IsDir())
		assert.Equal(t, os.FileMode(0), info.Mode())
		assert.True(t, info.Sys() == nil)
	})

	t.Run("dir", func(t *testing.T) {
		entry := NewDirEntry("sub", true)
		assert.True(t, entry.IsDir())
		assert.Equal(t, os.ModeDir, entry.Type())

		info, err := entry.Info()
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.ModeDir, info.Mode())
	})

	t.Run("info_err", func(t *testing.T) {
		wantErr := errors.New("stat failed")
		entry := NewDirEntry("broken.lnk", false, InfoErr(wantErr))
		info, err := entry.Info()
		assert.IsError(t, err, wantErr)
		assert.True(t, info == nil)
	})

	t.Run("panics_on_path_in_name", func(t *testing.T) {
		assert.Panics(t, func() {
			NewDirEntry("sub/file.txt", false)
		})
	})
}
