package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	assert.NoError(t, err)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "docs"), ExpandHome("~/docs"))
	assert.Equal(t, "/var/log", ExpandHome("/var/log"))
	assert.Equal(t, "~user/docs", ExpandHome("~user/docs"))
}
