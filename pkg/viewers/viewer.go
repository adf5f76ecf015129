package viewers

import (
	"errors"
	"fmt"
	"os"

	"github.com/filesift/filesift/pkg/files"
	"github.com/rivo/tview"
)

// Viewer renders the content of a single file into a tview primitive.
type Viewer interface {
	// SetContent displays data read from the named file.
	SetContent(name string, data []byte)
	// ShowError displays an operator-visible failure message.
	ShowError(text string)
	Main() tview.Primitive
}

// ReadFailure classifies why a file's content could not be shown.
type ReadFailure int

const (
	ReadFailureNone ReadFailure = iota
	ReadFailureIsDirectory
	ReadFailurePermission
	ReadFailureOther
)

// ClassifyReadError buckets a read error for reporting.
func ClassifyReadError(err error) ReadFailure {
	switch {
	case err == nil:
		return ReadFailureNone
	case errors.Is(err, files.ErrIsDirectory):
		return ReadFailureIsDirectory
	case os.IsPermission(err):
		return ReadFailurePermission
	default:
		return ReadFailureOther
	}
}

// ReadErrorMessage renders a read failure as a message for the operator.
func ReadErrorMessage(path string, err error) string {
	switch ClassifyReadError(err) {
	case ReadFailureNone:
		return ""
	case ReadFailureIsDirectory:
		return fmt.Sprintf("%s is a directory, not a file", path)
	case ReadFailurePermission:
		return fmt.Sprintf("permission denied reading %s", path)
	default:
		return fmt.Sprintf("could not read %s: %v", path, err)
	}
}
