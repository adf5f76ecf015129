package sift

import (
	"fmt"
	"os"

	"github.com/filesift/filesift/pkg/scanner"
	"github.com/rivo/tview"
)

// Config carries the invocation parameters from main.
type Config struct {
	Root     string
	FullScan bool
	// Exclude overrides the default exclusion set when non-empty.
	Exclude []string
}

// Main runs one interactive session and returns the process exit code.
// The only abnormal exit is a failed re-scan after a mutating action;
// every other failure is reported and exits normally.
func Main(cfg Config) int {
	app := tview.NewApplication()
	session := SetupApp(app, cfg)

	if err := session.Rescan(); err != nil {
		// Initial scan failure: reported, no menu to show.
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 0
	}

	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if err := session.FatalErr(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// SetupApp wires a session into the application without running it.
func SetupApp(app *tview.Application, cfg Config) *Session {
	var options []SessionOption
	if len(cfg.Exclude) > 0 {
		options = append(options, WithExclusions(scanner.NewExclusionSet(cfg.Exclude...)))
	}
	session := NewSession(app, cfg.Root, cfg.FullScan, options...)
	app.EnableMouse(true)
	app.SetRoot(session.Root(), true)
	return session
}
