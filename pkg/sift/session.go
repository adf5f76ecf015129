package sift

import (
	"context"
	"fmt"

	"github.com/filesift/filesift/pkg/files"
	"github.com/filesift/filesift/pkg/files/osfile"
	"github.com/filesift/filesift/pkg/scanner"
	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	pageCategories = "categories"
	pageFiles      = "files"
	pageViewer     = "viewer"
	pageActions    = "actions"
	pageConfirm    = "confirm"
)

type sessionOptions struct {
	store      files.Store
	exclusions scanner.ExclusionSet
}

type SessionOption func(*sessionOptions)

// WithStore substitutes the filesystem store, mostly for tests.
func WithStore(store files.Store) SessionOption {
	return func(o *sessionOptions) {
		o.store = store
	}
}

// WithExclusions replaces the default set of directory names that a full
// scan never descends into.
func WithExclusions(set scanner.ExclusionSet) SessionOption {
	return func(o *sessionOptions) {
		o.exclusions = set
	}
}

// Session owns one interactive browse/view/delete loop over a scan root.
// The CategoryMap it holds is recomputed wholesale by every Rescan; nothing
// is cached across passes.
type Session struct {
	app   *tview.Application
	store files.Store
	scan  *scanner.Scanner

	root     string
	fullScan bool

	categories scanner.CategoryMap
	warnings   []string
	status     string

	layout       *tview.Flex
	pages        *tview.Pages
	categoryMenu *categoryMenu
	fileMenu     *fileMenu
	viewer       *viewerPage
	bottom       *bottom

	currentExt string
	printer    *message.Printer

	fatalErr error
}

func NewSession(app *tview.Application, root string, fullScan bool, options ...SessionOption) *Session {
	var o sessionOptions
	for _, option := range options {
		option(&o)
	}
	if o.store == nil {
		o.store = osfile.NewStore(root)
	}

	s := &Session{
		app:      app,
		store:    o.store,
		root:     root,
		fullScan: fullScan,
		printer:  message.NewPrinter(language.English),
	}

	scannerOptions := []scanner.Option{scanner.WithWarnFunc(s.recordWarning)}
	if o.exclusions != nil {
		scannerOptions = append(scannerOptions, scanner.WithExclusions(o.exclusions))
	}
	s.scan = scanner.New(s.store, scannerOptions...)

	s.categoryMenu = newCategoryMenu(s)
	s.fileMenu = newFileMenu(s)
	s.viewer = newViewerPage(s)
	s.bottom = newBottom(s)

	s.pages = tview.NewPages()
	s.pages.AddPage(pageCategories, s.categoryMenu.table, true, true)
	s.pages.AddPage(pageFiles, s.fileMenu.table, true, false)
	s.pages.AddPage(pageViewer, s.viewer.flex, true, false)

	s.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	s.layout.AddItem(s.pages, 0, 1, true)
	s.layout.AddItem(s.bottom.TextView, 1, 0, false)

	return s
}

// Root returns the primitive the application should display.
func (s *Session) Root() tview.Primitive {
	return s.layout
}

// FatalErr reports the error that forced the session to stop, if any.
func (s *Session) FatalErr() error {
	return s.fatalErr
}

func (s *Session) recordWarning(path string, err error) {
	s.warnings = append(s.warnings, fmt.Sprintf("%s: %v", path, err))
}

// Rescan runs one full categorization pass and refreshes every menu from
// the fresh result. The previous CategoryMap is discarded wholesale.
func (s *Session) Rescan() error {
	s.warnings = nil
	result, err := s.scan.Categorize(context.Background(), s.root, s.fullScan)
	if err != nil {
		return err
	}
	s.categories = result
	s.categoryMenu.update()
	if s.currentExt != "" {
		s.fileMenu.setCategory(s.currentExt)
	}
	s.bottom.render()
	return nil
}

func (s *Session) setStatus(text string) {
	s.status = text
	s.bottom.render()
}

func (s *Session) fatal(err error) {
	s.fatalErr = err
	s.app.Stop()
}

func (s *Session) showCategories() {
	s.currentExt = ""
	s.pages.SwitchToPage(pageCategories)
	s.app.SetFocus(s.categoryMenu.table)
}

func (s *Session) showFiles(ext string) {
	s.currentExt = ext
	s.fileMenu.setCategory(ext)
	s.pages.SwitchToPage(pageFiles)
	s.app.SetFocus(s.fileMenu.table)
}

func (s *Session) showViewer(entry scanner.FileEntry) {
	s.viewer.show(entry)
	s.pages.SwitchToPage(pageViewer)
	s.app.SetFocus(s.viewer.flex)
}
