package sift

import (
	"github.com/filesift/filesift/pkg/scanner"
	"github.com/rivo/tview"
)

const (
	actionView   = "View"
	actionDelete = "Delete"
	actionCancel = "Cancel"
)

// showActions presents the per-file action menu.
func (s *Session) showActions(entry scanner.FileEntry) {
	modal := tview.NewModal().
		SetText(entry.Path).
		AddButtons([]string{actionView, actionDelete, actionCancel}).
		SetDoneFunc(func(_ int, label string) {
			s.handleAction(entry, label)
		})
	s.pages.AddPage(pageActions, modal, true, true)
	s.app.SetFocus(modal)
}

func (s *Session) handleAction(entry scanner.FileEntry, action string) {
	s.pages.RemovePage(pageActions)
	switch action {
	case actionView:
		s.showViewer(entry)
	case actionDelete:
		s.confirmDelete(entry)
	default:
		s.app.SetFocus(s.fileMenu.table)
	}
}
