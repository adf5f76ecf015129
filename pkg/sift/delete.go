package sift

import (
	"context"
	"fmt"

	"github.com/filesift/filesift/pkg/scanner"
	"github.com/rivo/tview"
)

// confirmDelete asks before the only mutating operation this tool has.
func (s *Session) confirmDelete(entry scanner.FileEntry) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Delete %s?", entry.Path)).
		AddButtons([]string{actionDelete, actionCancel}).
		SetDoneFunc(func(_ int, label string) {
			s.handleDeleteDecision(entry, label)
		})
	s.pages.AddPage(pageConfirm, modal, true, true)
	s.app.SetFocus(modal)
}

// handleDeleteDecision applies the user's choice. Declining performs no
// filesystem action at all.
func (s *Session) handleDeleteDecision(entry scanner.FileEntry, button string) {
	s.pages.RemovePage(pageConfirm)
	if button != actionDelete {
		s.app.SetFocus(s.fileMenu.table)
		return
	}
	s.deleteEntry(entry)
}

// deleteEntry removes the file and re-scans exactly once, whether the
// removal succeeded or not, so the menus always reflect the filesystem.
func (s *Session) deleteEntry(entry scanner.FileEntry) {
	if err := s.store.Delete(context.Background(), entry.Path); err != nil {
		s.setStatus(fmt.Sprintf("delete %s: %v", entry.Path, err))
	} else {
		s.setStatus("deleted " + entry.Path)
	}
	s.rescanAfterMutation()
}

func (s *Session) rescanAfterMutation() {
	if err := s.Rescan(); err != nil {
		// The scan root itself became invalid mid-session; there is
		// nothing sensible left to show.
		s.fatal(fmt.Errorf("re-scan after delete failed: %w", err))
		return
	}
	if s.currentExt != "" && len(s.categories[s.currentExt]) == 0 {
		// The mutation emptied the category the user was browsing.
		s.showCategories()
		return
	}
	s.app.SetFocus(s.fileMenu.table)
}
