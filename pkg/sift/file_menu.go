package sift

import (
	"github.com/filesift/filesift/pkg/scanner"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// fileMenu lists the files of the selected category, sorted by name.
// Sorting happens here; the categorizer keeps insertion order.
type fileMenu struct {
	s       *Session
	table   *tview.Table
	entries []scanner.FileEntry
}

func newFileMenu(s *Session) *fileMenu {
	table := tview.NewTable()
	table.SetSelectable(true, false)
	table.SetFixed(1, 0)
	borderWithFocusColor(table.Box)

	selectedStyle := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorWhiteSmoke)
	table.SetSelectedStyle(selectedStyle)

	m := &fileMenu{s: s, table: table}
	table.SetSelectedFunc(m.selected)
	table.SetInputCapture(m.inputCapture)
	return m
}

func (m *fileMenu) setCategory(ext string) {
	m.entries = scanner.SortedByName(m.s.categories[ext])
	m.table.Clear()

	title := ext
	if ext == scanner.NoExtension {
		title = "<no extension>"
	}
	headerCell := tview.NewTableCell(title + " ┊ Enter for actions, Esc to go back")
	headerCell.SetTextColor(Style.TableHeaderColor)
	headerCell.SetSelectable(false)
	m.table.SetCell(0, 0, headerCell)
	sizeHeader := tview.NewTableCell("Size")
	sizeHeader.SetAlign(tview.AlignRight)
	sizeHeader.SetTextColor(Style.TableHeaderColor)
	sizeHeader.SetSelectable(false)
	m.table.SetCell(0, 1, sizeHeader)

	for i, entry := range m.entries {
		row := i + 1

		nameCell := tview.NewTableCell(" " + entry.Name)
		nameCell.SetExpansion(1)
		nameCell.SetTextColor(GetColorByExt(scanner.ExtensionKey(entry.Name)))
		nameCell.SetReference(entry)
		m.table.SetCell(row, 0, nameCell)

		m.table.SetCell(row, 1, sizeCell(entry.Size, tcell.ColorLightGray))
	}

	if m.table.GetRowCount() > 1 {
		m.table.Select(1, 0)
	}
}

// current returns the entry under the selection bar.
func (m *fileMenu) current() (scanner.FileEntry, bool) {
	row, _ := m.table.GetSelection()
	if row < 1 || row > len(m.entries) {
		return scanner.FileEntry{}, false
	}
	entry, ok := m.table.GetCell(row, 0).Reference.(scanner.FileEntry)
	return entry, ok
}

func (m *fileMenu) selected(row, _ int) {
	if entry, ok := m.current(); ok {
		m.s.showActions(entry)
	}
}

func (m *fileMenu) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyLeft:
		m.s.showCategories()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'v':
			if entry, ok := m.current(); ok {
				m.s.showViewer(entry)
			}
			return nil
		case 'd':
			if entry, ok := m.current(); ok {
				m.s.confirmDelete(entry)
			}
			return nil
		case 'q':
			m.s.app.Stop()
			return nil
		}
	}
	return event
}
