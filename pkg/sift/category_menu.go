package sift

import (
	"github.com/filesift/filesift/pkg/fsutils"
	"github.com/filesift/filesift/pkg/scanner"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// categoryMenu lists every extension category of the last pass with its
// file count and total size.
type categoryMenu struct {
	s     *Session
	table *tview.Table
	stats []scanner.CategoryStat
}

func newCategoryMenu(s *Session) *categoryMenu {
	table := tview.NewTable()
	table.SetSelectable(true, false)
	table.SetFixed(1, 0)
	table.SetTitle("Categories")
	borderWithFocusColor(table.Box)

	selectedStyle := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorWhiteSmoke)
	table.SetSelectedStyle(selectedStyle)

	m := &categoryMenu{s: s, table: table}
	table.SetSelectedFunc(m.selected)
	table.SetInputCapture(m.inputCapture)
	return m
}

func (m *categoryMenu) update() {
	m.stats = scanner.Stats(m.s.categories)
	m.table.Clear()

	headers := []string{"Extension", "Files", "Size"}
	for col, header := range headers {
		cell := tview.NewTableCell(header)
		cell.SetTextColor(Style.TableHeaderColor)
		cell.SetSelectable(false)
		if col > 0 {
			cell.SetAlign(tview.AlignRight)
		}
		m.table.SetCell(0, col, cell)
	}

	for i, stat := range m.stats {
		row := i + 1

		nameText := stat.Extension
		if stat.Extension == scanner.NoExtension {
			nameText = "<no extension>"
		}
		nameCell := tview.NewTableCell(" " + nameText)
		nameCell.SetExpansion(1)
		nameCell.SetTextColor(GetColorByExt(stat.Extension))
		nameCell.SetReference(stat.Extension)
		m.table.SetCell(row, 0, nameCell)

		countText := m.s.printer.Sprintf("%d files", stat.Count)
		if stat.Count == 1 {
			countText = "1 file"
		}
		countCell := tview.NewTableCell(countText)
		countCell.SetAlign(tview.AlignRight)
		countCell.SetTextColor(tcell.ColorLightGray)
		m.table.SetCell(row, 1, countCell)

		m.table.SetCell(row, 2, sizeCell(stat.TotalSize, tcell.ColorLightGray))
	}

	if m.table.GetRowCount() > 1 {
		m.table.Select(1, 0)
	}
}

func (m *categoryMenu) selected(row, _ int) {
	if row < 1 || row > len(m.stats) {
		return
	}
	cell := m.table.GetCell(row, 0)
	if ext, ok := cell.Reference.(string); ok {
		m.s.showFiles(ext)
	}
}

func (m *categoryMenu) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune {
		return event
	}
	switch event.Rune() {
	case 'q':
		m.s.app.Stop()
		return nil
	case 'r':
		if err := m.s.Rescan(); err != nil {
			m.s.setStatus(err.Error())
		} else {
			m.s.setStatus("re-scanned")
		}
		return nil
	}
	return event
}

// sizeCell colors a size cell by magnitude so large categories stand out.
func sizeCell(size int64, defaultColor tcell.Color) *tview.TableCell {
	cell := tview.NewTableCell("  " + fsutils.ShortSize(size))
	cell.SetAlign(tview.AlignRight)
	switch {
	case size >= 1024*1024*1024: // GB
		cell.SetTextColor(tcell.ColorYellow)
	case size >= 1024*1024: // MB
		cell.SetTextColor(tcell.ColorLightGreen)
	case size >= 1024: // KB
		cell.SetTextColor(tcell.ColorWhiteSmoke)
	default:
		cell.SetTextColor(defaultColor)
	}
	return cell
}
