package sift

import (
	"context"

	"github.com/filesift/filesift/pkg/scanner"
	"github.com/filesift/filesift/pkg/viewers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// maxViewBytes caps how much of a file the viewer reads.
const maxViewBytes = 64 * 1024

// viewerPage hosts whichever viewer matches the file being shown.
type viewerPage struct {
	s       *Session
	flex    *tview.Flex
	title   *tview.TextView
	current viewers.Viewer
}

func newViewerPage(s *Session) *viewerPage {
	p := &viewerPage{
		s:     s,
		title: tview.NewTextView().SetTextColor(Style.TableHeaderColor),
	}
	p.flex = tview.NewFlex().SetDirection(tview.FlexRow)
	p.flex.AddItem(p.title, 1, 0, false)
	p.flex.SetInputCapture(p.inputCapture)
	borderWithFocusColor(p.flex.Box)
	return p
}

func (p *viewerPage) show(entry scanner.FileEntry) {
	viewer := viewerFor(entry)
	p.setViewer(viewer)
	p.title.SetText(entry.Path + "  (Esc to go back)")

	data, err := p.s.store.ReadFile(context.Background(), entry.Path, maxViewBytes)
	if err != nil {
		viewer.ShowError(viewers.ReadErrorMessage(entry.Path, err))
		return
	}
	viewer.SetContent(entry.Name, data)
}

func (p *viewerPage) setViewer(viewer viewers.Viewer) {
	if p.current != nil {
		p.flex.RemoveItem(p.current.Main())
	}
	p.current = viewer
	p.flex.AddItem(viewer.Main(), 0, 1, true)
}

func (p *viewerPage) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyLeft:
		p.s.showFiles(p.s.currentExt)
		return nil
	}
	if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
		p.s.showFiles(p.s.currentExt)
		return nil
	}
	return event
}

// viewerFor picks a viewer by the file's extension key.
func viewerFor(entry scanner.FileEntry) viewers.Viewer {
	key := scanner.ExtensionKey(entry.Name)
	switch {
	case viewers.IsImageExtension(key):
		imageViewer := viewers.NewImageViewer()
		imageViewer.SetPath(entry.Path)
		return imageViewer
	case key == ".json":
		return viewers.NewJSONViewer()
	default:
		return viewers.NewTextViewer()
	}
}
