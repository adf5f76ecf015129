package viewers

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/filesift/filesift/pkg/chroma2tcell"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ Viewer = (*TextViewer)(nil)

type TextViewer struct {
	*tview.TextView
}

func NewTextViewer() *TextViewer {
	return &TextViewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
	}
}

func (v *TextViewer) SetContent(name string, data []byte) {
	text := string(data)
	if lexers.Match(name) == nil {
		v.SetDynamicColors(false)
		v.SetText(text)
		return
	}
	if colorized, err := chroma2tcell.ColorizeFile(name, text); err != nil {
		v.ShowError("Failed to format file: " + err.Error())
	} else {
		v.Clear()
		v.SetDynamicColors(true)
		v.SetTextColor(tcell.ColorDefault)
		v.SetText(colorized)
	}
}

func (v *TextViewer) ShowError(text string) {
	v.SetDynamicColors(false)
	v.SetTextColor(tcell.ColorRed)
	v.SetText(text)
}

func (v *TextViewer) Main() tview.Primitive {
	return v.TextView
}
