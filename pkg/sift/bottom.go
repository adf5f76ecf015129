package sift

import (
	"fmt"
	"strings"

	"github.com/filesift/filesift/pkg/fsutils"
	"github.com/filesift/filesift/pkg/scanner"
	"github.com/rivo/tview"
)

// bottom is the one-line status bar under the menus.
type bottom struct {
	*tview.TextView
	s *Session
}

func newBottom(s *Session) *bottom {
	b := &bottom{
		s: s,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetTextColor(Style.StatusTextColor),
	}
	b.render()
	return b
}

func (b *bottom) render() {
	var sb strings.Builder

	sb.WriteString(b.s.store.RootTitle())
	sb.WriteString(" ┊ ")
	sb.WriteString(b.s.store.RootURL().Path)
	if b.s.fullScan {
		sb.WriteString(" ┊ full scan")
	} else {
		sb.WriteString(" ┊ top level only")
	}

	count, size := scanner.Totals(b.s.categories)
	sb.WriteString(" ┊ ")
	sb.WriteString(b.s.printer.Sprintf("%d files", count))
	sb.WriteString(" ┊ ")
	sb.WriteString(fsutils.ShortSize(size))

	if n := len(b.s.warnings); n > 0 {
		sb.WriteString(fmt.Sprintf(" ┊ [#%06x]", Style.WarningColor.Hex()))
		sb.WriteString(b.s.printer.Sprintf("%d skipped", n))
		sb.WriteString("[-]")
	}
	if b.s.status != "" {
		sb.WriteString(" ┊ ")
		sb.WriteString(tview.Escape(b.s.status))
	}

	b.SetText(sb.String())
}
