package sift

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TableHeaderColor tcell.Color
	StatusTextColor  tcell.Color
	WarningColor     tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,
	StatusTextColor:  tcell.ColorSlateGray,
	WarningColor:     tcell.ColorOrange,
}

// borderWithFocusColor draws a border whose color follows the focus state.
func borderWithFocusColor(box *tview.Box) {
	box.SetBorder(true)
	box.SetBorderColor(Style.BlurBorderColor)
	box.SetFocusFunc(func() {
		box.SetBorderColor(Style.FocusedBorderColor)
	})
	box.SetBlurFunc(func() {
		box.SetBorderColor(Style.BlurBorderColor)
	})
}
