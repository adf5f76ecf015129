package sift

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestBorderWithFocusColor(t *testing.T) {
	t.Parallel()
	box := tview.NewBox()

	borderWithFocusColor(box)
	assert.Equal(t, Style.BlurBorderColor, box.GetBorderColor())

	box.Focus(func(p tview.Primitive) {})
	assert.Equal(t, Style.FocusedBorderColor, box.GetBorderColor())

	box.Blur()
	assert.Equal(t, Style.BlurBorderColor, box.GetBorderColor())
}
