package viewers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	termimg "github.com/blacktop/go-termimg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var _ Viewer = (*ImageViewer)(nil)

// renderTerminalImage is a seam for tests; rendering depends on the
// terminal's graphics protocol support.
var renderTerminalImage = func(path string) (string, error) {
	img, err := termimg.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = img.Close()
	}()
	return img.Render()
}

// ImageViewer shows image metadata and, where the terminal supports a
// graphics protocol, the image itself.
type ImageViewer struct {
	*tview.TextView
	path string
}

func NewImageViewer() *ImageViewer {
	return &ImageViewer{
		TextView: tview.NewTextView().
			SetDynamicColors(false).
			SetWrap(false),
	}
}

// ImageExtensions lists the extension keys routed to the image viewer.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

func IsImageExtension(ext string) bool {
	for _, imageExt := range ImageExtensions {
		if ext == imageExt {
			return true
		}
	}
	return false
}

func (v *ImageViewer) SetContent(name string, data []byte) {
	var sb strings.Builder

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		sb.WriteString(fmt.Sprintf("%s: unrecognized image data\n", name))
	} else {
		sb.WriteString(fmt.Sprintf("Format: %s\n", strings.ToUpper(format)))
		sb.WriteString(fmt.Sprintf("Width:  %d\n", cfg.Width))
		sb.WriteString(fmt.Sprintf("Height: %d\n", cfg.Height))
	}

	if v.path != "" {
		if rendered, err := renderTerminalImage(v.path); err == nil {
			sb.WriteString("\n")
			sb.WriteString(rendered)
		}
	}

	v.SetTextColor(tcell.ColorDefault)
	v.SetText(sb.String())
}

// SetPath tells the viewer where the image lives on disk so the terminal
// renderer can re-read it in full.
func (v *ImageViewer) SetPath(path string) {
	v.path = path
}

func (v *ImageViewer) ShowError(text string) {
	v.SetTextColor(tcell.ColorRed)
	v.SetText(text)
}

func (v *ImageViewer) Main() tview.Primitive {
	return v.TextView
}
