package viewers

import (
	"bytes"
	"encoding/json"
)

var _ Viewer = (*JSONViewer)(nil)

// JSONViewer pretty-prints JSON before handing it to the text viewer.
type JSONViewer struct {
	TextViewer
}

func NewJSONViewer() *JSONViewer {
	textViewer := NewTextViewer()
	return &JSONViewer{
		TextViewer: *textViewer,
	}
}

func (v *JSONViewer) SetContent(name string, data []byte) {
	if pretty, err := prettyJSON(data); err == nil {
		data = pretty
	}
	v.TextViewer.SetContent(name, data)
}

func prettyJSON(input []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, input, "", "  "); err != nil {
		return input, err
	}
	return out.Bytes(), nil
}
