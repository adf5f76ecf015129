package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when the caller passes an empty name.
const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize renders text into tview color-tagged output using the given
// chroma lexer. A nil lexer falls back to the plain-text lexer.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if styleName == "" {
		styleName = DefaultStyle
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if entry.IsZero() {
			sb.WriteString(token.Value)
			continue
		}
		// Chroma colours map onto tview [#rrggbb] tags.
		sb.WriteString("[")
		sb.WriteString(entry.Colour.String())
		sb.WriteString("]")
		sb.WriteString(token.Value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name and colorizes content with it.
func ColorizeFile(fileName, content string) (string, error) {
	return Colorize(content, DefaultStyle, lexers.Match(fileName))
}
