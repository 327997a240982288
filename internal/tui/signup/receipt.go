package signup

import (
	"bytes"
	"encoding/json"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/greenflowhq/greenflow/internal/payment"
	"github.com/greenflowhq/greenflow/internal/tui/theme"
)

// renderReceipt pretty-prints the settled receipt as highlighted JSON for
// the success screen.
func renderReceipt(r payment.Receipt) string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return r.Reference
	}
	return highlightJSON(string(data))
}

// highlightJSON applies syntax highlighting with ANSI color codes for
// terminal display. Falls back to the raw text when anything goes wrong.
func highlightJSON(source string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		return source
	}

	baseStyle := styles.Get("monokai")
	if baseStyle == nil {
		baseStyle = styles.Fallback
	}

	// Transform token backgrounds to match the modal surface so the block
	// doesn't clash with the Catppuccin palette.
	bgColour := chroma.MustParseColour(theme.Current().BgSurface0)
	style, err := baseStyle.Builder().Transform(func(entry chroma.StyleEntry) chroma.StyleEntry {
		entry.Background = bgColour
		return entry
	}).Build()
	if err != nil {
		style = baseStyle
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}

	return strings.TrimRight(buf.String(), "\n")
}
