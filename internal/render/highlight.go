package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/AljazOblonsek/portfolio/internal/theme"
)

// HighlightCode highlights a fenced code block with chroma, emitting HTML
// with CSS classes for tokens. Unrecognized language tags fall back to the
// plaintext lexer instead of failing.
func HighlightCode(code, language, highlightTheme string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		renderLogger.Warn().Err(err).Str("language", language).Msg("Tokenising code block failed")
		return code
	}

	var buf strings.Builder
	style := styles.Get(highlightTheme)
	formatter := theme.GetFormatter()
	if err := formatter.Format(&buf, style, iterator); err != nil {
		renderLogger.Warn().Err(err).Str("language", language).Msg("Formatting code block failed")
		return code
	}

	return buf.String()
}
