// Package render converts markdown post bodies to HTML with syntax
// highlighting and stable heading anchors.
package render

import (
	"fmt"
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	md_html "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rs/zerolog"
)

var renderLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	renderLogger = l
}

// Renderer turns markdown into HTML. Heading ids are the configured prefix
// plus the auto-generated slug of the heading text, so deep links stay
// stable across renders of the same content.
//
// The output is raw HTML meant for direct injection into a page. No
// sanitization is applied; the corpus is developer-authored and trusted.
type Renderer struct {
	headingIDPrefix string
	syntaxTheme     string
}

func New(headingIDPrefix, syntaxTheme string) *Renderer {
	return &Renderer{
		headingIDPrefix: headingIDPrefix,
		syntaxTheme:     syntaxTheme,
	}
}

func (r *Renderer) Render(md []byte) []byte {
	opts := md_html.RendererOptions{
		Flags:           md_html.CommonFlags | md_html.HrefTargetBlank,
		HeadingIDPrefix: r.headingIDPrefix,
		RenderNodeHook: func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
			if code, ok := node.(*ast.CodeBlock); ok && entering {
				var lang string
				if info := code.Info; info != nil {
					lang = string(info)
				}
				highlighted := HighlightCode(string(code.Literal), lang, r.syntaxTheme)
				fmt.Fprintf(w, "<div class=\"highlight\">%s</div>", highlighted)
				return ast.GoToNext, true
			}

			return ast.GoToNext, false
		},
	}

	// Parsers are single use, so a fresh one is built per render.
	p := parser.NewWithExtensions(
		parser.Tables | parser.FencedCode | parser.Autolink | parser.Strikethrough |
			parser.SpaceHeadings | parser.HeadingIDs | parser.AutoHeadingIDs |
			parser.Footnotes | parser.OrderedListStart,
	)

	doc := p.Parse(markdown.NormalizeNewlines(md))
	return markdown.Render(doc, md_html.NewRenderer(opts))
}
