// Package theme handles syntax highlighting themes and CSS generation.
package theme

import (
	"html/template"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/AljazOblonsek/portfolio/internal/cache"
)

func GetSyntaxThemes() []string {
	styleNames := styles.Names()
	slices.Sort(styleNames)
	return styleNames
}

func GetFormatter() *html.Formatter {
	formatter := html.New(
		html.WithClasses(true),
		html.TabWidth(4),
		html.WrapLongLines(true),
	)
	return formatter
}

func GenerateSyntaxCSS(theme string) template.CSS {
	if css, ok := cache.GetSyntaxCSS(theme); ok {
		return css
	}

	var buf strings.Builder
	formatter := GetFormatter()
	style := styles.Get(theme)

	bg := style.Get(chroma.Background)
	if !bg.Colour.IsSet() {
		// Calculate the color of highlighted text given the background color
		// for when the Chroma theme doesn't supply a default
		luminance := (0.299*float64(bg.Background.Red()) +
			0.587*float64(bg.Background.Green()) +
			0.114*float64(bg.Background.Blue())) / 255
		if luminance > 0.5 {
			buf.WriteString(".chroma { color: #181818; }\n")
		}
	}

	formatter.WriteCSS(&buf, style)
	css := template.CSS(buf.String())
	cache.SetSyntaxCSS(theme, css)
	return css
}
