package theme

import (
	"strings"
	"testing"

	"github.com/AljazOblonsek/portfolio/internal/cache"
)

func TestGetSyntaxThemes(t *testing.T) {
	themes := GetSyntaxThemes()
	if len(themes) == 0 {
		t.Fatal("expected at least one syntax theme")
	}

	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Fatalf("themes not sorted: %q before %q", themes[i-1], themes[i])
		}
	}
}

func TestGenerateSyntaxCSS(t *testing.T) {
	cache.ClearSyntaxCSSCache()

	css := GenerateSyntaxCSS("monokai")
	if !strings.Contains(string(css), ".chroma") {
		t.Error("expected generated CSS to contain chroma classes")
	}

	// Second call must hit the cache and return the same stylesheet.
	css2 := GenerateSyntaxCSS("monokai")
	if css != css2 {
		t.Error("expected cached CSS to be identical")
	}
}

func TestGenerateSyntaxCSSUnknownTheme(t *testing.T) {
	cache.ClearSyntaxCSSCache()

	// Unknown themes fall back to the chroma default style.
	css := GenerateSyntaxCSS("definitely-not-a-theme")
	if len(css) == 0 {
		t.Error("expected fallback CSS for unknown theme")
	}
}
