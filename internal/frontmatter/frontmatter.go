// Package frontmatter splits post documents into their YAML metadata block
// and the markdown body that follows it.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gomarkdown/markdown"
	"gopkg.in/yaml.v3"
)

// Delimiter bounds the metadata block at the top of a document.
const Delimiter = "---"

// BaseURLPlaceholder is the literal token post authors embed in bodies
// wherever the configured site base URL should appear.
const BaseURLPlaceholder = "{{BASE_URL}}"

// ErrMalformedDocument indicates a missing or unterminated front matter block.
var ErrMalformedDocument = errors.New("malformed front matter document")

// Meta holds the fields a post may declare in its front matter. Absent
// fields stay zero valued; callers validate presence where they need to.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	CoverPath   string `yaml:"coverPath"`
	Date        string `yaml:"date"`

	// Authors sometimes declare this, but it is never trusted: the
	// repository always recomputes it from the body.
	ReadTimeInMinutes string `yaml:"readTimeInMinutes"`
}

// Parse splits doc into its metadata and the body following the closing
// delimiter. The body is returned verbatim (minus the delimiter lines and
// their trailing newline).
func Parse(doc []byte) (*Meta, []byte, error) {
	doc = markdown.NormalizeNewlines(doc)
	doc = bytes.TrimLeft(doc, "\n \t\r")

	open := []byte(Delimiter + "\n")
	if !bytes.HasPrefix(doc, open) {
		return nil, nil, fmt.Errorf("%w: missing opening delimiter", ErrMalformedDocument)
	}
	rest := doc[len(open):]

	end := bytes.Index(rest, []byte("\n"+Delimiter))
	if end == -1 {
		return nil, nil, fmt.Errorf("%w: missing closing delimiter", ErrMalformedDocument)
	}

	block := rest[:end]
	body := rest[end+1+len(Delimiter):]
	body = bytes.TrimPrefix(body, []byte("\n"))

	meta := &Meta{}
	if err := yaml.Unmarshal(block, meta); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return meta, body, nil
}

// ReplaceBaseURL substitutes every base-URL placeholder token in body with
// baseURL. This is a literal find-and-replace, not templating.
func ReplaceBaseURL(body []byte, baseURL string) []byte {
	return bytes.ReplaceAll(body, []byte(BaseURLPlaceholder), []byte(baseURL))
}
