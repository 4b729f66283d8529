// Command new-post scaffolds a markdown post document with front matter.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AljazOblonsek/portfolio/internal/config"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func main() {
	title := flag.String("title", "", "post title (required)")
	description := flag.String("description", "", "short post summary")
	cover := flag.String("cover", "", "cover image path, e.g. /static/covers/foo.png")
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	if *title == "" {
		fmt.Println(errStyle.Render("error:"), "-title is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := config.LoadConfig(*configPath); err != nil {
		fmt.Println(errStyle.Render("error:"), err)
		os.Exit(1)
	}

	id := slugify(*title)
	path := filepath.Join(config.AppConfig.Content.PostsDir, id+config.PostExt)

	if _, err := os.Stat(path); err == nil {
		fmt.Println(errStyle.Render("error:"), "post already exists:", path)
		os.Exit(1)
	}

	var doc strings.Builder
	doc.WriteString("---\n")
	fmt.Fprintf(&doc, "title: '%s'\n", *title)
	fmt.Fprintf(&doc, "description: '%s'\n", *description)
	fmt.Fprintf(&doc, "coverPath: '%s'\n", *cover)
	fmt.Fprintf(&doc, "date: '%s'\n", time.Now().Format("2006-01-02"))
	doc.WriteString("---\n\n")

	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		fmt.Println(errStyle.Render("error:"), err)
		os.Exit(1)
	}

	fmt.Println(labelStyle.Render("Created"), valueStyle.Render(path))
	fmt.Println(labelStyle.Render("URL"), valueStyle.Render("/blog/"+id))
}

// slugify lowercases the title and collapses every run of non-alphanumeric
// characters into a single hyphen.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
