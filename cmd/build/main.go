// Command build renders the whole site to a directory for static hosting.
package main

import (
	"bytes"
	"flag"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AljazOblonsek/portfolio/internal/config"
	"github.com/AljazOblonsek/portfolio/internal/logger"
	"github.com/AljazOblonsek/portfolio/internal/model"
	"github.com/AljazOblonsek/portfolio/internal/render"
	"github.com/AljazOblonsek/portfolio/internal/repository"
	"github.com/AljazOblonsek/portfolio/internal/theme"
)

const outputPerm = 0o644

type builder struct {
	repo   repository.PostRepository
	outDir string
}

type blogData struct {
	*model.PageData
	Posts []model.PostSummary
}

type postData struct {
	*model.PageData
	Post *model.PostDetail
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	outDir := flag.String("out", "_site", "output directory")
	flag.Parse()

	l := logger.New("info")
	config.SetLogger(l)

	if err := config.LoadConfig(*configPath); err != nil {
		l.Fatal().Err(err).Msg("Error loading configuration")
	}

	l = logger.New(config.AppConfig.Logging.Level)
	config.SetLogger(l)
	repository.SetLogger(l)
	render.SetLogger(l)

	cfg := config.AppConfig
	renderer := render.New(cfg.Content.HeadingAnchorPrefix, cfg.Theme.Syntax)

	b := &builder{
		repo:   repository.NewFSPostRepository(cfg.Content.PostsDir, cfg.Site.BaseURL, renderer),
		outDir: *outDir,
	}

	if err := b.build(); err != nil {
		// Leave no half-written site behind.
		os.RemoveAll(*outDir)
		l.Fatal().Err(err).Msg("Build failed")
	}

	l.Info().Str("out", *outDir).Msg("Site built")
}

func (b *builder) build() error {
	if err := os.RemoveAll(b.outDir); err != nil {
		return err
	}
	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return err
	}

	posts, err := b.repo.ListSummaries()
	if err != nil {
		return err
	}

	pageData := func(url string) *model.PageData {
		cfg := config.AppConfig
		return &model.PageData{
			SiteName:    cfg.Site.Name,
			SiteTagline: cfg.Site.Tagline,
			SiteAuthor:  cfg.Site.Author,
			BaseURL:     cfg.Site.BaseURL,
			PageURL:     url,
		}
	}

	if err := b.writePage(config.TemplateIndex, "index.html", pageData("/")); err != nil {
		return err
	}
	if err := b.writePage(config.TemplateNotFound, "404.html", pageData("/404")); err != nil {
		return err
	}
	if err := b.writePage(config.TemplateBlog, filepath.Join("blog", "index.html"), blogData{
		PageData: pageData("/blog"),
		Posts:    posts,
	}); err != nil {
		return err
	}

	for _, summary := range posts {
		detail, err := b.repo.GetDetail(summary.ID)
		if err != nil {
			return err
		}
		out := filepath.Join("blog", string(summary.ID), "index.html")
		if err := b.writePage(config.TemplatePost, out, postData{
			PageData: pageData("/blog/" + string(summary.ID)),
			Post:     detail,
		}); err != nil {
			return err
		}
	}

	css := theme.GenerateSyntaxCSS(config.AppConfig.Theme.Syntax)
	if err := os.WriteFile(filepath.Join(b.outDir, "syntax.css"), []byte(css), outputPerm); err != nil {
		return err
	}

	return b.copyStatic()
}

func (b *builder) writePage(page, dest string, data any) error {
	t, err := template.ParseFiles(
		filepath.Join(config.TemplatesLocalDir, config.TemplateLayout),
		filepath.Join(config.TemplatesLocalDir, page),
	)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, config.TemplateLayout, data); err != nil {
		return err
	}

	out := filepath.Join(b.outDir, dest)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), outputPerm)
}

func (b *builder) copyStatic() error {
	staticFS := os.DirFS(config.StaticLocalDir)
	return fs.WalkDir(staticFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(b.outDir, config.StaticLocalDir, path)
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		data, err := fs.ReadFile(staticFS, path)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, outputPerm)
	})
}
