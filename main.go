package main

import (
	"embed"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/AljazOblonsek/portfolio/internal/config"
	"github.com/AljazOblonsek/portfolio/internal/logger"
	"github.com/AljazOblonsek/portfolio/internal/render"
	"github.com/AljazOblonsek/portfolio/internal/repository"
	"github.com/AljazOblonsek/portfolio/internal/routes"
)

//go:embed static/* templates/*
var content embed.FS

type app struct {
	log       zerolog.Logger
	repo      repository.PostRepository
	templates map[string]*template.Template
}

func newApp(l zerolog.Logger) (*app, error) {
	cfg := config.AppConfig

	renderer := render.New(cfg.Content.HeadingAnchorPrefix, cfg.Theme.Syntax)

	var repo repository.PostRepository
	switch cfg.Storage.Backend {
	case "s3":
		s3repo, err := repository.NewS3PostRepository(
			os.Getenv("S3_ACCESS_KEY_ID"),
			os.Getenv("S3_SECRET_ACCESS_KEY"),
			cfg.Storage.S3,
			cfg.Site.BaseURL,
			renderer,
		)
		if err != nil {
			return nil, err
		}
		repo = s3repo
	case "fs":
		repo = repository.NewFSPostRepository(cfg.Content.PostsDir, cfg.Site.BaseURL, renderer)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &app{
		log:       l,
		repo:      repo,
		templates: templates,
	}, nil
}

func parseTemplates() (map[string]*template.Template, error) {
	pages := []string{
		config.TemplateIndex,
		config.TemplateBlog,
		config.TemplatePost,
		config.TemplateNotFound,
		config.TemplateError,
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(content,
			config.TemplatesLocalDir+"/"+config.TemplateLayout,
			config.TemplatesLocalDir+"/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		templates[page] = t
	}
	return templates, nil
}

func (a *app) routes() http.Handler {
	mux := http.NewServeMux()

	static, _ := fs.Sub(content, config.StaticLocalDir)
	mux.Handle(config.StaticUrlPath, http.StripPrefix(config.StaticUrlPath, http.FileServer(http.FS(static))))

	mux.HandleFunc("GET "+routes.RobotsPath, a.serveRobots)
	mux.HandleFunc("GET "+routes.SyntaxCSSPath, a.serveSyntaxCSS)
	mux.HandleFunc("GET "+routes.BlogPath, a.serveBlogIndex)
	mux.HandleFunc("GET "+routes.BlogPostPath, a.serveBlogPost)
	mux.HandleFunc("GET /{$}", a.serveIndex)

	return withRequestID(a.log, withCompression(mux))
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file loaded")
	}

	l := logger.New("info")
	config.SetLogger(l)

	if err := config.LoadConfig(*configPath); err != nil {
		l.Fatal().Err(err).Msg("Error loading configuration")
	}

	l = logger.New(config.AppConfig.Logging.Level)
	config.SetLogger(l)
	repository.SetLogger(l)
	render.SetLogger(l)

	a, err := newApp(l)
	if err != nil {
		l.Fatal().Err(err).Msg("Error initializing application")
	}

	// The backing store being unreadable is a deployment defect, not a
	// transient condition. Fail fast instead of limping along.
	if _, err := a.repo.ListSummaries(); err != nil {
		l.Fatal().Err(err).Msg("Posts store unavailable")
	}

	addr := config.AppConfig.Server.Host + ":" + config.AppConfig.Server.Port
	l.Info().Str("addr", addr).Msg("Starting server")
	if err := http.ListenAndServe(addr, a.routes()); err != nil {
		l.Fatal().Err(err).Msg("Server stopped")
	}
}
