package main

import (
	"errors"
	"net/http"

	"github.com/AljazOblonsek/portfolio/internal/config"
	"github.com/AljazOblonsek/portfolio/internal/model"
	"github.com/AljazOblonsek/portfolio/internal/repository"
	"github.com/AljazOblonsek/portfolio/internal/theme"
	"github.com/AljazOblonsek/portfolio/internal/util"
)

type indexData struct {
	*model.PageData
}

type blogData struct {
	*model.PageData
	Posts []model.PostSummary
}

type postData struct {
	*model.PageData
	Post *model.PostDetail
}

func (a *app) serveIndex(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, http.StatusOK, config.TemplateIndex, indexData{
		PageData: model.NewPageData(r),
	})
}

func (a *app) serveBlogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := a.repo.ListSummaries()
	if err != nil {
		a.serveError(w, r, err)
		return
	}

	a.renderPage(w, http.StatusOK, config.TemplateBlog, blogData{
		PageData: model.NewPageData(r),
		Posts:    posts,
	})
}

func (a *app) serveBlogPost(w http.ResponseWriter, r *http.Request) {
	id := model.PostID(r.PathValue("id"))

	post, err := a.repo.GetDetail(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			a.serveNotFound(w, r)
			return
		}
		a.serveError(w, r, err)
		return
	}

	a.renderPage(w, http.StatusOK, config.TemplatePost, postData{
		PageData: model.NewPageData(r),
		Post:     post,
	})
}

func (a *app) serveNotFound(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, http.StatusNotFound, config.TemplateNotFound, indexData{
		PageData: model.NewPageData(r),
	})
}

func (a *app) serveError(w http.ResponseWriter, r *http.Request, err error) {
	a.log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	a.renderPage(w, http.StatusInternalServerError, config.TemplateError, indexData{
		PageData: model.NewPageData(r),
	})
}

func (a *app) serveSyntaxCSS(w http.ResponseWriter, r *http.Request) {
	css := []byte(theme.GenerateSyntaxCSS(config.AppConfig.Theme.Syntax))

	etag := `"` + util.ContentHash(css) + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set(config.HCType, config.CTypeCSS)
	w.Header().Set(config.HETag, etag)
	w.Header().Set(config.HCacheControl, "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(css)
}

func (a *app) serveRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(config.HCType, "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("User-agent: *\nDisallow:\n"))
}

func (a *app) renderPage(w http.ResponseWriter, status int, page string, data any) {
	t, ok := a.templates[page]
	if !ok {
		a.log.Error().Str("template", page).Msg("Unknown template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HCType, config.CTypeHTML)
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, config.TemplateLayout, data); err != nil {
		a.log.Error().Err(err).Str("template", page).Msg("Error executing template")
	}
}
