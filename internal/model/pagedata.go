package model

import (
	"net/http"

	"github.com/AljazOblonsek/portfolio/internal/config"
)

// PageData carries the site-wide fields every template needs.
type PageData struct {
	SiteName    string
	SiteTagline string
	SiteAuthor  string
	BaseURL     string

	PageURL string
}

func NewPageData(r *http.Request) *PageData {
	return &PageData{
		SiteName:    config.AppConfig.Site.Name,
		SiteTagline: config.AppConfig.Site.Tagline,
		SiteAuthor:  config.AppConfig.Site.Author,
		BaseURL:     config.AppConfig.Site.BaseURL,
		PageURL:     r.URL.Path,
	}
}
