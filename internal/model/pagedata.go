package model

import (
	"net/http"
	"time"

	"github.com/yogachanthat/site/internal/config"
)

// PageData carries the fields every rendered page needs.
type PageData struct {
	SiteName        string
	SiteTagline     string
	SiteDescription string
	SiteKeywords    []string

	PageURL string
	Year    int

	// SignedIn reports whether the request carries an admin session.
	SignedIn bool
}

func NewPageData(r *http.Request) *PageData {
	return &PageData{
		SiteName:        config.AppConfig.Site.Name,
		SiteTagline:     config.AppConfig.Site.Tagline,
		SiteDescription: config.AppConfig.Site.Description,
		SiteKeywords:    config.AppConfig.Meta.Keywords,
		PageURL:         r.URL.Path,
		Year:            time.Now().Year(),
	}
}
