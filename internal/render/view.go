package render

import (
	"html/template"
	"implantsite/internal/domain/config"
	"implantsite/internal/domain/content"
	"time"
)

type SiteView struct {
	Title       string
	Tagline     string
	Description string
	Language    string
	SiteURL     string
	BasePath    string
	// LiveReload adds the dev server's SSE client to every page.
	LiveReload bool
}

func NewSiteView(cfg config.Config) SiteView {
	return SiteView{
		Title:       cfg.Site.Title,
		Tagline:     cfg.Site.Tagline,
		Description: cfg.Site.Description,
		Language:    cfg.Site.Language,
		SiteURL:     cfg.Site.SiteURL,
		BasePath:    cfg.Build.BasePath,
	}
}

type CTA struct {
	Eyebrow     string
	Heading     string
	Body        template.HTML
	ButtonLabel string
	ButtonURL   string
}

// PostPage is an article detail view. When the body has a second section,
// Before and After hold the halves around the banner; otherwise Before holds
// the whole body and After is empty.
type PostPage struct {
	Site    SiteView
	Article content.Article
	Before  template.HTML
	After   template.HTML
	CTA     CTA

	Related        []content.Article
	FurtherReading []content.ReadingLink
	Latest         []content.Article
	IsDraft        bool
	PageTitle      string
}

// Split reports whether the banner sits between two body halves.
func (p PostPage) Split() bool {
	return p.After != ""
}

type ListPage struct {
	Site      SiteView
	PageTitle string
	Intro     template.HTML
	Items     []content.Article
	Latest    []content.Article
	Generated time.Time
}

type NotFoundPage struct {
	Site   SiteView
	Path   string
	Latest []content.Article
}
