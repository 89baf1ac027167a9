package app

import (
	"fmt"
	"html/template"
	"implantsite/internal/domain/config"
	"implantsite/internal/markup"
	"implantsite/internal/render"
	"time"
)

// Pages assembles blog view models from a Library.
type Pages struct {
	Library *Library
	Site    render.SiteView
	Blog    config.BlogConfig

	cta   render.CTA
	intro template.HTML
}

// NewPages renders the configured markdown copy once up front.
func NewPages(cfg config.Config, lib *Library, md *render.MarkdownRenderer) (*Pages, error) {
	body, err := md.RenderString(cfg.Blog.CTA.BodyMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render blog.cta.body: %w", err)
	}
	intro, err := md.RenderString(cfg.Blog.IntroMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render blog.intro: %w", err)
	}
	return &Pages{
		Library: lib,
		Site:    render.NewSiteView(cfg),
		Blog:    cfg.Blog,
		cta: render.CTA{
			Eyebrow:     cfg.Blog.CTA.Eyebrow,
			Heading:     cfg.Blog.CTA.Heading,
			Body:        body,
			ButtonLabel: cfg.Blog.CTA.ButtonLabel,
			ButtonURL:   cfg.Blog.CTA.ButtonURL,
		},
		intro: intro,
	}, nil
}

// Post builds the detail view for slug. Unknown slugs return
// errors.ErrNotFound from the Library.
func (p *Pages) Post(slug string) (render.PostPage, error) {
	a, err := p.Library.Get(slug)
	if err != nil {
		return render.PostPage{}, err
	}
	rel, err := p.Library.Related(a, p.Blog.RelatedLimit)
	if err != nil {
		return render.PostPage{}, fmt.Errorf("related for %q: %w", slug, err)
	}
	latest, err := p.Library.Latest(p.Blog.LatestCount)
	if err != nil {
		return render.PostPage{}, fmt.Errorf("latest: %w", err)
	}

	before, after := markup.SplitAfterFirstH2(a.Body)
	return render.PostPage{
		Site:           p.Site,
		Article:        a,
		Before:         template.HTML(before),
		After:          template.HTML(after),
		CTA:            p.cta,
		Related:        rel,
		FurtherReading: p.Library.FurtherReading(a.Slug, p.Blog.FurtherReadingCount),
		Latest:         latest,
		IsDraft:        a.Draft,
		PageTitle:      a.SEOTitle(),
	}, nil
}

// List is the blog index, newest first.
func (p *Pages) List(now time.Time) (render.ListPage, error) {
	items, err := p.Library.Newest()
	if err != nil {
		return render.ListPage{}, err
	}
	latest := items
	if len(latest) > p.Blog.LatestCount {
		latest = latest[:p.Blog.LatestCount]
	}
	return render.ListPage{
		Site:      p.Site,
		PageTitle: "Blog",
		Intro:     p.intro,
		Items:     items,
		Latest:    latest,
		Generated: now,
	}, nil
}

func (p *Pages) NotFound(path string) (render.NotFoundPage, error) {
	latest, err := p.Library.Latest(p.Blog.LatestCount)
	if err != nil {
		return render.NotFoundPage{}, fmt.Errorf("latest: %w", err)
	}
	return render.NotFoundPage{
		Site:   p.Site,
		Path:   path,
		Latest: latest,
	}, nil
}
