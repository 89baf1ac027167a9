package app

import (
	"implantsite/internal/domain/content"
	"implantsite/internal/domain/site"
	"path/filepath"
)

type RouteBuilder struct {
	Library *Library
}

func (rb *RouteBuilder) BuildPostRoutes(articles []content.Article) []site.Route {
	var routes []site.Route
	for _, a := range articles {
		routes = append(routes, site.Route{
			Kind:    site.RoutePost,
			Slug:    a.Slug,
			OutPath: filepath.Join("blog", a.Slug, "index.html"),
		})
	}
	return routes
}

// BuildAll lists every output page of the blog for the current snapshot.
// Drafts and scheduled posts get no page of their own.
func (rb *RouteBuilder) BuildAll() ([]site.Route, error) {
	arts, err := rb.Library.All()
	if err != nil {
		return nil, err
	}
	routes := []site.Route{
		{Kind: site.RouteBlogIndex, Page: 1, OutPath: filepath.Join("blog", "index.html")},
	}
	routes = append(routes, rb.BuildPostRoutes(arts)...)
	routes = append(routes, site.Route{Kind: site.RouteNotFound, OutPath: "404.html"})
	return routes, nil
}
