package site

import (
	"fmt"
	"path"
	"strings"
)

type RouteKind string

const (
	RouteBlogIndex RouteKind = "blog"
	RoutePost      RouteKind = "post"
	RouteNotFound  RouteKind = "404"
)

type Route struct {
	Kind    RouteKind
	Slug    string
	Page    int
	OutPath string
}

func (r Route) String() string {
	var parts []string
	parts = append(parts, string(r.Kind))
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.Page > 0 {
		parts = append(parts, fmt.Sprintf("page=%d", r.Page))
	}
	if r.OutPath != "" {
		parts = append(parts, "out="+r.OutPath)
	}
	return strings.Join(parts, " ")
}

// PostURL is the public URL of an article under basePath.
func PostURL(basePath, slug string) string {
	return JoinURL(basePath, "blog", slug) + "/"
}

func BlogURL(basePath string) string {
	return JoinURL(basePath, "blog") + "/"
}

func JoinURL(basePath string, elems ...string) string {
	bp := strings.TrimSuffix(strings.TrimSpace(basePath), "/")
	return bp + path.Join(append([]string{"/"}, elems...)...)
}
