package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"implantsite/internal/domain/content"
	"implantsite/internal/domain/site"
	"io/fs"
	"os"
	"strings"
	"time"
)

//go:embed templates/*.tmpl
var defaultTheme embed.FS

var requiredTemplates = []string{
	"layout.tmpl",
	"post.tmpl",
	"list.tmpl",
	"404.tmpl",
}

type TemplateRenderer struct {
	tpl *template.Template
}

// NewTemplateRenderer loads *.tmpl from themeDir, or the built-in theme when
// themeDir is empty.
func NewTemplateRenderer(themeDir, basePath string) (*TemplateRenderer, error) {
	var fsys fs.FS
	if themeDir == "" {
		sub, err := fs.Sub(defaultTheme, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(themeDir)
	}
	return NewTemplateRendererFS(fsys, basePath)
}

func NewTemplateRendererFS(fsys fs.FS, basePath string) (*TemplateRenderer, error) {
	if err := CheckThemeTemplates(fsys); err != nil {
		return nil, err
	}
	tpl, err := template.New("").Funcs(templateFuncs(basePath)).ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{tpl: tpl}, nil
}

func templateFuncs(basePath string) template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time, layout string) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(layout)
		},
		"nowYear": func() int {
			return time.Now().Year()
		},
		"postURL": func(a content.Article) string {
			return site.PostURL(basePath, a.Slug)
		},
		"blogURL": func() string {
			return site.BlogURL(basePath)
		},
		"url": func(elems ...string) string {
			return site.JoinURL(basePath, elems...)
		},
		"schema": schemaMarkup,
	}
}

// schemaMarkup emits the sheet's JSON-LD, which is trusted site content and
// comes either as a full <script> element or as bare JSON.
func schemaMarkup(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "<") {
		return template.HTML(s)
	}
	return template.HTML(`<script type="application/ld+json">` + s + `</script>`)
}

func (r *TemplateRenderer) RenderPost(ctx context.Context, page PostPage) ([]byte, error) {
	return r.exec("post.tmpl", page)
}

func (r *TemplateRenderer) RenderList(ctx context.Context, page ListPage) ([]byte, error) {
	return r.exec("list.tmpl", page)
}

func (r *TemplateRenderer) RenderNotFound(ctx context.Context, page NotFoundPage) ([]byte, error) {
	return r.exec("404.tmpl", page)
}

func (r *TemplateRenderer) exec(name string, data interface{}) ([]byte, error) {
	t := r.tpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func CheckThemeTemplates(fsys fs.FS) error {
	for _, name := range requiredTemplates {
		if _, err := fs.Stat(fsys, name); err != nil {
			return fmt.Errorf("missing template: %s", name)
		}
	}
	return nil
}
