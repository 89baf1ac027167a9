package render

import (
	"bytes"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"html/template"
	"strings"
)

// MarkdownRenderer turns the editable copy in site.yaml (blog intro, banner
// text) into HTML. Article bodies are HTML already and never pass through it.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.Typographer,
		),
		// copy comes from the site owner's config, not from visitors
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &MarkdownRenderer{md: md}
}

func (r *MarkdownRenderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderString renders src for direct use in a template; blank input gives "".
func (r *MarkdownRenderer) RenderString(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	out, err := r.Render([]byte(src))
	if err != nil {
		return "", err
	}
	return template.HTML(bytes.TrimSpace(out)), nil
}
