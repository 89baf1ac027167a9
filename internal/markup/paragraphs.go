package markup

import (
	"regexp"
	"strings"
)

const explicitBr = "<br />"

var (
	blockTag   = regexp.MustCompile(`(?i)<\s*(?:p|h[1-6]|ul|ol|table|blockquote|pre)\b`)
	breakRun   = regexp.MustCompile(`(?i)<br\s*/?>(?:\s*<br\s*/?>)+`)
	blankLines = regexp.MustCompile(`\r?\n\s*\n`)
	lineBreak  = regexp.MustCompile(`\r?\n`)
)

// EnsureParagraphs gives flat text block structure. Input that already has
// block elements is returned trimmed but otherwise untouched. Otherwise the
// first of these that yields two or more segments wins: runs of two or more
// <br> tags, then blank lines. Failing both, the whole input becomes one
// paragraph.
func EnsureParagraphs(html string) string {
	h := strings.TrimSpace(html)
	if h == "" {
		return ""
	}
	if blockTag.MatchString(h) {
		return h
	}
	if parts := splitNonEmpty(breakRun, h); len(parts) > 1 {
		return wrapParagraphs(parts)
	}
	if parts := splitNonEmpty(blankLines, h); len(parts) > 1 {
		return wrapParagraphs(parts)
	}
	return wrapParagraphs([]string{h})
}

func splitNonEmpty(re *regexp.Regexp, s string) []string {
	raw := re.Split(s, -1)
	out := raw[:0]
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func wrapParagraphs(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString("<p>")
		b.WriteString(lineBreak.ReplaceAllString(p, explicitBr))
		b.WriteString("</p>")
	}
	return b.String()
}
