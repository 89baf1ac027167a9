package markup

import (
	"regexp"
	"strings"
)

var (
	emphasisTag = regexp.MustCompile(`(?i)</?(?:strong|b)\b[^>]*>`)

	// an opening tag whose quoted attribute values may contain '>'
	openTag = regexp.MustCompile(`<[a-zA-Z](?:[^>"']|"[^"]*"|'[^']*')*>`)

	tagName   = regexp.MustCompile(`^<[a-zA-Z][^\s/>]*`)
	attrToken = regexp.MustCompile(`^\s+([^\s=/>"']+)(?:\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'>]+))?`)
)

var presentational = map[string]bool{
	"style":  true,
	"width":  true,
	"height": true,
}

// Strip removes <strong>/<b> tags (keeping their text) and the style, width
// and height attributes of every tag.
func Strip(html string) string {
	h := emphasisTag.ReplaceAllString(html, "")
	return openTag.ReplaceAllStringFunc(h, stripAttrs)
}

// stripAttrs walks the attributes of one opening tag in order and drops the
// presentational ones. Everything else, including bytes it cannot read as an
// attribute, is copied as is.
func stripAttrs(tag string) string {
	head := tagName.FindStringIndex(tag)
	if head == nil {
		return tag
	}
	var b strings.Builder
	b.Grow(len(tag))
	b.WriteString(tag[:head[1]])

	rest := tag[head[1]:]
	for rest != "" {
		if m := attrToken.FindStringSubmatchIndex(rest); m != nil {
			if !presentational[strings.ToLower(rest[m[2]:m[3]])] {
				b.WriteString(rest[:m[1]])
			}
			rest = rest[m[1]:]
			continue
		}
		n := 1
		if q := rest[0]; q == '"' || q == '\'' {
			if end := strings.IndexByte(rest[1:], q); end >= 0 {
				n = end + 2
			}
		}
		b.WriteString(rest[:n])
		rest = rest[n:]
	}
	return b.String()
}

// Normalize is Strip followed by EnsureParagraphs.
func Normalize(raw string) string {
	return EnsureParagraphs(Strip(raw))
}
