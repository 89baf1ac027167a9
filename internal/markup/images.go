package markup

import (
	"golang.org/x/net/html"
	"regexp"
	"strings"
)

var bareImageURL = regexp.MustCompile(`(?i)(https?://[^\s"']+\.(?:png|jpe?g|webp|gif))(?:\?[^\s"']*)?`)

// the tokenizer reads the content of these elements as plain text
var rawTextElems = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"xmp":       true,
}

// ImageURLs lists <img src> values in document order followed by bare image
// URLs found anywhere in the text, without duplicates. Bare URLs are listed
// without their query string.
func ImageURLs(body string) []string {
	urls := imgSrcs(body)
	for _, m := range bareImageURL.FindAllStringSubmatch(body, -1) {
		urls = append(urls, m[1])
	}
	return dedupe(urls)
}

// imgSrcs collects <img src> values in document order, including tags that
// sit inside comments or raw text elements such as <noscript>.
func imgSrcs(body string) []string {
	var (
		urls []string
		raw  bool
	)
	z := html.NewTokenizer(strings.NewReader(body))
	for {
		tt := z.Next()
		inRaw := raw
		raw = false

		switch tt {
		case html.ErrorToken:
			return urls
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			raw = rawTextElems[string(name)]
			if !hasAttr || string(name) != "img" {
				continue
			}
			if src := imgSrc(z); src != "" {
				urls = append(urls, src)
			}
		case html.TextToken:
			if inRaw {
				urls = append(urls, imgSrcs(string(z.Raw()))...)
			}
		case html.CommentToken:
			c := string(z.Raw())
			if strings.HasPrefix(c, "<!--") {
				urls = append(urls, imgSrcs(strings.TrimSuffix(c[len("<!--"):], "-->"))...)
			}
		}
	}
}

// ExtractFeatured returns the last image of the body. Hero images are placed
// at the end of the sheet's articles.
func ExtractFeatured(body string) (string, bool) {
	urls := ImageURLs(body)
	if len(urls) == 0 {
		return "", false
	}
	return urls[len(urls)-1], true
}

func imgSrc(z *html.Tokenizer) string {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "src" {
			return strings.TrimSpace(string(val))
		}
		if !more {
			return ""
		}
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
