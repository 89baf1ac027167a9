package content

import (
	"strings"
	"time"
)

// RawRecord is one row of the articles sheet keyed by header name.
type RawRecord map[string]string

// Field returns the named column, or "" when the row does not carry it.
func (r RawRecord) Field(name string) string {
	if r == nil || name == "" {
		return ""
	}
	return r[name]
}

type Article struct {
	Title    string
	RawBody  string
	Category string
	Slug     string

	// Ordinal is the position among rows that survived the blank-title filter.
	Ordinal     int
	PublishDate time.Time

	FeaturedImage string
	Body          string

	MetaTitle       string
	MetaDescription string
	SchemaMarkup    string
	Status          string
	Draft           bool
}

func (a Article) HasFeaturedImage() bool {
	return a.FeaturedImage != ""
}

// SEOTitle falls back to the article title when the sheet has no meta title.
func (a Article) SEOTitle() string {
	if t := strings.TrimSpace(a.MetaTitle); t != "" {
		return t
	}
	return a.Title
}

// PublishedBy reports whether the article is visible at now.
func (a Article) PublishedBy(now time.Time) bool {
	return !a.PublishDate.After(now)
}

type ReadingLink struct {
	URL   string `yaml:"url" json:"url"`
	Label string `yaml:"label" json:"label"`
}

func IsDraftStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "draft")
}
