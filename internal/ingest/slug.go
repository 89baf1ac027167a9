package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

const fallbackSlug = "post"

var (
	quoteStripper = strings.NewReplacer(
		"'", "", `"`, "",
		"\u2018", "", "\u2019", "",
		"\u201c", "", "\u201d", "",
	)
	nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lower-cases s, drops quote characters and collapses every other run
// of non [a-z0-9] characters into a single hyphen.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = quoteStripper.Replace(s)
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CandidateSlug picks the explicit slug when the row has one, else the title.
func CandidateSlug(explicit, title string) string {
	if strings.TrimSpace(explicit) != "" {
		return Slugify(explicit)
	}
	return Slugify(title)
}

// ResolveSlug returns base, or base-2, base-3, ... whichever is free first,
// and marks the result as used. used must be non-nil and must only be shared
// by calls building the same collection, in row order.
func ResolveSlug(base string, used map[string]struct{}) string {
	if base == "" {
		base = fallbackSlug
	}
	slug := base
	for i := 2; ; i++ {
		if _, taken := used[slug]; !taken {
			break
		}
		slug = base + "-" + strconv.Itoa(i)
	}
	used[slug] = struct{}{}
	return slug
}
