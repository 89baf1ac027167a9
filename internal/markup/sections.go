package markup

import (
	"regexp"
	"strings"
)

var (
	h2Open      = regexp.MustCompile(`(?i)<h2[\s>]`)
	sectionOpen = regexp.MustCompile(`(?i)<h[23][\s>]`)
)

// SplitAfterFirstH2 splits body right before the first <h2> or <h3> that
// follows the first <h2> opening tag, so before holds everything up to the end
// of the first h2 section.
//
// When there is no first h2, or no heading after it, the whole body is
// returned as before and after is empty.
func SplitAfterFirstH2(body string) (before, after string) {
	loc := h2Open.FindStringIndex(body)
	if loc == nil {
		return body, ""
	}
	end := loc[1]
	if body[end-1] != '>' {
		gt := strings.IndexByte(body[end:], '>')
		if gt < 0 {
			return body, ""
		}
		end += gt + 1
	}
	next := sectionOpen.FindStringIndex(body[end:])
	if next == nil {
		return body, ""
	}
	split := end + next[0]
	return body[:split], body[split:]
}
