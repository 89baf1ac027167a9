// Package markup holds the text-level HTML passes applied to article bodies:
// presentational cleanup, paragraph structuring, featured image lookup and
// the split point used to place the consultation banner.
//
// All passes scan tags as text instead of building a DOM, so markup they do
// not target comes back byte-for-byte and malformed input degrades to "no
// match" rather than an error.
package markup
