// Package related picks the "related articles" and "further reading" lists
// shown under an article. Both selections are deterministic.
package related

import (
	"hash/fnv"
	"implantsite/internal/domain/content"
)

const defaultKey = "post"

// PickFurtherReading walks pool cyclically from hash(key) mod len(pool) and
// returns up to count links, never repeating one.
func PickFurtherReading(key string, pool []content.ReadingLink, count int) []content.ReadingLink {
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	if key == "" {
		key = defaultKey
	}
	n := min(count, len(pool))
	start := int(Hash(key) % uint32(len(pool)))

	out := make([]content.ReadingLink, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pool[(start+i)%len(pool)])
	}
	return out
}

// Hash is the 32-bit FNV-1a hash of key's bytes.
func Hash(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32()
}

// PickRelated lists the other articles, same category first, each group in
// its original order, truncated to limit.
func PickRelated(all []content.Article, current content.Article, limit int) []content.Article {
	if limit <= 0 {
		return nil
	}
	var same, other []content.Article
	for _, a := range all {
		if a.Slug == current.Slug {
			continue
		}
		if a.Category == current.Category {
			same = append(same, a)
		} else {
			other = append(other, a)
		}
	}
	out := append(same, other...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
