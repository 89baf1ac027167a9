package related

import (
	"fmt"
	"testing"

	"implantsite/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pool(n int) []content.ReadingLink {
	out := make([]content.ReadingLink, n)
	for i := range out {
		out[i] = content.ReadingLink{URL: fmt.Sprintf("https://e.com/%d", i), Label: fmt.Sprintf("L%d", i)}
	}
	return out
}

func TestHash_FNV1a(t *testing.T) {
	assert.Equal(t, uint32(2166136261), Hash(""))
	assert.Equal(t, uint32(0xe40c292c), Hash("a"))
	assert.Equal(t, uint32(0xbf9cf968), Hash("foobar"))
}

func TestPickFurtherReading(t *testing.T) {
	p := pool(8)

	got := PickFurtherReading("implant-costs", p, 3)
	require.Len(t, got, 3)
	assert.Equal(t, got, PickFurtherReading("implant-costs", p, 3))

	start := int(Hash("implant-costs") % 8)
	for i, l := range got {
		assert.Equal(t, p[(start+i)%8], l)
	}
}

func TestPickFurtherReading_NoRepeats(t *testing.T) {
	p := pool(5)
	for _, count := range []int{1, 3, 5, 9} {
		got := PickFurtherReading("k", p, count)
		assert.Len(t, got, min(count, len(p)))

		seen := map[string]bool{}
		for _, l := range got {
			assert.False(t, seen[l.URL], "repeated %s", l.URL)
			seen[l.URL] = true
		}
	}
}

func TestPickFurtherReading_Edges(t *testing.T) {
	assert.Empty(t, PickFurtherReading("k", nil, 3))
	assert.Empty(t, PickFurtherReading("k", pool(3), 0))
	assert.Empty(t, PickFurtherReading("k", pool(3), -1))
	assert.Equal(t, PickFurtherReading("post", pool(8), 3), PickFurtherReading("", pool(8), 3))
}

func art(slug, cat string) content.Article {
	return content.Article{Slug: slug, Category: cat}
}

func TestPickRelated(t *testing.T) {
	all := []content.Article{
		art("a", "Cost"),
		art("b", "Care"),
		art("c", "Cost"),
		art("d", "cost"),
		art("e", "Cost"),
	}
	cur := all[2]

	got := PickRelated(all, cur, 10)
	assert.Equal(t, []content.Article{all[0], all[4], all[1], all[3]}, got)

	got = PickRelated(all, cur, 2)
	assert.Equal(t, []content.Article{all[0], all[4]}, got)

	got = PickRelated(all, cur, 3)
	assert.Equal(t, []content.Article{all[0], all[4], all[1]}, got)
}

func TestPickRelated_Edges(t *testing.T) {
	all := []content.Article{art("a", "x")}
	assert.Empty(t, PickRelated(all, all[0], 3))
	assert.Empty(t, PickRelated(nil, art("z", "x"), 3))
	assert.Empty(t, PickRelated([]content.Article{art("a", "x"), art("b", "x")}, all[0], 0))
}
