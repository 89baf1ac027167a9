package app

import (
	"testing"
	"time"

	domainerr "implantsite/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_All(t *testing.T) {
	f := newFixture(t, sheet)

	all, err := f.lib.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"implant-costs", "aftercare-tips", "all-on-4-explained", "implant-costs-2"}, slugsOf(all))

	f.lib.IncludeDraft = true
	all, err = f.lib.All()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestLibrary_Get(t *testing.T) {
	f := newFixture(t, sheet)

	a, err := f.lib.Get("implant-costs")
	require.NoError(t, err)
	assert.Equal(t, "Implant Costs", a.Title)
	assert.Equal(t, "https://e.com/cost.jpg", a.FeaturedImage)
	assert.True(t, a.PublishDate.Equal(dayAt(0)))

	d, err := f.lib.Get("draft-piece")
	require.NoError(t, err)
	assert.True(t, d.Draft)
	assert.True(t, d.PublishDate.Equal(dayAt(1)))

	_, err = f.lib.Get("missing")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestLibrary_Related(t *testing.T) {
	f := newFixture(t, sheet)
	cur, err := f.lib.Get("implant-costs")
	require.NoError(t, err)

	rel, err := f.lib.Related(cur, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"all-on-4-explained", "aftercare-tips", "implant-costs-2"}, slugsOf(rel))

	rel, err = f.lib.Related(cur, 0)
	require.NoError(t, err)
	assert.Empty(t, rel)
}

func TestLibrary_FurtherReading(t *testing.T) {
	f := newFixture(t, sheet)

	got := f.lib.FurtherReading("implant-costs", 3)
	assert.Len(t, got, 3)
	assert.Equal(t, got, f.lib.FurtherReading("implant-costs", 3))
	assert.Len(t, f.lib.FurtherReading("implant-costs", 20), len(f.cfg.Blog.FurtherReading))
}

func TestLibrary_Latest(t *testing.T) {
	f := newFixture(t, sheet)

	got, err := f.lib.Latest(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"implant-costs-2", "all-on-4-explained", "aftercare-tips"}, slugsOf(got))

	got, err = f.lib.Latest(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLibrary_Newest(t *testing.T) {
	f := newFixture(t, sheet)

	got, err := f.lib.Newest()
	require.NoError(t, err)
	assert.Equal(t, []string{"implant-costs-2", "all-on-4-explained", "aftercare-tips", "implant-costs"}, slugsOf(got))
}

func TestLibrary_HideScheduled(t *testing.T) {
	f := newFixture(t, sheet)
	f.lib.HideScheduled = true
	f.lib.Clock = func() time.Time { return dayAt(0).Add(12 * time.Hour) }

	all, err := f.lib.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"implant-costs", "aftercare-tips", "all-on-4-explained"}, slugsOf(all))

	_, err = f.lib.Get("implant-costs-2")
	assert.NoError(t, err)
}

func TestLibrary_ByCategory(t *testing.T) {
	f := newFixture(t, sheet)

	got, err := f.lib.ByCategory("Cost")
	require.NoError(t, err)
	assert.Equal(t, []string{"implant-costs", "all-on-4-explained"}, slugsOf(got))
}
