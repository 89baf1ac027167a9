package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainerr "implantsite/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Source.PerDay)
	assert.Equal(t, "2026-02-10", cfg.Source.StartDate)
	assert.Equal(t, 3, cfg.Blog.RelatedLimit)
	assert.Equal(t, 3, cfg.Blog.FurtherReadingCount)
	assert.Len(t, cfg.Blog.FurtherReading, 8)
}

func TestValidate_CollectsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Site.Title = " "
	cfg.Site.SiteURL = "not a url"
	cfg.Site.TimeZone = "Mars/Olympus"
	cfg.Source.StartDate = "10/02/2026"
	cfg.Source.PerDay = 0
	cfg.Blog.RelatedLimit = -1
	cfg.Build.BasePath = "blog/"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerr.ErrInvalid))

	var ve domainerr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{
		"site.title",
		"site.site_url",
		"site.time_zone",
		"source.start_date",
		"source.per_day",
		"blog.related_limit",
		"build.base_path",
		"build.base_path",
		"log.level",
	}, ve.Fields())
}

func TestValidate_FurtherReading(t *testing.T) {
	cfg := Default()
	cfg.Blog.FurtherReading[0].URL = "/relative"
	cfg.Blog.FurtherReading[1].Label = ""

	var ve domainerr.ValidationError
	require.True(t, errors.As(cfg.Validate(), &ve))
	assert.Equal(t, []string{"blog.further_reading", "blog.further_reading"}, ve.Fields())
}

func TestStartDate(t *testing.T) {
	cfg := Default()
	cfg.Site.TimeZone = "Europe/London"

	got := cfg.StartDate()
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, "Europe/London", got.Location().String())

	cfg.Source.StartDate = "bad"
	assert.True(t, cfg.StartDate().IsZero())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	yml := `
site:
  title: Test Implants
  site_url: https://test.example
source:
  path: data/articles.csv
  per_day: 5
blog:
  related_limit: 4
  further_reading:
    - url: https://one.example
      label: One
serve:
  debounce: 1s
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Implants", cfg.Site.Title)
	assert.Equal(t, "data/articles.csv", cfg.Source.Path)
	assert.Equal(t, 5, cfg.Source.PerDay)
	assert.Equal(t, "Article Title", cfg.Source.Columns.Title)
	assert.Equal(t, 4, cfg.Blog.RelatedLimit)
	assert.Equal(t, 3, cfg.Blog.LatestCount)
	assert.Len(t, cfg.Blog.FurtherReading, 1)
	assert.Equal(t, time.Second, cfg.Serve.Debounce)
	assert.False(t, cfg.Build.Now.IsZero())
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  per_day: -1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, domainerr.ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("site: [unclosed\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Source.Path, cfg.Source.Path)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, os.IsNotExist(err))
}
