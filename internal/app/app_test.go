package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"implantsite/internal/domain/config"
	"implantsite/internal/domain/content"
	"implantsite/internal/index"

	"github.com/stretchr/testify/require"
)

const sheet = `Article Title,Article Content,wp_category,Slug,Status,Meta Title
Implant Costs,"<h2>Prices</h2><p>From £1,995.</p><h2>Finance</h2><p>Spread it.</p><img src=""https://e.com/cost.jpg"">",Cost,,,Implant Costs in Essex
Aftercare Tips,"Rest well.<br><br>Eat soft food.",Care,,,
All-on-4 Explained,<p>Full arch.</p>,Cost,,,
Draft Piece,<p>wip</p>,Cost,,draft,
Implant Costs,<p>Second take.</p>,Care,,,
`

type fixture struct {
	cfg    config.Config
	store  *index.Store
	loader *Loader
	lib    *Library
}

// newFixture loads sheet into a fresh index. Articles publish three per day
// from 2026-02-10.
func newFixture(t *testing.T, body string) *fixture {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Site.TimeZone = "UTC"
	cfg.Source.Path = filepath.Join(dir, "articles.csv")
	cfg.Build.IndexPath = filepath.Join(dir, "index.db")
	cfg.Build.PublicDir = filepath.Join(dir, "dist")
	require.NoError(t, os.WriteFile(cfg.Source.Path, []byte(body), 0o644))

	st, err := index.Open(index.OpenOptions{Path: cfg.Build.IndexPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	f := &fixture{
		cfg:    cfg,
		store:  st,
		loader: &Loader{Cfg: cfg, Index: st},
		lib:    NewLibrary(cfg, st),
	}
	_, err = f.loader.Load(true)
	require.NoError(t, err)
	return f
}

func slugsOf(arts []content.Article) []string {
	out := make([]string, 0, len(arts))
	for _, a := range arts {
		out = append(out, a.Slug)
	}
	return out
}

func dayAt(n int) time.Time {
	return time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}
