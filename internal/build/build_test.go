package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"implantsite/internal/domain/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheet = `Article Title,Article Content,wp_category,Status
Implant Costs,"<h2>Prices</h2><p>a</p><h2>Finance</h2><p>b</p>",Cost,
Implant Costs,<p>again</p>,Cost,
Work In Progress,<p>wip</p>,Cost,draft
`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Source.Path = filepath.Join(dir, "articles.csv")
	cfg.Build.IndexPath = filepath.Join(dir, ".implantsite", "index.db")
	cfg.Build.PublicDir = filepath.Join(dir, "dist")
	require.NoError(t, os.WriteFile(cfg.Source.Path, []byte(sheet), 0o644))
	return cfg
}

func TestBuilder_Run(t *testing.T) {
	cfg := testConfig(t)
	b := &Builder{Cfg: cfg}

	res, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Articles)
	assert.Equal(t, 4, res.Pages)
	assert.Len(t, res.Warnings, 1)

	out := cfg.Build.PublicDir
	post, err := os.ReadFile(filepath.Join(out, "blog", "implant-costs", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(post), "cta-banner")
	assert.Contains(t, string(post), `href="/blog/implant-costs-2/"`)

	assert.FileExists(t, filepath.Join(out, "blog", "implant-costs-2", "index.html"))
	assert.FileExists(t, filepath.Join(out, "blog", "index.html"))
	assert.FileExists(t, filepath.Join(out, "404.html"))
	assert.NoFileExists(t, filepath.Join(out, "blog", "work-in-progress", "index.html"))
}

func TestBuilder_Canceled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Builder{Cfg: cfg}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuilder_MissingSheet(t *testing.T) {
	cfg := testConfig(t)
	cfg.Source.Path = filepath.Join(t.TempDir(), "none.csv")

	_, err := (&Builder{Cfg: cfg}).Run(context.Background())
	assert.Error(t, err)
}

func TestWriteFile_StaysInRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeFile(root, filepath.Join("a", "b.html"), []byte("x")))
	assert.FileExists(t, filepath.Join(root, "a", "b.html"))

	assert.Error(t, writeFile(root, filepath.Join("..", "escape.html"), []byte("x")))
}
