package build

import (
	"context"
	"fmt"
	"implantsite/internal/app"
	"implantsite/internal/domain/config"
	"implantsite/internal/domain/site"
	"implantsite/internal/index"
	"implantsite/internal/ingest"
	"implantsite/internal/logging"
	"implantsite/internal/render"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Builder struct {
	Cfg config.Config
	Log *slog.Logger
}

type Result struct {
	Articles int
	Pages    int
	Warnings []ingest.Warning
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	log := b.Log
	if log == nil {
		log = logging.Discard()
	}
	log = log.With("component", "build")

	st, err := index.Open(index.OpenOptions{Path: b.Cfg.Build.IndexPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	loader := &app.Loader{Cfg: b.Cfg, Index: st, Log: log}
	report, err := loader.Load(true)
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}

	tpl, err := render.NewTemplateRenderer(b.Cfg.Build.ThemeDir, b.Cfg.Build.BasePath)
	if err != nil {
		return nil, fmt.Errorf("load theme(%s): %w", b.Cfg.Build.ThemeDir, err)
	}

	lib := app.NewLibrary(b.Cfg, st)
	pages, err := app.NewPages(b.Cfg, lib, render.NewMarkdownRenderer())
	if err != nil {
		return nil, err
	}

	outDir := b.Cfg.Build.PublicDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir public: %w", err)
	}

	rb := &app.RouteBuilder{Library: lib}
	routes, err := rb.BuildAll()
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}
	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.buildRoute(ctx, pages, tpl, outDir, r); err != nil {
			return nil, fmt.Errorf("build %s: %w", r, err)
		}
		log.Debug("page written", "route", r.String())
	}

	log.Info("build complete", "articles", report.Articles, "pages", len(routes), "out", outDir)
	return &Result{
		Articles: report.Articles,
		Pages:    len(routes),
		Warnings: report.Warnings,
	}, nil
}

func (b *Builder) buildRoute(
	ctx context.Context,
	pages *app.Pages,
	tpl render.Renderer,
	outDir string,
	r site.Route,
) error {
	var (
		htmlBytes []byte
		err       error
	)
	switch r.Kind {
	case site.RouteBlogIndex:
		lp, lerr := pages.List(b.Cfg.Build.Now)
		if lerr != nil {
			return lerr
		}
		htmlBytes, err = tpl.RenderList(ctx, lp)
	case site.RoutePost:
		pp, perr := pages.Post(r.Slug)
		if perr != nil {
			return perr
		}
		htmlBytes, err = tpl.RenderPost(ctx, pp)
	case site.RouteNotFound:
		np, nerr := pages.NotFound("")
		if nerr != nil {
			return nerr
		}
		htmlBytes, err = tpl.RenderNotFound(ctx, np)
	default:
		return fmt.Errorf("unknown route kind %q", r.Kind)
	}
	if err != nil {
		return err
	}
	return writeFile(outDir, r.OutPath, htmlBytes)
}

func writeFile(root, rel string, data []byte) error {
	full := filepath.Join(root, rel)
	if r, err := filepath.Rel(root, full); err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path %q escapes %q", rel, root)
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
