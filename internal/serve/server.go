package serve

import (
	"context"
	"errors"
	"fmt"
	"github.com/fsnotify/fsnotify"
	"implantsite/internal/app"
	"implantsite/internal/domain/config"
	"implantsite/internal/index"
	"implantsite/internal/logging"
	"implantsite/internal/render"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Server is the development server: it renders blog pages on request from
// the index and reloads the sheet whenever it changes on disk.
type Server struct {
	cfg config.Config
	log *slog.Logger

	idx    *index.Store
	loader *app.Loader
	pages  *app.Pages
	tpl    render.Renderer

	// reloadMu serializes sheet reloads; readers go through bbolt transactions.
	reloadMu sync.Mutex

	sseMu    sync.Mutex
	sseConns map[chan string]struct{}

	watcher   *fsnotify.Watcher
	watchOnce sync.Once
}

func New(cfg config.Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = logging.Discard()
	}
	log = log.With("component", "serve")

	tpl, err := render.NewTemplateRenderer(cfg.Build.ThemeDir, cfg.Build.BasePath)
	if err != nil {
		return nil, fmt.Errorf("serve: failed to create template renderer: %w", err)
	}
	st, err := index.Open(index.OpenOptions{Path: cfg.Build.IndexPath})
	if err != nil {
		return nil, fmt.Errorf("serve: failed to open index: %w", err)
	}

	lib := app.NewLibrary(cfg, st)
	pages, err := app.NewPages(cfg, lib, render.NewMarkdownRenderer())
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	pages.Site.LiveReload = true

	return &Server{
		cfg:      cfg,
		log:      log,
		idx:      st,
		loader:   &app.Loader{Cfg: cfg, Index: st, Log: log},
		pages:    pages,
		tpl:      tpl,
		sseConns: make(map[chan string]struct{}),
	}, nil
}

func (s *Server) Close() error {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.idx != nil {
		return s.idx.Close()
	}
	return nil
}

// Reload loads the sheet into the index. Unless force is set an unchanged
// sheet is skipped and listeners are not notified.
func (s *Server) Reload(force bool) (*app.LoadReport, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	report, err := s.loader.Load(force)
	if err != nil {
		return nil, err
	}
	if !report.Unchanged {
		s.broadcastSSE("reload")
	}
	return report, nil
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if _, err := s.Reload(false); err != nil {
		return err
	}
	if err := s.startWatch(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
