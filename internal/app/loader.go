package app

import (
	"errors"
	"fmt"
	"implantsite/internal/domain/build"
	"implantsite/internal/domain/config"
	domainerr "implantsite/internal/domain/errors"
	"implantsite/internal/index"
	"implantsite/internal/ingest"
	"implantsite/internal/logging"
	"log/slog"
	"os"
	"time"
)

// Loader turns the articles sheet into the current index snapshot.
type Loader struct {
	Cfg   config.Config
	Index *index.Store
	Log   *slog.Logger
}

type LoadReport struct {
	Articles    int
	Skipped     int
	Warnings    []ingest.Warning
	Fingerprint build.Fingerprint
	// Unchanged is set when the snapshot already matched and nothing was written.
	Unchanged bool
}

// Load rebuilds the snapshot from the sheet. Unless force is set, a sheet and
// config identical to the stored snapshot's are left alone.
func (l *Loader) Load(force bool) (*LoadReport, error) {
	raw, err := os.ReadFile(l.Cfg.Source.Path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	fp := build.Fingerprint{
		SourceHash: build.HashBytes(raw),
		ConfigHash: build.HashValue([]any{l.Cfg.Source, l.Cfg.Site.TimeZone}),
	}
	fp.ComputeSnapshotHash()

	if !force {
		snap, err := l.Index.Snapshot()
		switch {
		case err == nil && snap.Fingerprint == fp.SnapshotHash:
			l.logger().Debug("snapshot unchanged", "fingerprint", fp.SnapshotHash[:12])
			return &LoadReport{Articles: snap.Count, Fingerprint: fp, Unchanged: true}, nil
		case err != nil && !errors.Is(err, domainerr.ErrNotFound):
			return nil, fmt.Errorf("read snapshot: %w", err)
		}
	}

	res, err := ingest.Parse(raw, ingest.OptionsFromConfig(l.Cfg))
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		l.logger().Warn("article row", "record", w.Row, "line", w.Line, "msg", w.Msg)
	}

	if err := l.Index.Rebuild(res.Articles, index.RebuildOptions{
		Fingerprint: fp.SnapshotHash,
		BuiltAt:     time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("index rebuild: %w", err)
	}

	l.logger().Info("articles loaded",
		"source", l.Cfg.Source.Path,
		"articles", len(res.Articles),
		"skipped", res.Skipped,
		"warnings", len(res.Warnings),
	)
	return &LoadReport{
		Articles:    len(res.Articles),
		Skipped:     res.Skipped,
		Warnings:    res.Warnings,
		Fingerprint: fp,
	}, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Log == nil {
		return logging.Discard()
	}
	return l.Log
}

// NewLibrary wires a Library over st using the blog settings of cfg.
func NewLibrary(cfg config.Config, st *index.Store) *Library {
	return &Library{
		Index:         st,
		Pool:          cfg.Blog.FurtherReading,
		IncludeDraft:  cfg.Blog.IncludeDraft,
		HideScheduled: cfg.Blog.HideScheduled,
	}
}
