package ingest

import (
	"bytes"
	"fmt"
	"implantsite/internal/domain/build"
	"implantsite/internal/domain/config"
	"implantsite/internal/domain/content"
	"implantsite/internal/markup"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Warning is a note about one record. Row counts records from 1; Line is
// the sheet line the record starts on, or 0 when the records did not come
// from a sheet.
type Warning struct {
	Row  int
	Line int
	Msg  string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Msg)
	}
	return fmt.Sprintf("record %d: %s", w.Row, w.Msg)
}

type Options struct {
	Columns   config.Columns
	StartDate time.Time
	PerDay    int
	// Workers bounds the body normalization fan-out; 0 means GOMAXPROCS.
	Workers int
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Columns:   cfg.Source.Columns,
		StartDate: cfg.StartDate(),
		PerDay:    cfg.Source.PerDay,
	}
}

type Result struct {
	Articles   []content.Article
	Warnings   []Warning
	Skipped    int
	SourceHash string
}

// Load reads and builds the sheet at path.
func Load(path string, opt Options) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return Parse(raw, opt)
}

func Parse(raw []byte, opt Options) (*Result, error) {
	records, lines, err := ReadTableLines(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	arts, warns := Build(records, opt)
	for i := range warns {
		warns[i].Line = lines[warns[i].Row-1]
	}
	return &Result{
		Articles:   arts,
		Warnings:   warns,
		Skipped:    len(records) - len(arts),
		SourceHash: build.HashBytes(raw),
	}, nil
}

// Build turns sheet rows into articles. Rows without a title are dropped and
// do not take an ordinal. Slugs are resolved in row order against a set that
// lives only for this call, so equal input always yields equal output.
func Build(records []content.RawRecord, opt Options) ([]content.Article, []Warning) {
	cols := opt.Columns
	used := make(map[string]struct{}, len(records))

	var (
		out   []content.Article
		warns []Warning
	)
	for i, rec := range records {
		row := i + 1
		title := strings.TrimSpace(rec.Field(cols.Title))
		if title == "" {
			continue
		}

		explicit := strings.TrimSpace(rec.Field(cols.Slug))
		base := CandidateSlug(explicit, title)
		if explicit != "" && base != explicit {
			warns = append(warns, Warning{Row: row, Msg: fmt.Sprintf("slug %q normalized to %q", explicit, base)})
		}
		slug := ResolveSlug(base, used)
		switch {
		case base == "":
			warns = append(warns, Warning{Row: row, Msg: fmt.Sprintf("no usable slug characters, using %q", slug)})
		case slug != base:
			warns = append(warns, Warning{Row: row, Msg: fmt.Sprintf("slug %q already taken, using %q", base, slug)})
		}

		ordinal := len(out)
		status := strings.TrimSpace(rec.Field(cols.Status))
		out = append(out, content.Article{
			Title:           title,
			RawBody:         rec.Field(cols.Body),
			Category:        rec.Field(cols.Category),
			Slug:            slug,
			Ordinal:         ordinal,
			PublishDate:     AssignPublishDate(ordinal, opt.StartDate, opt.PerDay),
			MetaTitle:       strings.TrimSpace(rec.Field(cols.MetaTitle)),
			MetaDescription: strings.TrimSpace(rec.Field(cols.MetaDescription)),
			SchemaMarkup:    rec.Field(cols.SchemaMarkup),
			Status:          status,
			Draft:           content.IsDraftStatus(status),
		})
	}

	fillBodies(out, opt.Workers)
	return out, warns
}

// fillBodies runs the per-article markup passes. Each worker writes only its
// own slots, so the result does not depend on scheduling.
func fillBodies(arts []content.Article, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(arts))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				a := &arts[i]
				a.FeaturedImage, _ = markup.ExtractFeatured(a.RawBody)
				a.Body = markup.Normalize(a.RawBody)
			}
		}()
	}
	for i := range arts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
