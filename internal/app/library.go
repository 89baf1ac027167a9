package app

import (
	"errors"
	"fmt"
	"implantsite/internal/domain/content"
	domainerr "implantsite/internal/domain/errors"
	"implantsite/internal/index"
	"implantsite/internal/related"
	"time"
)

// Library is the read side of one article snapshot: what the blog views ask
// for. The further reading pool is injected and never changes after
// construction.
type Library struct {
	Index *index.Store
	Pool  []content.ReadingLink

	IncludeDraft  bool
	HideScheduled bool
	// Clock defaults to time.Now; tests pin it.
	Clock func() time.Time
}

func (l *Library) listOptions(limit int) index.ListOptions {
	opt := index.ListOptions{
		IncludeDraft: l.IncludeDraft,
		Limit:        limit,
	}
	if l.HideScheduled {
		opt.Now = l.now()
	}
	return opt
}

func (l *Library) now() time.Time {
	if l.Clock != nil {
		return l.Clock()
	}
	return time.Now()
}

// All lists the listable articles in sheet order.
func (l *Library) All() ([]content.Article, error) {
	return l.Index.All(l.listOptions(0))
}

// Get finds an article by slug. Drafts and scheduled posts are still served so
// that direct links keep working; unknown slugs yield errors.ErrNotFound.
func (l *Library) Get(slug string) (content.Article, error) {
	a, err := l.Index.Get(slug)
	if err != nil {
		if errors.Is(err, domainerr.ErrNotFound) {
			return content.Article{}, err
		}
		return content.Article{}, fmt.Errorf("get %q: %w", slug, err)
	}
	return a, nil
}

func (l *Library) Related(current content.Article, limit int) ([]content.Article, error) {
	if limit <= 0 {
		return nil, nil
	}
	all, err := l.All()
	if err != nil {
		return nil, err
	}
	return related.PickRelated(all, current, limit), nil
}

func (l *Library) FurtherReading(key string, count int) []content.ReadingLink {
	return related.PickFurtherReading(key, l.Pool, count)
}

// Latest lists up to n listable articles, newest first.
func (l *Library) Latest(n int) ([]content.Article, error) {
	if n <= 0 {
		return nil, nil
	}
	return l.Index.Latest(l.listOptions(n))
}

// Newest lists every listable article, newest first.
func (l *Library) Newest() ([]content.Article, error) {
	return l.Index.Latest(l.listOptions(0))
}

func (l *Library) ByCategory(cat string) ([]content.Article, error) {
	return l.Index.ListByCategory(cat, l.listOptions(0))
}
