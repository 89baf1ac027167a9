package index

import (
	"encoding/json"
	bolt "go.etcd.io/bbolt"
	"implantsite/internal/domain/content"
	domainerr "implantsite/internal/domain/errors"
	"time"
)

var ErrNotFound = domainerr.ErrNotFound

type ListOptions struct {
	IncludeDraft bool
	// Now hides articles published after it; the zero value hides nothing.
	Now   time.Time
	Limit int
}

func (o ListOptions) keep(a content.Article) bool {
	if a.Draft && !o.IncludeDraft {
		return false
	}
	if !o.Now.IsZero() && !a.PublishedBy(o.Now) {
		return false
	}
	return true
}

func (o ListOptions) full(n int) bool {
	return o.Limit > 0 && n >= o.Limit
}

// Get looks slug up exactly as given.
func (s *Store) Get(slug string) (content.Article, error) {
	if slug == "" {
		return content.Article{}, ErrNotFound
	}
	var a content.Article
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bArticles)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(slug))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &a)
	})
	return a, err
}

// All lists articles in sheet order.
func (s *Store) All(opt ListOptions) ([]content.Article, error) {
	var out []content.Article
	err := s.db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(bIdxOrdinal)
		artB := tx.Bucket(bArticles)
		if idx == nil || artB == nil {
			return nil
		}
		out = collect(idx, artB, opt)
		return nil
	})
	return out, err
}

// Latest lists articles newest publish date first.
func (s *Store) Latest(opt ListOptions) ([]content.Article, error) {
	var out []content.Article
	err := s.db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(bIdxLatest)
		artB := tx.Bucket(bArticles)
		if idx == nil || artB == nil {
			return nil
		}
		cur := idx.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			if slugFromLatestKey(k) == "" {
				continue
			}
			a, ok := decodeArticle(artB, v)
			if !ok || !opt.keep(a) {
				continue
			}
			out = append(out, a)
			if opt.full(len(out)) {
				break
			}
		}
		return nil
	})
	return out, err
}

// ListByCategory lists one category in sheet order; cat is matched exactly.
func (s *Store) ListByCategory(cat string, opt ListOptions) ([]content.Article, error) {
	if cat == "" {
		return nil, nil
	}
	var out []content.Article
	err := s.db.View(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bIdxCategory)
		artB := tx.Bucket(bArticles)
		if parent == nil || artB == nil {
			return nil
		}
		sb := parent.Bucket([]byte(cat))
		if sb == nil {
			return nil
		}
		out = collect(sb, artB, opt)
		return nil
	})
	return out, err
}

func (s *Store) Categories() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bIdxCategory)
		if b == nil {
			return nil
		}
		return b.ForEachBucket(func(k []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Snapshot describes the last successful Rebuild.
type Snapshot struct {
	Fingerprint string
	BuiltAt     time.Time
	Count       int
}

func (s *Store) Snapshot() (Snapshot, error) {
	var snap Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bSnapshot)
		if b == nil {
			return ErrNotFound
		}
		snap.Fingerprint = string(b.Get(kFingerprint))
		snap.Count = decodeCount(b.Get(kCount))
		if v := b.Get(kBuiltAt); v != nil {
			snap.BuiltAt, _ = time.Parse(time.RFC3339Nano, string(v))
		}
		return nil
	})
	return snap, err
}

// collect walks an index bucket whose values are slugs.
func collect(idx, artB *bolt.Bucket, opt ListOptions) []content.Article {
	var out []content.Article
	cur := idx.Cursor()
	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		a, ok := decodeArticle(artB, v)
		if !ok || !opt.keep(a) {
			continue
		}
		out = append(out, a)
		if opt.full(len(out)) {
			break
		}
	}
	return out
}

func decodeArticle(artB *bolt.Bucket, slug []byte) (content.Article, bool) {
	var a content.Article
	if len(slug) == 0 {
		return a, false
	}
	v := artB.Get(slug)
	if v == nil {
		return a, false
	}
	if err := json.Unmarshal(v, &a); err != nil {
		return a, false
	}
	return a, true
}
