package index

import (
	"encoding/json"
	"errors"
	"fmt"
	bolt "go.etcd.io/bbolt"
	"implantsite/internal/domain/content"
	"strings"
	"time"
)

type RebuildOptions struct {
	// Fingerprint is stored alongside the snapshot so callers can skip
	// rebuilding identical input.
	Fingerprint string
	BuiltAt     time.Time
}

// Rebuild replaces the whole snapshot with articles in one transaction.
// Nothing from a previous snapshot survives.
func (s *Store) Rebuild(articles []content.Article, opt RebuildOptions) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range snapshotBuckets {
			if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
				return fmt.Errorf("drop %s: %w", name, err)
			}
		}

		artB, err := tx.CreateBucket(bArticles)
		if err != nil {
			return err
		}
		ordB, err := tx.CreateBucket(bIdxOrdinal)
		if err != nil {
			return err
		}
		latestB, err := tx.CreateBucket(bIdxLatest)
		if err != nil {
			return err
		}
		catB, err := tx.CreateBucket(bIdxCategory)
		if err != nil {
			return err
		}
		snapB, err := tx.CreateBucket(bSnapshot)
		if err != nil {
			return err
		}

		count := 0
		for _, a := range articles {
			if strings.TrimSpace(a.Slug) == "" {
				continue
			}
			if artB.Get([]byte(a.Slug)) != nil {
				return fmt.Errorf("duplicate slug %q", a.Slug)
			}
			ab, err := json.Marshal(a)
			if err != nil {
				return err
			}
			if err := artB.Put([]byte(a.Slug), ab); err != nil {
				return err
			}

			oKey := makeOrdinalKey(a.Ordinal)
			if err := ordB.Put(oKey, []byte(a.Slug)); err != nil {
				return err
			}
			lKey := makeLatestKey(a.PublishDate.UnixNano(), a.Ordinal, a.Slug)
			if err := latestB.Put(lKey, []byte(a.Slug)); err != nil {
				return err
			}

			// categories compare byte-exact; the empty category is not indexed
			if a.Category != "" {
				sb, err := catB.CreateBucketIfNotExists([]byte(a.Category))
				if err != nil {
					return err
				}
				if err := sb.Put(oKey, []byte(a.Slug)); err != nil {
					return err
				}
			}
			count++
		}

		builtAt := opt.BuiltAt
		if builtAt.IsZero() {
			builtAt = time.Now()
		}
		if err := snapB.Put(kFingerprint, []byte(opt.Fingerprint)); err != nil {
			return err
		}
		if err := snapB.Put(kBuiltAt, []byte(builtAt.UTC().Format(time.RFC3339Nano))); err != nil {
			return err
		}
		return snapB.Put(kCount, encodeCount(count))
	})
}
