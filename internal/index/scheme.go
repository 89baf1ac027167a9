package index

var (
	bArticles    = []byte("articles")     // slug -> article json
	bIdxOrdinal  = []byte("idx_ordinal")  // ordinal key -> slug
	bIdxLatest   = []byte("idx_latest")   // newest-first key -> slug
	bIdxCategory = []byte("idx_category") // category -> sub-bucket of ordinal keys
	bSnapshot    = []byte("snapshot")     // bookkeeping of the last rebuild

	kFingerprint = []byte("fingerprint")
	kBuiltAt     = []byte("built_at")
	kCount       = []byte("count")
)

// every bucket Rebuild owns; all are dropped before a new snapshot is written
var snapshotBuckets = [][]byte{bArticles, bIdxOrdinal, bIdxLatest, bIdxCategory, bSnapshot}
