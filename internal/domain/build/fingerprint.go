package build

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint identifies one collection snapshot: the sheet bytes plus the
// config that shapes how they are turned into articles.
type Fingerprint struct {
	SourceHash   string
	ConfigHash   string
	SnapshotHash string
}

func (f *Fingerprint) ComputeSnapshotHash() {
	h := sha256.New()
	h.Write([]byte(f.SourceHash))
	h.Write([]byte{0})
	h.Write([]byte(f.ConfigHash))
	f.SnapshotHash = hex.EncodeToString(h.Sum(nil))
}

// Same reports whether both fingerprints describe the same snapshot.
func (f Fingerprint) Same(other Fingerprint) bool {
	return f.SnapshotHash != "" && f.SnapshotHash == other.SnapshotHash
}

func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// HashValue hashes the JSON form of v; unmarshalable values hash to "".
func HashValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return HashBytes(b)
}
