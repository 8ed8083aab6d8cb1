package driven

import "context"

// TextHasher digests normalised text for storage in captures.
// Capture tools call it when building text signals whose hashes may be
// stored and later compared across implementations, so adapters must
// use a real, stable hash; the in-core fingerprint digest is not
// suitable. The context allows callers to bound batch hashing.
type TextHasher interface {
	// Hash returns a lowercase hex digest of the normalised form of s.
	Hash(ctx context.Context, s string) (string, error)
}
