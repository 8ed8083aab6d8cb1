// Package fingerprint computes structural digests of IR nodes and
// captures: shallow and deep node hashes, full and layout-only capture
// fingerprints, content-addressed node IDs, and the pairwise node
// similarity score used by the diff engine.
//
// Deep hashing canonicalises sibling order by quantized (y, x)
// position, so two captures whose only difference is the input order
// of siblings produce the same digest; siblings at the same quantized
// position keep their input order. All digests are 8 lowercase hex
// characters.
package fingerprint
