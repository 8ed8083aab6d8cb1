// Package textsig normalises raw page text and derives the
// privacy-preserving signals carried on IR nodes: a kind
// classification, a character count, and a short stability digest.
//
// The short digest is the 32-bit fold used by all internal hashing in
// the fingerprint engine. It is a stability digest, not a MAC; a true
// SHA-256 over the same normalised text is available for capture-time
// hashes that may be stored and compared across tools.
package textsig
