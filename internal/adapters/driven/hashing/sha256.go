// Package hashing provides the capture-time text digest adapter.
package hashing

import (
	"context"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/ports/driven"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/textsig"
)

// Ensure SHA256Hasher implements the interface.
var _ driven.TextHasher = (*SHA256Hasher)(nil)

// SHA256Hasher digests normalised text with SHA-256. Capture tools use
// it for text hashes that are stored in captures and compared across
// implementations; the fingerprint engine keeps using the short
// structural digest.
type SHA256Hasher struct{}

// New creates a new SHA-256 text hasher.
func New() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash returns the lowercase hex SHA-256 of the normalised form of s.
func (h *SHA256Hasher) Hash(ctx context.Context, s string) (string, error) {
	return textsig.HashSHA256(ctx, s)
}
