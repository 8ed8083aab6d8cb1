package driving

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// FingerprintService computes structural digests of captures.
type FingerprintService interface {
	// Fingerprint returns the full capture fingerprint: structure,
	// geometry, and content digests.
	Fingerprint(c *domain.Capture) string

	// FingerprintLayout returns the layout-only fingerprint, with
	// text and name digests excluded.
	FingerprintLayout(c *domain.Capture) string

	// AssignIDs writes content-addressed IDs over the tree in
	// preorder. The tree is owned by the call for its duration.
	AssignIDs(root *domain.Node)
}
