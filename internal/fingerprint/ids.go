package fingerprint

import (
	"fmt"
	"math"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// idHashLen caps the shallow-hash prefix inside a node ID. Shallow
// hashes are 8 characters, so the whole hash fits.
const idHashLen = 12

// GenerateNodeID derives a content-addressed identifier for a node:
// the parent path, the shallow-hash prefix, and the coarse position in
// viewport percent. Siblings with identical content at identical
// coarse positions collide; the capture tool is expected to avoid
// emitting such duplicates.
func GenerateNodeID(n *domain.Node, parentPath string) string {
	h := prefix(HashNodeShallow(n, domain.DefaultHashOptions()), idHashLen)
	return fmt.Sprintf("%s/%s_%d_%d",
		parentPath, h,
		int(math.Round(n.BBox[0]*100)),
		int(math.Round(n.BBox[1]*100)))
}

// AssignNodeIDs walks the tree in preorder, writing each node's ID
// before recursing into its children with that ID as the parent path.
// It is the only mutating operation in the core: the tree reachable
// from root is owned by the call for its duration.
func AssignNodeIDs(root *domain.Node) {
	assignIDs(root, "")
}

func assignIDs(n *domain.Node, parentPath string) {
	n.ID = GenerateNodeID(n, parentPath)
	for i := range n.Children {
		assignIDs(&n.Children[i], n.ID)
	}
}
