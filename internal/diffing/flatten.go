package diffing

import (
	"fmt"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/fingerprint"
)

// flatNode is one tree node lifted into the flat matching space.
type flatNode struct {
	// Node points into the capture tree.
	Node *domain.Node

	// Depth is the distance from the root, starting at 0.
	Depth int

	// Path is the role trail, e.g. "PAGE/FORM[1]/INPUT[0]".
	Path string

	// Hash is the node's shallow hash under the diff's hash options.
	Hash string
}

// flatten yields the tree in preorder.
func flatten(root *domain.Node, opts domain.HashOptions) []flatNode {
	var out []flatNode
	var walk func(n *domain.Node, depth int, path string)
	walk = func(n *domain.Node, depth int, path string) {
		out = append(out, flatNode{
			Node:  n,
			Depth: depth,
			Path:  path,
			Hash:  fingerprint.HashNodeShallow(n, opts),
		})
		for i := range n.Children {
			child := &n.Children[i]
			walk(child, depth+1, fmt.Sprintf("%s/%s[%d]", path, child.Role, i))
		}
	}
	walk(root, 0, string(root.Role))
	return out
}
