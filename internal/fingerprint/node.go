package fingerprint

import (
	"strconv"
	"strings"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/textsig"
)

// bboxPrecision is the fractional digit count of the bbox string that
// enters the shallow hash. It matches the quantisation step.
const bboxPrecision = 3

// digestPrefixLen truncates text and name digests inside the shallow
// record, keeping the record compact while preserving stability.
const digestPrefixLen = 16

func boolBit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// HashNodeShallow digests a single node without its children. The
// record is a stable, ordered serialisation of the quantized bounding
// box, the role, the boolean flags, and the optional signals selected
// by opts; optional fields enter only when present, so the record is a
// deterministic function of presence.
func HashNodeShallow(n *domain.Node, opts domain.HashOptions) string {
	q := n.BBox.Quantize(domain.BBoxQuantStep)

	parts := make([]string, 0, 9)
	parts = append(parts,
		"r:"+string(n.Role),
		"b:"+q.Format(bboxPrecision),
		"i:"+boolBit(n.Interactive),
		"v:"+boolBit(n.Visible),
	)
	if n.Enabled != nil {
		parts = append(parts, "e:"+boolBit(*n.Enabled))
	}
	if n.Semantic != "" {
		parts = append(parts, "s:"+n.Semantic)
	}
	if opts.IncludeText && n.Text != nil && n.Text.Hash != "" {
		parts = append(parts, "t:"+prefix(n.Text.Hash, digestPrefixLen))
	}
	if opts.IncludeName && n.NameHash != "" {
		parts = append(parts, "n:"+prefix(n.NameHash, digestPrefixLen))
	}
	if opts.IncludeZ && n.Z != nil {
		parts = append(parts, "z:"+strconv.Itoa(*n.Z))
	}

	return textsig.HashSync(strings.Join(parts, "|"))
}

// HashNodeDeep digests a node including all of its descendants, over a
// canonical sibling order. For a leaf it equals HashNodeShallow.
func HashNodeDeep(n *domain.Node, opts domain.HashOptions) string {
	shallow := HashNodeShallow(n, opts)
	if len(n.Children) == 0 {
		return shallow
	}

	order := canonicalOrder(n.Children)
	childHashes := make([]string, len(order))
	for i, idx := range order {
		childHashes[i] = HashNodeDeep(&n.Children[idx], opts)
	}

	return textsig.HashSync(shallow + "|c:[" + strings.Join(childHashes, ",") + "]")
}

// canonicalOrder returns sibling indices ordered by quantized (y, x):
// primary key y, but two y-values within BBoxQuantStep of each other
// compare equal and fall through to x. The comparator is applied with
// an insertion walk rather than a library sort; the tolerance makes it
// a non-strict ordering. The walk is stable: siblings that compare
// equal (same row, same x) keep their input order, as can rows that
// the tolerance links intransitively.
func canonicalOrder(children []domain.Node) []int {
	quantized := make([]domain.BBox01, len(children))
	for i := range children {
		quantized[i] = children[i].BBox.Quantize(domain.BBoxQuantStep)
	}

	// Quantized values sit on the step grid, but a one-step difference
	// can land a hair above BBoxQuantStep in floating point; the slack
	// keeps it inside the tolerance.
	rowTolerance := domain.BBoxQuantStep * (1 + 1e-6)

	before := func(a, b int) bool {
		dy := quantized[a][1] - quantized[b][1]
		if dy >= -rowTolerance && dy <= rowTolerance {
			return quantized[a][0] < quantized[b][0]
		}
		return dy < 0
	}

	order := make([]int, len(children))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && before(order[j], order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}
