package diffing

import (
	"sort"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/fingerprint"
)

// crossRoleIoUFloor prunes different-role pairs whose boxes barely
// overlap before the similarity score is computed. Same-role pairs are
// never pruned this way; the asymmetry is intentional.
const crossRoleIoUFloor = 0.3

// candidate is a scored pair of flat-node indices.
type candidate struct {
	a, b  int
	score float64
}

// pairing is the outcome of the greedy matching.
type pairing struct {
	// pairs maps index-in-A to index-in-B for every accepted pair.
	pairs map[int]int

	// matchedB marks B-side indices claimed by a pair.
	matchedB map[int]bool
}

// match generates candidates over the full A x B product, sorts them
// by similarity descending, and greedily accepts pairs whose sides are
// both still free. The sort is stable, so equal scores resolve in
// candidate generation order.
func match(a, b []flatNode, threshold float64) pairing {
	var candidates []candidate
	for i := range a {
		for j := range b {
			if a[i].Node.Role != b[j].Node.Role &&
				a[i].Node.BBox.IoU(b[j].Node.BBox) < crossRoleIoUFloor {
				continue
			}
			s := fingerprint.NodeSimilarity(a[i].Node, b[j].Node)
			if s >= threshold {
				candidates = append(candidates, candidate{a: i, b: j, score: s})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	p := pairing{
		pairs:    make(map[int]int),
		matchedB: make(map[int]bool),
	}
	matchedA := make(map[int]bool)
	for _, c := range candidates {
		if matchedA[c.a] || p.matchedB[c.b] {
			continue
		}
		matchedA[c.a] = true
		p.matchedB[c.b] = true
		p.pairs[c.a] = c.b
	}
	return p
}
