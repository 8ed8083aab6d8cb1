package fingerprint

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// Similarity signal weights. A one-sided semantic adds weight without
// score, which depresses the ratio; the diff match threshold is tuned
// against that behaviour.
const (
	roleWeight        = 3
	bboxWeight        = 2
	interactiveWeight = 1
	semanticWeight    = 2
	textWeight        = 1
)

// NodeSimilarity scores how alike two nodes are, in [0, 1]. The score
// is a weighted sum over role equality, bounding-box overlap,
// interactivity, semantic tags, and text digests, divided by the
// accumulated weight. Signals absent on both sides contribute neither
// score nor weight.
func NodeSimilarity(a, b *domain.Node) float64 {
	score := 0.0
	weight := 0.0

	weight += roleWeight
	if a.Role == b.Role {
		score += roleWeight
	}

	weight += bboxWeight
	score += bboxWeight * a.BBox.IoU(b.BBox)

	weight += interactiveWeight
	if a.Interactive == b.Interactive {
		score += interactiveWeight
	}

	if a.Semantic != "" || b.Semantic != "" {
		weight += semanticWeight
		if a.Semantic != "" && b.Semantic != "" && a.Semantic == b.Semantic {
			score += semanticWeight
		}
	}

	if a.Text != nil && a.Text.Hash != "" && b.Text != nil && b.Text.Hash != "" {
		weight += textWeight
		if a.Text.Hash == b.Text.Hash {
			score += textWeight
		}
	}

	if weight == 0 {
		return 0
	}
	return score / weight
}
