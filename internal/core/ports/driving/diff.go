package driving

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// DiffService computes explainable differences between captures.
type DiffService interface {
	// Diff compares two validated captures and returns the classified
	// change list, ranking, summary, and metadata.
	Diff(a, b *domain.Capture, opts domain.DiffOptions) (*domain.DiffResult, error)
}
