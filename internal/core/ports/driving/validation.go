package driving

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// ValidationService checks serialized and parsed captures.
type ValidationService interface {
	// Validate walks an arbitrary parsed JSON value and returns every
	// schema issue found. It never fails.
	Validate(value any, limits domain.Limits) []domain.Issue

	// Parse strictly parses serialized capture text. Failures carry a
	// *domain.Error with the most specific taxonomy code.
	Parse(text string, limits domain.Limits) (*domain.Capture, error)
}
