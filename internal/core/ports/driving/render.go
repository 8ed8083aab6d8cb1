package driving

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// RenderService paints captures for human inspection.
type RenderService interface {
	// RenderASCII returns a fixed-size character-grid rendering of
	// the capture.
	RenderASCII(c *domain.Capture) string
}
