package services

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/ports/driving"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/render"
)

// Ensure RenderService implements the interface.
var _ driving.RenderService = (*RenderService)(nil)

// RenderService paints captures for human inspection.
type RenderService struct {
	renderer *render.Renderer
}

// NewRenderService creates a render service with the given renderer
// options.
func NewRenderService(opts ...render.Option) *RenderService {
	return &RenderService{renderer: render.New(opts...)}
}

// RenderASCII returns a character-grid rendering of the capture.
func (s *RenderService) RenderASCII(c *domain.Capture) string {
	return s.renderer.Render(c)
}
