package services

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/ports/driving"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/fingerprint"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/logger"
)

// Ensure FingerprintService implements the interface.
var _ driving.FingerprintService = (*FingerprintService)(nil)

// FingerprintService computes structural digests of captures.
type FingerprintService struct{}

// NewFingerprintService creates a new fingerprint service.
func NewFingerprintService() *FingerprintService {
	return &FingerprintService{}
}

// Fingerprint returns the full capture fingerprint.
func (s *FingerprintService) Fingerprint(c *domain.Capture) string {
	fp := fingerprint.Capture(c)
	logger.Debug("Fingerprint: %s", fp)
	return fp
}

// FingerprintLayout returns the layout-only fingerprint.
func (s *FingerprintService) FingerprintLayout(c *domain.Capture) string {
	fp := fingerprint.Layout(c)
	logger.Debug("Layout fingerprint: %s", fp)
	return fp
}

// AssignIDs writes content-addressed IDs over the tree in preorder.
func (s *FingerprintService) AssignIDs(root *domain.Node) {
	fingerprint.AssignNodeIDs(root)
}
