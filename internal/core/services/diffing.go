package services

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/ports/driving"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/diffing"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/logger"
)

// Ensure DiffService implements the interface.
var _ driving.DiffService = (*DiffService)(nil)

// DiffService computes explainable differences between captures.
type DiffService struct{}

// NewDiffService creates a new diff service.
func NewDiffService() *DiffService {
	return &DiffService{}
}

// Diff compares two validated captures.
func (s *DiffService) Diff(a, b *domain.Capture, opts domain.DiffOptions) (*domain.DiffResult, error) {
	logger.Section("Diff")

	result, err := diffing.Diff(a, b, opts)
	if err != nil {
		logger.Warn("Diff failed: %v", err)
		return nil, err
	}

	logger.Debug("Diff: %d change(s), identical=%t, nodes %d -> %d",
		len(result.Changes), result.Summary.Identical,
		result.Summary.NodeCountA, result.Summary.NodeCountB)
	return result, nil
}
