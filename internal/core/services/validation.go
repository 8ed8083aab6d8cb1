package services

import (
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/ports/driving"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/logger"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/validate"
)

// Ensure ValidationService implements the interface.
var _ driving.ValidationService = (*ValidationService)(nil)

// ValidationService checks serialized and parsed captures against the
// schema and resource limits.
type ValidationService struct{}

// NewValidationService creates a new validation service.
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// Validate walks a parsed JSON value and returns every issue found.
func (s *ValidationService) Validate(value any, limits domain.Limits) []domain.Issue {
	logger.Section("Validation")
	issues := validate.Capture(value, limits)
	logger.Debug("Validation: %d issue(s)", len(issues))
	return issues
}

// Parse strictly parses serialized capture text.
func (s *ValidationService) Parse(text string, limits domain.Limits) (*domain.Capture, error) {
	logger.Section("Strict Parse")
	logger.Debug("Input: %d bytes", len(text))

	capture, err := validate.Parse(text, limits)
	if err != nil {
		logger.Warn("Parse failed: %v", err)
		return nil, err
	}

	logger.Info("Parsed capture: %d node(s), version %s",
		capture.NodeCount(), capture.Version)
	return capture, nil
}
