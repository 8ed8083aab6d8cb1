package validate

import (
	"encoding/json"
	"fmt"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// Parse is the strict entry point: it parses serialized capture text,
// validates it, and classifies any findings into the most specific
// error code, with the priority version > limit > general. Unknown
// keys at any level are tolerated for forward compatibility.
func Parse(text string, limits domain.Limits) (*domain.Capture, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, &domain.Error{
			Code:    domain.CodeInvalidJSON,
			Message: "input is not valid JSON",
			Hint:    "check for truncated output or a non-JSON payload",
			Cause:   err,
		}
	}

	issues := Capture(value, limits)
	if err := classify(issues); err != nil {
		return nil, err
	}

	var capture domain.Capture
	if err := json.Unmarshal([]byte(text), &capture); err != nil {
		// The validator accepted the value, so a decode failure is a
		// schema/model mismatch inside the library.
		return nil, &domain.Error{
			Code:    domain.CodeInternal,
			Message: "validated capture failed to decode",
			Cause:   fmt.Errorf("decode capture: %w", err),
		}
	}
	return &capture, nil
}

// classify maps validation issues to the most specific failure.
func classify(issues []domain.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	for _, issue := range issues {
		if issue.Path == "version" && !receivedIsSupported(issue.Received) {
			return &domain.Error{
				Code:     domain.CodeUnsupportedVersion,
				Message:  issue.Message,
				Path:     issue.Path,
				Expected: issue.Expected,
				Received: issue.Received,
			}
		}
	}

	for _, issue := range issues {
		if issue.Message == MsgNodeLimitExceeded || issue.Message == MsgDepthLimitExceeded {
			return &domain.Error{
				Code:     domain.CodeLimitExceeded,
				Message:  issue.Message,
				Path:     issue.Path,
				Expected: issue.Expected,
				Received: issue.Received,
			}
		}
	}

	return &domain.Error{
		Code:    domain.CodeInvalidCapture,
		Message: fmt.Sprintf("capture failed validation with %d issue(s)", len(issues)),
		Issues:  issues,
	}
}

// receivedIsSupported compares an issue's JSON-rendered received value
// against the supported version set.
func receivedIsSupported(received string) bool {
	for _, v := range domain.SupportedSchemaVersions {
		quoted, _ := json.Marshal(v)
		if received == string(quoted) {
			return true
		}
	}
	return false
}
