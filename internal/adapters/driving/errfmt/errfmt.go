// Package errfmt renders error envelopes for presentation layers.
// The core never prints; surfaces that surround it (CLIs, servers)
// format failures through this single human formatter.
package errfmt

import (
	"fmt"
	"strings"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// indent prefixes every optional detail line.
const indent = "  "

// Format renders an error as "[CODE] message" with indented optional
// lines for details, path, expected/received, hint, issues, and cause.
// A non-envelope error renders under WS_INTERNAL.
func Format(err error) string {
	e, ok := domain.AsError(err)
	if !ok {
		e = &domain.Error{
			Code:    domain.CodeInternal,
			Message: err.Error(),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)

	if e.Details != "" {
		fmt.Fprintf(&b, "\n%sdetails: %s", indent, e.Details)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, "\n%spath: %s", indent, e.Path)
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, "\n%sexpected: %s", indent, e.Expected)
	}
	if e.Received != "" {
		fmt.Fprintf(&b, "\n%sreceived: %s", indent, e.Received)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\n%shint: %s", indent, e.Hint)
	}
	for _, issue := range e.Issues {
		fmt.Fprintf(&b, "\n%s- %s: %s (expected %s, received %s)",
			indent, issue.Path, issue.Message, issue.Expected, issue.Received)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n%scause: %v", indent, e.Cause)
	}

	return b.String()
}
