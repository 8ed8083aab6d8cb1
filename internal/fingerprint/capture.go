package fingerprint

import (
	"strconv"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/textsig"
)

// aspectPrecision rounds the viewport aspect ratio to two decimals so
// minor viewport-size noise does not perturb the fingerprint.
const aspectPrecision = 2

// Capture computes the full fingerprint of a capture: the deep hash of
// the root combined with the rounded viewport aspect ratio. It is
// independent of timestamp_ms, url, and compiler fields.
func Capture(c *domain.Capture) string {
	return fingerprint(c, domain.DefaultHashOptions())
}

// Layout computes the layout-only fingerprint: the same digest with
// text and name hashes excluded. Two captures that differ only in text
// content share a layout fingerprint.
func Layout(c *domain.Capture) string {
	return fingerprint(c, domain.LayoutHashOptions())
}

func fingerprint(c *domain.Capture, opts domain.HashOptions) string {
	aspect := strconv.FormatFloat(c.Viewport.Aspect, 'f', aspectPrecision, 64)
	return textsig.HashSync(HashNodeDeep(&c.Root, opts) + "|a:" + aspect)
}
