package domain

// Viewport describes the browser viewport the capture was taken in.
type Viewport struct {
	// WPx is the viewport width in pixels.
	WPx float64 `json:"w_px"`

	// HPx is the viewport height in pixels.
	HPx float64 `json:"h_px"`

	// Aspect is the width/height ratio.
	Aspect float64 `json:"aspect"`

	// ScrollY01 is the vertical scroll position normalised to [0, 1].
	ScrollY01 *float64 `json:"scroll_y01,omitempty"`
}

// CompilerInfo identifies the capture tool that produced a capture.
type CompilerInfo struct {
	// Name is the capture tool name, conventionally "websketch-ir".
	Name string `json:"name"`

	// Version is the capture tool version.
	Version string `json:"version"`

	// OptionsHash is a digest of the capture options in effect.
	OptionsHash string `json:"options_hash"`
}

// Capture is a full serialized snapshot of a web page as IR.
// Captures are immutable values produced by an external capture tool;
// fingerprints and diffs are pure functions of them. The only mutating
// operation in the core is content-addressed ID assignment.
type Capture struct {
	// Version is the schema version, a member of the supported set.
	Version string `json:"version"`

	// URL is the page address at capture time.
	URL string `json:"url"`

	// TimestampMS is the capture time in Unix milliseconds. Carried
	// as a float64 because it arrives as a JSON number.
	TimestampMS float64 `json:"timestamp_ms"`

	// Viewport describes the browser viewport.
	Viewport Viewport `json:"viewport"`

	// Compiler identifies the capture tool.
	Compiler CompilerInfo `json:"compiler"`

	// Root is the top of the node tree, conventionally a PAGE node
	// (not enforced).
	Root Node `json:"root"`
}

// NodeCount returns the total number of nodes in the capture tree.
func (c *Capture) NodeCount() int {
	return countNodes(&c.Root)
}

func countNodes(n *Node) int {
	total := 1
	for i := range n.Children {
		total += countNodes(&n.Children[i])
	}
	return total
}
