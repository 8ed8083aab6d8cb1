package domain

// ChangeType classifies a single difference between two captures.
type ChangeType string

// Available change types.
const (
	// ChangeAdded is a node present only in the newer capture.
	ChangeAdded ChangeType = "added"

	// ChangeRemoved is a node present only in the older capture.
	ChangeRemoved ChangeType = "removed"

	// ChangeMoved is a matched node whose position shifted beyond the
	// move threshold.
	ChangeMoved ChangeType = "moved"

	// ChangeResized is a matched node whose size changed beyond the
	// resize threshold.
	ChangeResized ChangeType = "resized"

	// ChangeTextChanged is a matched node whose text digest differs.
	ChangeTextChanged ChangeType = "text_changed"

	// ChangeInteractiveChanged is a matched node whose interactivity
	// flipped.
	ChangeInteractiveChanged ChangeType = "interactive_changed"

	// ChangeRoleChanged is a matched pair with different roles.
	ChangeRoleChanged ChangeType = "role_changed"

	// ChangeChildrenChanged is a matched node whose child count
	// differs.
	ChangeChildrenChanged ChangeType = "children_changed"
)

// IsValid returns true if the change type is recognised.
func (t ChangeType) IsValid() bool {
	switch t {
	case ChangeAdded, ChangeRemoved, ChangeMoved, ChangeResized,
		ChangeTextChanged, ChangeInteractiveChanged, ChangeRoleChanged,
		ChangeChildrenChanged:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ChangeType) String() string {
	return string(t)
}

// BoxDelta is the componentwise bounding-box difference of a matched
// pair, newer minus older.
type BoxDelta struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
	DW float64 `json:"dw"`
	DH float64 `json:"dh"`
}

// Change is a single classified difference.
type Change struct {
	// Type classifies the change.
	Type ChangeType `json:"type"`

	// NodeA is the node in the older capture, nil for additions.
	NodeA *Node `json:"node_a,omitempty"`

	// NodeB is the node in the newer capture, nil for removals.
	NodeB *Node `json:"node_b,omitempty"`

	// PathA is the role trail of NodeA.
	PathA string `json:"path_a,omitempty"`

	// PathB is the role trail of NodeB.
	PathB string `json:"path_b,omitempty"`

	// Delta is the bounding-box difference for moved and resized
	// changes.
	Delta *BoxDelta `json:"delta,omitempty"`
}

// DiffOptions configures a diff run.
type DiffOptions struct {
	// IncludeText enables text digest comparison.
	IncludeText bool

	// IncludeName folds name digests into the node hashes used for
	// flattening.
	IncludeName bool

	// MatchThreshold is the minimum weighted similarity for a
	// candidate pair.
	MatchThreshold float64

	// TopChangesLimit caps the ranked TopChanges list.
	TopChangesLimit int

	// MoveThreshold is the positional delta, as a fraction of the
	// viewport, above which a matched node counts as moved.
	MoveThreshold float64

	// ResizeThreshold is the size delta above which a matched node
	// counts as resized.
	ResizeThreshold float64
}

// DefaultDiffOptions returns the documented diff defaults.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{
		IncludeText:     true,
		IncludeName:     true,
		MatchThreshold:  0.5,
		TopChangesLimit: 10,
		MoveThreshold:   0.01,
		ResizeThreshold: 0.01,
	}
}

// DiffCounts tallies changes by type.
type DiffCounts struct {
	Added              int `json:"added"`
	Removed            int `json:"removed"`
	Moved              int `json:"moved"`
	Resized            int `json:"resized"`
	TextChanged        int `json:"text_changed"`
	InteractiveChanged int `json:"interactive_changed"`
	RoleChanged        int `json:"role_changed"`
	ChildrenChanged    int `json:"children_changed"`
}

// DiffSummary aggregates a diff run.
type DiffSummary struct {
	// Counts tallies changes by type.
	Counts DiffCounts `json:"counts"`

	// Identical is true when no changes were detected.
	Identical bool `json:"identical"`

	// FingerprintsMatch compares the full capture fingerprints.
	FingerprintsMatch bool `json:"fingerprints_match"`

	// LayoutFingerprintsMatch compares the layout-only fingerprints.
	LayoutFingerprintsMatch bool `json:"layout_fingerprints_match"`

	// NodeCountA is the node count of the older capture.
	NodeCountA int `json:"node_count_a"`

	// NodeCountB is the node count of the newer capture.
	NodeCountB int `json:"node_count_b"`
}

// DiffMetadata compares capture envelopes rather than trees.
type DiffMetadata struct {
	// URLChanged is true when the capture URLs differ.
	URLChanged bool `json:"url_changed"`

	// ViewportChanged is true when the pixel viewport sizes differ.
	ViewportChanged bool `json:"viewport_changed"`

	// CompilerVersionMatch is true when both captures came from the
	// same compiler version.
	CompilerVersionMatch bool `json:"compiler_version_match"`
}

// DiffResult is the full outcome of diffing two captures.
type DiffResult struct {
	// Changes lists every classified change in detection order.
	Changes []Change `json:"changes"`

	// TopChanges ranks the largest-area changes, capped by
	// TopChangesLimit.
	TopChanges []Change `json:"top_changes"`

	// Summary aggregates the run.
	Summary DiffSummary `json:"summary"`

	// Metadata compares the capture envelopes.
	Metadata DiffMetadata `json:"metadata"`
}
