package domain

// HashOptions selects which optional signals enter node hashes and
// capture fingerprints.
type HashOptions struct {
	// IncludeText folds text digests into hashes. The layout
	// fingerprint turns this off.
	IncludeText bool

	// IncludeName folds accessibility-name digests into hashes. The
	// layout fingerprint turns this off.
	IncludeName bool

	// IncludeZ folds the coarse z-bucket into hashes. Off by default:
	// z jitter between captures is common.
	IncludeZ bool
}

// DefaultHashOptions returns the options used by the full capture
// fingerprint.
func DefaultHashOptions() HashOptions {
	return HashOptions{
		IncludeText: true,
		IncludeName: true,
		IncludeZ:    false,
	}
}

// LayoutHashOptions returns the options used by the layout-only
// fingerprint: structure and geometry, no content digests.
func LayoutHashOptions() HashOptions {
	return HashOptions{
		IncludeText: false,
		IncludeName: false,
		IncludeZ:    false,
	}
}
