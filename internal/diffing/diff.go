package diffing

import (
	"math"
	"sort"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/fingerprint"
)

// Diff computes the full structural difference between two captures.
// Zero or negative numeric option fields fall back to their defaults;
// the IncludeText and IncludeName flags are used as given. Both captures are
// presumed validated; Diff fails only on nil input.
func Diff(a, b *domain.Capture, opts domain.DiffOptions) (*domain.DiffResult, error) {
	if a == nil || b == nil {
		return nil, &domain.Error{
			Code:    domain.CodeInvalidArgs,
			Message: "diff requires two non-nil captures",
		}
	}
	opts = withDefaults(opts)

	hashOpts := domain.HashOptions{
		IncludeText: opts.IncludeText,
		IncludeName: opts.IncludeName,
	}
	flatA := flatten(&a.Root, hashOpts)
	flatB := flatten(&b.Root, hashOpts)

	p := match(flatA, flatB, opts.MatchThreshold)

	var changes []domain.Change
	for i := range flatA {
		j, matched := p.pairs[i]
		if !matched {
			changes = append(changes, domain.Change{
				Type:  domain.ChangeRemoved,
				NodeA: flatA[i].Node,
				PathA: flatA[i].Path,
			})
			continue
		}
		changes = append(changes, classifyPair(flatA[i], flatB[j], opts)...)
	}
	for j := range flatB {
		if !p.matchedB[j] {
			changes = append(changes, domain.Change{
				Type:  domain.ChangeAdded,
				NodeB: flatB[j].Node,
				PathB: flatB[j].Path,
			})
		}
	}

	result := &domain.DiffResult{
		Changes:    changes,
		TopChanges: rank(changes, opts.TopChangesLimit),
		Summary:    summarise(a, b, changes, len(flatA), len(flatB)),
		Metadata: domain.DiffMetadata{
			URLChanged: a.URL != b.URL,
			ViewportChanged: a.Viewport.WPx != b.Viewport.WPx ||
				a.Viewport.HPx != b.Viewport.HPx,
			CompilerVersionMatch: a.Compiler.Version == b.Compiler.Version,
		},
	}
	return result, nil
}

func withDefaults(opts domain.DiffOptions) domain.DiffOptions {
	defaults := domain.DefaultDiffOptions()
	if opts.MatchThreshold <= 0 {
		opts.MatchThreshold = defaults.MatchThreshold
	}
	if opts.TopChangesLimit <= 0 {
		opts.TopChangesLimit = defaults.TopChangesLimit
	}
	if opts.MoveThreshold <= 0 {
		opts.MoveThreshold = defaults.MoveThreshold
	}
	if opts.ResizeThreshold <= 0 {
		opts.ResizeThreshold = defaults.ResizeThreshold
	}
	return opts
}

// classifyPair emits every change detected on a matched pair.
func classifyPair(a, b flatNode, opts domain.DiffOptions) []domain.Change {
	var changes []domain.Change

	delta := domain.BoxDelta{
		DX: b.Node.BBox[0] - a.Node.BBox[0],
		DY: b.Node.BBox[1] - a.Node.BBox[1],
		DW: b.Node.BBox[2] - a.Node.BBox[2],
		DH: b.Node.BBox[3] - a.Node.BBox[3],
	}

	pair := func(t domain.ChangeType, withDelta bool) domain.Change {
		c := domain.Change{
			Type:  t,
			NodeA: a.Node,
			NodeB: b.Node,
			PathA: a.Path,
			PathB: b.Path,
		}
		if withDelta {
			d := delta
			c.Delta = &d
		}
		return c
	}

	if math.Abs(delta.DX) > opts.MoveThreshold || math.Abs(delta.DY) > opts.MoveThreshold {
		changes = append(changes, pair(domain.ChangeMoved, true))
	}
	if math.Abs(delta.DW) > opts.ResizeThreshold || math.Abs(delta.DH) > opts.ResizeThreshold {
		changes = append(changes, pair(domain.ChangeResized, true))
	}
	if a.Node.Role != b.Node.Role {
		changes = append(changes, pair(domain.ChangeRoleChanged, false))
	}
	if opts.IncludeText && textHash(a.Node) != textHash(b.Node) {
		changes = append(changes, pair(domain.ChangeTextChanged, false))
	}
	if a.Node.Interactive != b.Node.Interactive {
		changes = append(changes, pair(domain.ChangeInteractiveChanged, false))
	}
	if len(a.Node.Children) != len(b.Node.Children) {
		changes = append(changes, pair(domain.ChangeChildrenChanged, false))
	}

	return changes
}

func textHash(n *domain.Node) string {
	if n.Text == nil {
		return ""
	}
	return n.Text.Hash
}

// rank orders changes by the area of the affected node, preferring the
// A side, and keeps the top limit entries. The input slice is left in
// detection order.
func rank(changes []domain.Change, limit int) []domain.Change {
	ranked := make([]domain.Change, len(changes))
	copy(ranked, changes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return changeArea(ranked[i]) > changeArea(ranked[j])
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func changeArea(c domain.Change) float64 {
	if c.NodeA != nil {
		return c.NodeA.BBox.Area()
	}
	if c.NodeB != nil {
		return c.NodeB.BBox.Area()
	}
	return 0
}

func summarise(a, b *domain.Capture, changes []domain.Change, countA, countB int) domain.DiffSummary {
	var counts domain.DiffCounts
	for _, c := range changes {
		switch c.Type {
		case domain.ChangeAdded:
			counts.Added++
		case domain.ChangeRemoved:
			counts.Removed++
		case domain.ChangeMoved:
			counts.Moved++
		case domain.ChangeResized:
			counts.Resized++
		case domain.ChangeTextChanged:
			counts.TextChanged++
		case domain.ChangeInteractiveChanged:
			counts.InteractiveChanged++
		case domain.ChangeRoleChanged:
			counts.RoleChanged++
		case domain.ChangeChildrenChanged:
			counts.ChildrenChanged++
		}
	}

	return domain.DiffSummary{
		Counts:                  counts,
		Identical:               len(changes) == 0,
		FingerprintsMatch:       fingerprint.Capture(a) == fingerprint.Capture(b),
		LayoutFingerprintsMatch: fingerprint.Layout(a) == fingerprint.Layout(b),
		NodeCountA:              countA,
		NodeCountB:              countB,
	}
}
