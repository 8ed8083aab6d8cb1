// Package websketch is a compact, viewport-normalised intermediate
// representation of web UI: a tree of semantic primitives annotated
// with bounding boxes in the unit square, plus the three operations
// that make the IR useful to downstream tools - structural
// fingerprinting, explainable diffing, and strict validation and
// parsing of the serialized form.
//
// The core is a pure in-memory library: inputs are already-parsed
// captures or their serialized text; outputs are captures, 8-hex
// fingerprints, structured diff results, and validation issues. All
// operations are synchronous and deterministic; the only mutating
// operation is content-addressed ID assignment.
package websketch

import (
	"context"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/adapters/driven/hashing"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/adapters/driving/errfmt"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/services"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/logger"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/render"
	"github.com/mcp-tool-shop-org/websketch-ir/internal/textsig"
)

// Re-exported IR types. The domain package is the source of truth;
// consumers outside the module use these names.
type (
	Capture      = domain.Capture
	Viewport     = domain.Viewport
	CompilerInfo = domain.CompilerInfo
	Node         = domain.Node
	NodeFlags    = domain.NodeFlags
	BBox01       = domain.BBox01
	Role         = domain.Role
	TextKind     = domain.TextKind
	TextSignal   = domain.TextSignal
	Limits       = domain.Limits
	Issue        = domain.Issue
	Error        = domain.Error
	Code         = domain.Code
	HashOptions  = domain.HashOptions
	DiffOptions  = domain.DiffOptions
	DiffResult   = domain.DiffResult
	DiffSummary  = domain.DiffSummary
	Change       = domain.Change
	ChangeType   = domain.ChangeType
)

// Role vocabulary.
const (
	RolePage       = domain.RolePage
	RoleNav        = domain.RoleNav
	RoleHeader     = domain.RoleHeader
	RoleFooter     = domain.RoleFooter
	RoleSection    = domain.RoleSection
	RoleCard       = domain.RoleCard
	RoleList       = domain.RoleList
	RoleTable      = domain.RoleTable
	RoleModal      = domain.RoleModal
	RoleToast      = domain.RoleToast
	RoleDropdown   = domain.RoleDropdown
	RoleForm       = domain.RoleForm
	RoleInput      = domain.RoleInput
	RoleButton     = domain.RoleButton
	RoleLink       = domain.RoleLink
	RoleCheckbox   = domain.RoleCheckbox
	RoleRadio      = domain.RoleRadio
	RoleIcon       = domain.RoleIcon
	RoleImage      = domain.RoleImage
	RoleText       = domain.RoleText
	RolePagination = domain.RolePagination
	RoleUnknown    = domain.RoleUnknown
)

// Text kinds.
const (
	TextKindNone      = domain.TextKindNone
	TextKindShort     = domain.TextKindShort
	TextKindSentence  = domain.TextKindSentence
	TextKindParagraph = domain.TextKindParagraph
	TextKindMixed     = domain.TextKindMixed
)

// Change types.
const (
	ChangeAdded              = domain.ChangeAdded
	ChangeRemoved            = domain.ChangeRemoved
	ChangeMoved              = domain.ChangeMoved
	ChangeResized            = domain.ChangeResized
	ChangeTextChanged        = domain.ChangeTextChanged
	ChangeInteractiveChanged = domain.ChangeInteractiveChanged
	ChangeRoleChanged        = domain.ChangeRoleChanged
	ChangeChildrenChanged    = domain.ChangeChildrenChanged
)

// Error taxonomy codes.
const (
	CodeInvalidJSON        = domain.CodeInvalidJSON
	CodeInvalidCapture     = domain.CodeInvalidCapture
	CodeUnsupportedVersion = domain.CodeUnsupportedVersion
	CodeLimitExceeded      = domain.CodeLimitExceeded
	CodeInvalidArgs        = domain.CodeInvalidArgs
	CodeNotFound           = domain.CodeNotFound
	CodePermissionDenied   = domain.CodePermissionDenied
	CodeIOError            = domain.CodeIOError
	CodeInternal           = domain.CodeInternal
)

// CurrentSchemaVersion is the schema version written by current
// capture tooling.
const CurrentSchemaVersion = domain.CurrentSchemaVersion

// IsSupportedSchemaVersion reports whether v is an accepted schema
// version.
func IsSupportedSchemaVersion(v string) bool {
	return domain.IsSupportedSchemaVersion(v)
}

// DefaultLimits returns the default validator limits.
func DefaultLimits() Limits {
	return domain.DefaultLimits()
}

// DefaultDiffOptions returns the documented diff defaults.
func DefaultDiffOptions() DiffOptions {
	return domain.DefaultDiffOptions()
}

// Default services backing the package-level operations.
var (
	validationSvc  = services.NewValidationService()
	fingerprintSvc = services.NewFingerprintService()
	diffSvc        = services.NewDiffService()
)

// ParseCapture strictly parses serialized capture text. Failures are
// *Error values carrying the most specific taxonomy code:
// WS_INVALID_JSON, WS_UNSUPPORTED_VERSION, WS_LIMIT_EXCEEDED, or
// WS_INVALID_CAPTURE with the full issue list. A nil limits pointer
// uses the defaults.
func ParseCapture(text string, limits *Limits) (*Capture, error) {
	return validationSvc.Parse(text, limitsOrDefault(limits))
}

// ValidateCapture walks an arbitrary parsed JSON value and returns
// every schema issue found. It never fails.
func ValidateCapture(value any, limits *Limits) []Issue {
	return validationSvc.Validate(value, limitsOrDefault(limits))
}

// FingerprintCapture returns the full structural fingerprint of a
// capture: 8 lowercase hex characters covering structure, geometry,
// and content digests. Stable under sibling reordering and metadata
// changes.
func FingerprintCapture(c *Capture) string {
	return fingerprintSvc.Fingerprint(c)
}

// FingerprintLayout returns the layout-only fingerprint, with text and
// name digests excluded.
func FingerprintLayout(c *Capture) string {
	return fingerprintSvc.FingerprintLayout(c)
}

// AssignNodeIDs writes content-addressed IDs over the tree in
// preorder. It is the only mutating operation in the library; the tree
// is owned by the call for its duration.
func AssignNodeIDs(root *Node) {
	fingerprintSvc.AssignIDs(root)
}

// Diff compares two validated captures and returns the classified
// change list, the area-ranked top changes, a summary with fingerprint
// equality flags, and envelope metadata.
func Diff(a, b *Capture, opts DiffOptions) (*DiffResult, error) {
	return diffSvc.Diff(a, b, opts)
}

// RenderOption configures the ASCII renderer.
type RenderOption = render.Option

// WithRenderSize sets the grid dimensions in characters.
func WithRenderSize(width, height int) RenderOption {
	return render.WithSize(width, height)
}

// WithRenderColour enables ANSI styling of labels and borders.
func WithRenderColour(enabled bool) RenderOption {
	return render.WithColour(enabled)
}

// WithRenderRoleFilter restricts painting to the given roles.
// Interactive leaves always render regardless of the filter.
func WithRenderRoleFilter(roles ...Role) RenderOption {
	return render.WithRoleFilter(roles...)
}

// RenderASCII paints the capture onto a character grid. Options
// configure grid size, colour, and role filtering; the zero-option
// call renders a plain 80x24 ASCII grid.
func RenderASCII(c *Capture, opts ...RenderOption) string {
	return services.NewRenderService(opts...).RenderASCII(c)
}

// NormaliseText canonicalises raw text the way the capture pipeline
// does: invisibles stripped, whitespace collapsed, trimmed,
// lowercased.
func NormaliseText(s string) string {
	return textsig.Normalise(s)
}

// HashSync returns the short structural digest of s: 8 lowercase hex
// characters. It is a stability digest, not a MAC.
func HashSync(s string) string {
	return textsig.HashSync(s)
}

// TextSignalOf summarises raw text as a privacy-preserving signal:
// kind, normalised length, and short digest.
func TextSignalOf(raw string) TextSignal {
	return textsig.Signal(raw)
}

// HashText computes the capture-time SHA-256 digest of the normalised
// form of s. It is provided for capture tools; the fingerprint engine
// never uses it.
func HashText(ctx context.Context, s string) (string, error) {
	return hashing.New().Hash(ctx, s)
}

// AsError extracts a structured *Error from an error chain.
func AsError(err error) (*Error, bool) {
	return domain.AsError(err)
}

// CodeOf returns the taxonomy code of an error, or WS_INTERNAL when
// the error carries no envelope.
func CodeOf(err error) Code {
	return domain.CodeOf(err)
}

// FormatError renders any error as "[CODE] message" with indented
// optional detail lines, for presentation layers.
func FormatError(err error) string {
	return errfmt.Format(err)
}

// SetVerbose enables pipeline tracing on stderr.
func SetVerbose(v bool) {
	logger.SetVerbose(v)
}

func limitsOrDefault(limits *Limits) Limits {
	if limits == nil {
		return domain.DefaultLimits()
	}
	return *limits
}
