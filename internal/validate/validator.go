package validate

import (
	"encoding/json"
	"fmt"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// maxIssues caps the issue list; collection stops entirely once the
// count exceeds it.
const maxIssues = 100

// Limit messages. Parse matches on these to classify a validation
// failure as WS_LIMIT_EXCEEDED.
const (
	MsgNodeLimitExceeded  = "node count limit exceeded"
	MsgDepthLimitExceeded = "depth limit exceeded"
)

// receivedUndefined renders an absent value in an issue.
const receivedUndefined = "undefined"

// Capture validates an arbitrary parsed JSON value against the capture
// schema and the given limits. It never fails: every finding is
// accumulated as a path-qualified issue and the full list is returned.
// A zero Limits field falls back to its default.
func Capture(value any, limits domain.Limits) []domain.Issue {
	w := &walker{limits: withDefaults(limits)}
	w.capture(value)
	return w.issues
}

func withDefaults(l domain.Limits) domain.Limits {
	if l.MaxNodes <= 0 {
		l.MaxNodes = domain.DefaultMaxNodes
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = domain.DefaultMaxDepth
	}
	if l.MaxStringLength <= 0 {
		l.MaxStringLength = domain.DefaultMaxStringLength
	}
	return l
}

// renderReceived is the JSON rendering of a found value, so that a
// string "99.0" reports as "\"99.0\"".
func renderReceived(value any, present bool) string {
	if !present {
		return receivedUndefined
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}

type walker struct {
	limits    domain.Limits
	issues    []domain.Issue
	nodeCount int
}

func (w *walker) add(path, expected, message string, value any, present bool) {
	if len(w.issues) > maxIssues {
		return
	}
	w.issues = append(w.issues, domain.Issue{
		Path:     path,
		Expected: expected,
		Received: renderReceived(value, present),
		Message:  message,
	})
}

// requireString checks an object member is a present string and
// reports an issue otherwise. The value is returned with ok=true only
// when valid.
func (w *walker) requireString(obj map[string]any, key, path string) (string, bool) {
	v, present := obj[key]
	s, ok := v.(string)
	if !present || !ok {
		w.add(path, "string", key+" must be a string", v, present)
		return "", false
	}
	return s, true
}

// requireNumber checks an object member is a present JSON number.
func (w *walker) requireNumber(obj map[string]any, key, path string) (float64, bool) {
	v, present := obj[key]
	f, ok := v.(float64)
	if !present || !ok {
		w.add(path, "number", key+" must be a number", v, present)
		return 0, false
	}
	return f, true
}

// requireBool checks an object member is a present boolean.
func (w *walker) requireBool(obj map[string]any, key, path string) {
	v, present := obj[key]
	if _, ok := v.(bool); !present || !ok {
		w.add(path, "boolean", key+" must be a boolean", v, present)
	}
}

func (w *walker) capture(value any) {
	obj, ok := value.(map[string]any)
	if !ok {
		w.add("", "object", "capture must be a JSON object", value, value != nil)
		return
	}

	if version, ok := w.requireString(obj, "version", "version"); ok {
		if !domain.IsSupportedSchemaVersion(version) {
			w.add("version", supportedVersionsLabel(),
				"unsupported schema version", version, true)
		}
	}

	w.requireString(obj, "url", "url")
	w.requireNumber(obj, "timestamp_ms", "timestamp_ms")

	viewport, present := obj["viewport"]
	if vp, ok := viewport.(map[string]any); present && ok {
		w.requireNumber(vp, "w_px", "viewport.w_px")
		w.requireNumber(vp, "h_px", "viewport.h_px")
		w.requireNumber(vp, "aspect", "viewport.aspect")
	} else {
		w.add("viewport", "object", "viewport must be an object", viewport, present)
	}

	compiler, present := obj["compiler"]
	if cp, ok := compiler.(map[string]any); present && ok {
		w.requireString(cp, "name", "compiler.name")
		w.requireString(cp, "version", "compiler.version")
		w.requireString(cp, "options_hash", "compiler.options_hash")
	} else {
		w.add("compiler", "object", "compiler must be an object", compiler, present)
	}

	root, present := obj["root"]
	if !present {
		w.add("root", "object", "root node is required", nil, false)
		return
	}
	w.node(root, "root", 1)
}

// node validates a single tree node in preorder. Limit breaches are
// reported and stop recursion into the subtree, but never abort the
// walk of siblings already reached.
func (w *walker) node(value any, path string, depth int) {
	if len(w.issues) > maxIssues {
		return
	}

	w.nodeCount++
	if w.nodeCount > w.limits.MaxNodes {
		w.add(path, fmt.Sprintf("at most %d nodes", w.limits.MaxNodes),
			MsgNodeLimitExceeded, w.nodeCount, true)
		return
	}
	if depth > w.limits.MaxDepth {
		w.add(path, fmt.Sprintf("depth at most %d", w.limits.MaxDepth),
			MsgDepthLimitExceeded, depth, true)
		return
	}

	obj, ok := value.(map[string]any)
	if !ok {
		w.add(path, "object", "node must be a JSON object", value, value != nil)
		return
	}

	if role, ok := w.requireString(obj, "role", path+".role"); ok {
		if !domain.Role(role).IsValid() {
			w.add(path+".role", "a valid role", "unknown role", role, true)
		}
	}

	w.bbox(obj, path)
	w.requireBool(obj, "interactive", path+".interactive")
	w.requireBool(obj, "visible", path+".visible")
	w.requireString(obj, "id", path+".id")

	if text, present := obj["text"]; present {
		ts, ok := text.(map[string]any)
		if !ok {
			w.add(path+".text", "object", "text must be an object", text, true)
		} else {
			w.requireString(ts, "kind", path+".text.kind")
		}
	}

	if children, present := obj["children"]; present {
		list, ok := children.([]any)
		if !ok {
			w.add(path+".children", "array", "children must be an array", children, true)
			return
		}
		for i, child := range list {
			w.node(child, fmt.Sprintf("%s.children[%d]", path, i), depth+1)
		}
	}
}

func (w *walker) bbox(obj map[string]any, path string) {
	v, present := obj["bbox"]
	list, ok := v.([]any)
	if !present || !ok {
		w.add(path+".bbox", "array of 4 numbers", "bbox must be an array", v, present)
		return
	}
	if len(list) != 4 {
		w.add(path+".bbox", "array of 4 numbers",
			"bbox must have exactly 4 elements", v, true)
		return
	}
	for i, elem := range list {
		if _, ok := elem.(float64); !ok {
			w.add(fmt.Sprintf("%s.bbox[%d]", path, i), "number",
				"bbox element must be a number", elem, true)
		}
	}
}

func supportedVersionsLabel() string {
	raw, _ := json.Marshal(domain.SupportedSchemaVersions)
	return "one of " + string(raw)
}
