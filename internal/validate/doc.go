// Package validate checks parsed capture values against the IR schema
// and resource limits, and provides the strict parse entry point.
//
// Validation never fails: it walks the value in preorder, accumulates
// path-qualified issues, and returns them. Parsing is strict: it runs
// the validator and classifies any findings into the most specific
// error code, with the priority version > limit > general.
package validate
