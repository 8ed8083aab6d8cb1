// Package render paints a capture onto a fixed-size character grid
// for human inspection. Container roles are drawn as boxes with a
// compact [ROLE:semantic] label; higher-priority roles overwrite lower
// ones, so overlays float over page structure. Interactive leaves are
// always rendered regardless of the role filter.
//
// The plain mode returns pure ASCII. An optional colour mode styles
// labels and borders per role class with lipgloss.
package render
