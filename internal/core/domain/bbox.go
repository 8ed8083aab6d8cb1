package domain

import (
	"math"
	"strconv"
	"strings"
)

// BBox01 is a rectangle in viewport-normalised coordinates.
// Components are (x, y, w, h) with (0, 0) at the top-left of the
// viewport. Values are expected in [0, 1]; bounds outside the unit
// square are not rejected but behaviour is defined only within it.
// Zero width or height is legal (a zero-area affordance).
type BBox01 [4]float64

// X returns the left edge.
func (b BBox01) X() float64 { return b[0] }

// Y returns the top edge.
func (b BBox01) Y() float64 { return b[1] }

// W returns the width.
func (b BBox01) W() float64 { return b[2] }

// H returns the height.
func (b BBox01) H() float64 { return b[3] }

// Area returns w*h.
func (b BBox01) Area() float64 {
	return b[2] * b[3]
}

// Quantize rounds each component to the nearest multiple of step using
// half-away-from-zero rounding. This suppresses subpixel jitter before
// hashing and sibling ordering. A non-positive step returns the box
// unchanged.
func (b BBox01) Quantize(step float64) BBox01 {
	if step <= 0 {
		return b
	}
	var q BBox01
	for i, v := range b {
		r := math.Round(v/step) * step
		if r == 0 {
			// Normalise -0 so formatting is sign-free.
			r = 0
		}
		q[i] = r
	}
	return q
}

// Format renders the box with a fixed number of fractional digits per
// component, joined by commas. This is the exact representation that
// enters the shallow node hash.
func (b BBox01) Format(precision int) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.FormatFloat(v, 'f', precision, 64)
	}
	return strings.Join(parts, ",")
}

// IoU returns the intersection-over-union of two boxes, in [0, 1].
// A zero union yields 0.
func (b BBox01) IoU(o BBox01) float64 {
	ix := math.Max(0, math.Min(b[0]+b[2], o[0]+o[2])-math.Max(b[0], o[0]))
	iy := math.Max(0, math.Min(b[1]+b[3], o[1]+o[3])-math.Max(b[1], o[1]))
	intersection := ix * iy
	union := b.Area() + o.Area() - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}
