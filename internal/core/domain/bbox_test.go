package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBBox01_Accessors(t *testing.T) {
	b := BBox01{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, 0.1, b.X())
	assert.Equal(t, 0.2, b.Y())
	assert.Equal(t, 0.3, b.W())
	assert.Equal(t, 0.4, b.H())
	assert.InDelta(t, 0.12, b.Area(), 1e-12)
}

func TestBBox01_Quantize(t *testing.T) {
	tests := []struct {
		name string
		in   BBox01
		want BBox01
	}{
		{"exact multiples unchanged", BBox01{0.1, 0.2, 0.3, 0.4}, BBox01{0.1, 0.2, 0.3, 0.4}},
		{"half rounds away from zero", BBox01{0.0005, 0, 0, 0}, BBox01{0.001, 0, 0, 0}},
		{"sub-half rounds down", BBox01{0.0004, 0, 0, 0}, BBox01{0, 0, 0, 0}},
		{"jitter collapses", BBox01{0.5001, 0.4999, 0.25004, 0.25996}, BBox01{0.5, 0.5, 0.25, 0.26}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Quantize(BBoxQuantStep)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9, "component %d", i)
			}
		})
	}
}

func TestBBox01_Quantize_NonPositiveStep(t *testing.T) {
	b := BBox01{0.1234, 0.5678, 0.9, 0.1}
	assert.Equal(t, b, b.Quantize(0))
	assert.Equal(t, b, b.Quantize(-1))
}

func TestBBox01_Format(t *testing.T) {
	b := BBox01{0, 0, 1, 1}
	assert.Equal(t, "0.000,0.000,1.000,1.000", b.Format(3))

	q := BBox01{0.5201, 0.4, 0.25, 0.06}.Quantize(BBoxQuantStep)
	assert.Equal(t, "0.520,0.400,0.250,0.060", q.Format(3))
}

func TestBBox01_IoU(t *testing.T) {
	a := BBox01{0, 0, 0.5, 0.5}

	t.Run("identical boxes", func(t *testing.T) {
		assert.InDelta(t, 1.0, a.IoU(a), 1e-12)
	})

	t.Run("disjoint boxes", func(t *testing.T) {
		b := BBox01{0.6, 0.6, 0.3, 0.3}
		assert.Equal(t, 0.0, a.IoU(b))
	})

	t.Run("half-offset overlap", func(t *testing.T) {
		b := BBox01{0.25, 0, 0.5, 0.5}
		assert.InDelta(t, 1.0/3.0, a.IoU(b), 1e-12)
	})

	t.Run("zero-area boxes", func(t *testing.T) {
		z := BBox01{0.1, 0.1, 0, 0}
		assert.Equal(t, 0.0, z.IoU(z))
	})

	t.Run("symmetry", func(t *testing.T) {
		b := BBox01{0.25, 0.1, 0.5, 0.5}
		assert.Equal(t, a.IoU(b), b.IoU(a))
	})
}
