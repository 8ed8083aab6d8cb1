package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

func minimalCapture() *domain.Capture {
	return &domain.Capture{
		Version:     "0.1",
		URL:         "https://example.com",
		TimestampMS: 1700000000000,
		Viewport:    domain.Viewport{WPx: 1920, HPx: 1080, Aspect: 1920.0 / 1080.0},
		Compiler:    domain.CompilerInfo{Name: "websketch-ir", Version: "0.2.1", OptionsHash: "test"},
		Root: domain.Node{
			Role:    domain.RolePage,
			BBox:    domain.BBox01{0, 0, 1, 1},
			Visible: true,
		},
	}
}

func TestCapture_Golden(t *testing.T) {
	assert.Equal(t, "29338a9f", Capture(minimalCapture()))
}

func TestCapture_Idempotent(t *testing.T) {
	c := minimalCapture()
	assert.Equal(t, Capture(c), Capture(c))
	assert.Equal(t, Layout(c), Layout(c))
}

func TestCapture_MetadataStability(t *testing.T) {
	base := Capture(minimalCapture())

	c := minimalCapture()
	c.URL = "https://example.org/other"
	c.TimestampMS = 1800000000000
	c.Compiler.Version = "9.9.9"
	c.Compiler.OptionsHash = "different"

	assert.Equal(t, base, Capture(c))
	assert.Equal(t, Layout(minimalCapture()), Layout(c))
}

func TestCapture_AspectRounding(t *testing.T) {
	a := minimalCapture()
	b := minimalCapture()
	// 1918/1080 and 1920/1080 both round to aspect 1.78.
	a.Viewport.Aspect = 1918.0 / 1080.0
	assert.Equal(t, Capture(b), Capture(a))

	// A visibly different aspect perturbs the fingerprint.
	a.Viewport.Aspect = 0.75
	assert.NotEqual(t, Capture(b), Capture(a))
}

func TestCapture_Sensitivity(t *testing.T) {
	base := Capture(minimalCapture())

	t.Run("role change", func(t *testing.T) {
		c := minimalCapture()
		c.Root.Role = domain.RoleSection
		assert.NotEqual(t, base, Capture(c))
	})

	t.Run("bbox shift beyond quant step", func(t *testing.T) {
		c := minimalCapture()
		c.Root.BBox = domain.BBox01{0.002, 0, 1, 1}
		assert.NotEqual(t, base, Capture(c))
	})

	t.Run("interactive flip", func(t *testing.T) {
		c := minimalCapture()
		c.Root.Interactive = true
		assert.NotEqual(t, base, Capture(c))
	})

	t.Run("text hash change", func(t *testing.T) {
		c := minimalCapture()
		c.Root.Text = &domain.TextSignal{Kind: domain.TextKindShort, Hash: "aaaa0000"}
		assert.NotEqual(t, base, Capture(c))
	})
}

func TestLayout_InsensitiveToTextAndName(t *testing.T) {
	a := minimalCapture()
	a.Root.Text = &domain.TextSignal{Kind: domain.TextKindShort, Hash: "first"}
	a.Root.NameHash = "name_one"

	b := minimalCapture()
	b.Root.Text = &domain.TextSignal{Kind: domain.TextKindShort, Hash: "second"}
	b.Root.NameHash = "name_two"

	assert.Equal(t, Layout(a), Layout(b))
	assert.NotEqual(t, Capture(a), Capture(b))
}

func TestHashes_AreEightLowercaseHex(t *testing.T) {
	c := minimalCapture()
	assert.Regexp(t, `^[0-9a-f]{8}$`, Capture(c))
	assert.Regexp(t, `^[0-9a-f]{8}$`, Layout(c))
}
