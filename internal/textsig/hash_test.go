package textsig

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{8}$`)

func TestHashSync_Golden(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "0a9cede7"},
		{"", "00001505"},
		{"abc", "0b873285"},
		// U+1F600 folds as its two UTF-16 surrogate units.
		{"\U0001F600", "0050fe98"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HashSync(tt.in), "input %q", tt.in)
	}
}

func TestHashSync_Format(t *testing.T) {
	inputs := []string{"", "x", "hello", "a longer input with spaces", "\U0001F600"}
	for _, in := range inputs {
		assert.Regexp(t, hexDigest, HashSync(in))
	}
}

func TestHashSync_Deterministic(t *testing.T) {
	assert.Equal(t, HashSync("stable"), HashSync("stable"))
	assert.NotEqual(t, HashSync("stable"), HashSync("stable2"))
}

func TestHashSHA256(t *testing.T) {
	got, err := HashSHA256(context.Background(), "  Hello   World ")
	require.NoError(t, err)

	// SHA-256 of the normalised text "hello world".
	assert.Equal(t,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		got)
}

func TestHashSHA256_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HashSHA256(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
