package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	e := NewError(CodeInvalidJSON, "input is not valid JSON")
	assert.Equal(t, "WS_INVALID_JSON: input is not valid JSON", e.Error())

	e.Cause = errors.New("unexpected end of JSON input")
	assert.Equal(t,
		"WS_INVALID_JSON: input is not valid JSON: unexpected end of JSON input",
		e.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	e := &Error{Code: CodeInternal, Message: "wrapped", Cause: cause}

	assert.ErrorIs(t, e, cause)

	wrapped := fmt.Errorf("outer: %w", e)
	got, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeInternal, got.Code)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeLimitExceeded, CodeOf(NewError(CodeLimitExceeded, "too deep")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestCode_IsValid(t *testing.T) {
	for _, c := range []Code{
		CodeInvalidJSON, CodeInvalidCapture, CodeUnsupportedVersion,
		CodeLimitExceeded, CodeInvalidArgs, CodeNotFound,
		CodePermissionDenied, CodeIOError, CodeInternal,
	} {
		assert.True(t, c.IsValid(), "code %s", c)
	}
	assert.False(t, Code("WS_BOGUS").IsValid())
}
