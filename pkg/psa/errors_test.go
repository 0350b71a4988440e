package psa

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsListsEveryKindOnce(t *testing.T) {
	kinds := Errors()
	require.Len(t, kinds, 21)
	assert.Equal(t, ErrGeneric, kinds[0])
	assert.Equal(t, ErrInvalidHandle, kinds[len(kinds)-1])

	names := make(map[string]bool, len(kinds))
	for _, e := range kinds {
		require.True(t, e.Valid(), "kind %d", e)
		require.False(t, names[e.Name()], "duplicate name %s", e.Name())
		names[e.Name()] = true

		assert.True(t, strings.HasPrefix(e.Error(), "psa: "), e.Error())
		assert.NotEqual(t, "psa: unknown error", e.Error())
	}

	// Callers may not alias the internal ordering.
	kinds[0] = ErrBadState
	assert.Equal(t, ErrGeneric, Errors()[0])
}

func TestErrorZeroAndOutOfRange(t *testing.T) {
	for _, e := range []Error{0, lastError + 1, 255} {
		assert.False(t, e.Valid())
		assert.Equal(t, "Unknown", e.Name())
		assert.Equal(t, "psa: unknown error", e.Error())
	}
}

func TestErrorWorksWithErrorsIs(t *testing.T) {
	err := fmt.Errorf("generate key: %w", ErrInsufficientEntropy)
	assert.ErrorIs(t, err, ErrInsufficientEntropy)
	assert.False(t, errors.Is(err, ErrInsufficientMemory))

	var kind Error
	require.True(t, errors.As(err, &kind))
	assert.Equal(t, ErrInsufficientEntropy, kind)
}

func TestParseError(t *testing.T) {
	for _, e := range Errors() {
		got, ok := ParseError(e.Name())
		require.True(t, ok, e.Name())
		assert.Equal(t, e, got)
	}

	got, ok := ParseError("  badstate ")
	require.True(t, ok)
	assert.Equal(t, ErrBadState, got)

	_, ok = ParseError("Success")
	assert.False(t, ok)
	_, ok = ParseError("")
	assert.False(t, ok)
}
