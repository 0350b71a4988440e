package psa

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroStatusIsSuccess(t *testing.T) {
	var s Status
	assert.Equal(t, Success, s)
	assert.True(t, s.IsSuccess())
	assert.NoError(t, s.ToResult())
	assert.Equal(t, "Success", s.String())

	kind, failed := s.Kind()
	assert.False(t, failed)
	assert.Equal(t, Error(0), kind)
}

func TestStatusErrorToResult(t *testing.T) {
	for _, e := range Errors() {
		s := StatusError(e)
		require.False(t, s.IsSuccess())

		kind, failed := s.Kind()
		require.True(t, failed)
		assert.Equal(t, e, kind)
		assert.Equal(t, "Error("+e.Name()+")", s.String())

		err := s.ToResult()
		assert.ErrorIs(t, err, e)
		assert.Equal(t, error(e), err)
	}
}

func TestToResultIsPure(t *testing.T) {
	logs := observeDiagnostics(t)

	for _, s := range []Status{Success, StatusError(ErrBadState), StatusError(ErrDataCorrupt)} {
		first := s.ToResult()
		second := s.ToResult()
		assert.Equal(t, first, second)
	}
	assert.Zero(t, logs.Len())
}

func TestStatusErrorNormalisesUndefinedKinds(t *testing.T) {
	for _, e := range []Error{0, lastError + 1} {
		s := StatusError(e)
		kind, failed := s.Kind()
		require.True(t, failed)
		assert.Equal(t, ErrGeneric, kind)
	}
}

func TestFromResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, Success},
		{"kind", ErrNotPermitted, StatusError(ErrNotPermitted)},
		{"wrapped kind", fmt.Errorf("sign: %w", ErrInvalidHandle), StatusError(ErrInvalidHandle)},
		{"foreign error", errors.New("boom"), StatusError(ErrGeneric)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromResult(tc.err))
		})
	}
}

func TestFromResultInvertsToResult(t *testing.T) {
	statuses := []Status{Success}
	for _, e := range Errors() {
		statuses = append(statuses, StatusError(e))
	}
	for _, s := range statuses {
		assert.Equal(t, s, FromResult(s.ToResult()), s.String())
	}
}
