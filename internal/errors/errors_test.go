package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      NewFilterError("all rows removed by positivity filter"),
			expected: "[FILTER] all rows removed by positivity filter",
		},
		{
			name:     "error with cause",
			err:      NewParsingError("malformed record", io.ErrUnexpectedEOF),
			expected: "[PARSING] malformed record: unexpected EOF",
		},
		{
			name:     "degeneracy error",
			err:      NewDegeneracyError("predictor has zero variance"),
			expected: "[DEGENERACY] predictor has zero variance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := NewStorageError("failed to write report", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_UnwrapThroughFmtErrorf(t *testing.T) {
	inner := NewDegeneracyError("fewer than 2 complete pairs")
	wrapped := fmt.Errorf("correlation admission_grade vs first_sem_grade: %w", inner)

	assert.True(t, IsDegeneracy(wrapped))
	assert.False(t, IsParsing(wrapped))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewDegeneracyError("predictor is constant").
		WithContext("predictor", "admission_grade").
		WithContext("n", 42)

	assert.Equal(t, "admission_grade", err.Context["predictor"])
	assert.Equal(t, 42, err.Context["n"])
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"parsing error matches", NewParsingError("ragged row", nil), ErrTypeParsing, true},
		{"parsing error does not match filter", NewParsingError("ragged row", nil), ErrTypeFilter, false},
		{"plain error never matches", errors.New("plain"), ErrTypeParsing, false},
		{"nil error never matches", nil, ErrTypeParsing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsType(tt.err, tt.errType))
		})
	}
}
