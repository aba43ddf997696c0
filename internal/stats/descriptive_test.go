package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

func TestDescribe(t *testing.T) {
	s, err := Describe("admission_grade", []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, "admission_grade", s.Column)
	assert.Equal(t, 5, s.N)
	assert.Equal(t, 0, s.Missing)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 3.0, s.Median, 1e-12)
}

func TestDescribe_MissingValues(t *testing.T) {
	s, err := Describe("grade", []float64{10, math.NaN(), 20, math.NaN()})
	require.NoError(t, err)

	assert.Equal(t, 2, s.N)
	assert.Equal(t, 2, s.Missing)
	assert.InDelta(t, 15.0, s.Mean, 1e-12)
}

func TestDescribe_SingleValue(t *testing.T) {
	s, err := Describe("grade", []float64{42})
	require.NoError(t, err)

	assert.Equal(t, 1, s.N)
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
}

func TestDescribe_AllMissing(t *testing.T) {
	_, err := Describe("grade", []float64{math.NaN(), math.NaN()})
	require.Error(t, err)
	assert.True(t, apperrors.IsDegeneracy(err))
}

func TestSturgesBins(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{8, 4},
		{100, 8},
		{1000, 11},
		{4424, 14},
	}

	for _, tt := range tests {
		bins, err := SturgesBins(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, bins, "n=%d", tt.n)
	}
}

func TestSturgesBins_EmptySample(t *testing.T) {
	_, err := SturgesBins(0)
	require.Error(t, err)
	assert.True(t, apperrors.IsDegeneracy(err))

	_, err = SturgesBins(-5)
	assert.Error(t, err)
}

func TestSturgesBins_MonotoneInN(t *testing.T) {
	prev := 0
	for n := 1; n <= 10000; n++ {
		bins, err := SturgesBins(n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bins, prev, "n=%d", n)
		prev = bins
	}
}
