package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRangeRejectsBadSubranges(t *testing.T) {
	tests := []struct {
		name      string
		subranges []Subrange
	}{
		{"empty", nil},
		{"inverted", []Subrange{{Lower: 2, Upper: 1}}},
		{"overlapping", []Subrange{{Lower: 0, Upper: 5}, {Lower: 5, Upper: 10}}},
		{"unsorted", []Subrange{{Lower: 10, Upper: 20}, {Lower: 0, Upper: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRange(tt.subranges)
			assert.Error(t, err)
		})
	}
}

func TestSinglePoint(t *testing.T) {
	p, ok := Point(7.0).SinglePoint()
	require.True(t, ok)
	assert.Equal(t, 7.0, p)

	_, ok = MustRange([]Subrange{{Lower: 1, Upper: 2}}).SinglePoint()
	assert.False(t, ok)

	// Two single-valued subranges are still not a single point.
	_, ok = MustRange([]Subrange{{Lower: 1, Upper: 1}, {Lower: 2, Upper: 2}}).SinglePoint()
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	r := MustRange([]Subrange{{Lower: -5, Upper: -1}, {Lower: 1, Upper: 5}})

	assert.NoError(t, r.Validate(-3))
	assert.NoError(t, r.Validate(1))
	assert.NoError(t, r.Validate(5))

	err := r.Validate(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, r.Validate(6), ErrOutOfRange)

	lenient := MustRange([]Subrange{{Lower: 1, Upper: 5}}, Lenient())
	assert.NoError(t, lenient.Validate(100))

	integer := MustRange([]Subrange{{Lower: 1, Upper: 5}}, Integer())
	assert.NoError(t, integer.Validate(3))
	assert.ErrorIs(t, integer.Validate(3.5), ErrOutOfRange)
}

func TestCoerce(t *testing.T) {
	r := MustRange([]Subrange{{Lower: 0, Upper: 10}, {Lower: 20, Upper: 30}})

	tests := []struct {
		name  string
		value float64
		round RoundDirection
		want  float64
	}{
		{"inside_first", 5, RoundNearest, 5},
		{"inside_second", 25, RoundNearest, 25},
		{"below_all", -3, RoundNearest, 0},
		{"above_all", 99, RoundNearest, 30},
		{"gap_nearest_low", 12, RoundNearest, 10},
		{"gap_nearest_high", 18, RoundNearest, 20},
		{"gap_down", 18, RoundDown, 10},
		{"gap_up", 12, RoundUp, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Coerce(tt.value, tt.round))
		})
	}
}

func TestShiftedBy(t *testing.T) {
	r := MustRange([]Subrange{{Lower: -5, Upper: -1}, {Lower: 1, Upper: 5}})
	shifted := r.ShiftedBy(100)

	assert.Equal(t, []Subrange{{Lower: 95, Upper: 99}, {Lower: 101, Upper: 105}}, shifted.Subranges())
	assert.Equal(t, 95.0, shifted.Min())
	assert.Equal(t, 105.0, shifted.Max())
	assert.True(t, shifted.Contains(103))
	assert.False(t, shifted.Contains(100))
}

func TestShiftedByIntegerConstraint(t *testing.T) {
	r := MustRange([]Subrange{{Lower: 0, Upper: 10}}, Integer())

	assert.ErrorIs(t, r.ShiftedBy(1).Validate(3.5), ErrOutOfRange)
	// A fractional shift makes whole numbers unreachable, so the constraint drops.
	assert.NoError(t, r.ShiftedBy(0.5).Validate(3.5))
}

func TestEqual(t *testing.T) {
	a := MustRange([]Subrange{{Lower: 1, Upper: 2}})
	b := MustRange([]Subrange{{Lower: 1, Upper: 2}})
	c := MustRange([]Subrange{{Lower: 1, Upper: 3}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(MustRange([]Subrange{{Lower: 1, Upper: 2}}, Lenient())))
}
