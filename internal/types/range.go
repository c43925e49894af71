package types

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrOutOfRange indicates a value outside every allowed subrange of a strict Range.
var ErrOutOfRange = errors.New("value out of range")

// RoundDirection selects which neighboring subrange Coerce prefers when the
// input falls in a gap between subranges.
type RoundDirection int

const (
	// RoundNearest picks the subrange whose boundary is closest.
	RoundNearest RoundDirection = 0

	// RoundDown picks the subrange below the input.
	RoundDown RoundDirection = -1

	// RoundUp picks the subrange above the input.
	RoundUp RoundDirection = 1
)

// Subrange is a closed interval of allowed values.
type Subrange struct {
	Lower float64
	Upper float64
}

// Range describes a (possibly non-contiguous) set of permitted values for a
// scalar such as a frequency. Subranges are sorted and non-overlapping.
//
// A strict Range rejects values outside its subranges; a non-strict Range
// merely records them as the recommended region.
type Range struct {
	subranges []Subrange
	strict    bool
	integer   bool
}

// RangeOpt modifies Range construction.
type RangeOpt func(*Range)

// Lenient marks the range as non-strict: values outside the subranges validate.
func Lenient() RangeOpt {
	return func(r *Range) { r.strict = false }
}

// Integer requires values to be whole numbers after coercion.
func Integer() RangeOpt {
	return func(r *Range) { r.integer = true }
}

// NewRange builds a Range from closed intervals.
// The intervals must be non-empty, sorted, and non-overlapping.
func NewRange(subranges []Subrange, opts ...RangeOpt) (Range, error) {
	if len(subranges) == 0 {
		return Range{}, errors.New("range must have at least one subrange")
	}
	for i, sr := range subranges {
		if !(sr.Lower <= sr.Upper) {
			return Range{}, fmt.Errorf("subrange %d has lower bound %v above upper bound %v", i, sr.Lower, sr.Upper)
		}
		if i > 0 && !(subranges[i-1].Upper < sr.Lower) {
			return Range{}, fmt.Errorf("subrange %d has lower bound %v not above previous upper bound %v", i, sr.Lower, subranges[i-1].Upper)
		}
	}
	r := Range{subranges: append([]Subrange(nil), subranges...), strict: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r, nil
}

// MustRange is NewRange for statically-known-good intervals; it panics on error.
func MustRange(subranges []Subrange, opts ...RangeOpt) Range {
	r, err := NewRange(subranges, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Span builds a single-interval Range.
func Span(lower, upper float64, opts ...RangeOpt) (Range, error) {
	return NewRange([]Subrange{{Lower: lower, Upper: upper}}, opts...)
}

// Point builds a Range permitting exactly one value.
func Point(value float64) Range {
	return MustRange([]Subrange{{Lower: value, Upper: value}})
}

// IsZero reports whether r is the uninitialized Range.
func (r Range) IsZero() bool {
	return r.subranges == nil
}

// Subranges returns the allowed intervals. The caller must not modify the slice.
func (r Range) Subranges() []Subrange {
	return r.subranges
}

// Min returns the lowest allowed value.
func (r Range) Min() float64 {
	return r.subranges[0].Lower
}

// Max returns the highest allowed value.
func (r Range) Max() float64 {
	return r.subranges[len(r.subranges)-1].Upper
}

// SinglePoint reports whether the range permits exactly one value, and that value.
func (r Range) SinglePoint() (float64, bool) {
	if len(r.subranges) == 1 && r.subranges[0].Lower == r.subranges[0].Upper {
		return r.subranges[0].Lower, true
	}
	return 0, false
}

// Contains reports whether value lies inside one of the subranges.
func (r Range) Contains(value float64) bool {
	for _, sr := range r.subranges {
		if sr.Lower <= value && value <= sr.Upper {
			return true
		}
	}
	return false
}

// Validate checks value against the range, returning ErrOutOfRange (wrapped
// with the offending value) if the range is strict and the value is outside
// every subrange. Integer ranges additionally reject non-whole values.
func (r Range) Validate(value float64) error {
	if r.integer && value != math.Trunc(value) {
		return fmt.Errorf("%w: %v is not an integer", ErrOutOfRange, value)
	}
	if r.strict && !r.Contains(value) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfRange, value, r.subranges)
	}
	return nil
}

// Coerce maps value to the nearest allowed value. Non-strict ranges return
// the input unchanged apart from integer rounding.
func (r Range) Coerce(value float64, round RoundDirection) float64 {
	if r.integer {
		value = math.Round(value)
	}
	if !r.strict {
		return value
	}

	// Index of the subrange whose lower bound is closest below the value.
	i := sort.Search(len(r.subranges), func(j int) bool {
		return r.subranges[j].Lower > value
	}) - 1
	if i < 0 {
		i = 0
	}

	if i < len(r.subranges)-1 && value > r.subranges[i].Upper {
		switch round {
		case RoundUp:
			i++
		case RoundNearest:
			if r.subranges[i+1].Lower-value < value-r.subranges[i].Upper {
				i++
			}
		}
	}

	if value < r.subranges[i].Lower {
		return r.subranges[i].Lower
	}
	if value > r.subranges[i].Upper {
		return r.subranges[i].Upper
	}
	return value
}

// ShiftedBy translates every subrange by offset. An integer range shifted by
// a fractional offset loses its integer constraint.
func (r Range) ShiftedBy(offset float64) Range {
	shifted := make([]Subrange, len(r.subranges))
	for i, sr := range r.subranges {
		shifted[i] = Subrange{Lower: sr.Lower + offset, Upper: sr.Upper + offset}
	}
	return Range{
		subranges: shifted,
		strict:    r.strict,
		integer:   r.integer && offset == math.Trunc(offset),
	}
}

// Equal reports whether two ranges permit the same values.
func (r Range) Equal(other Range) bool {
	if len(r.subranges) != len(other.subranges) || r.strict != other.strict || r.integer != other.integer {
		return false
	}
	for i, sr := range r.subranges {
		if sr != other.subranges[i] {
			return false
		}
	}
	return true
}
