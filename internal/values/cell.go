package values

import (
	"errors"

	"github.com/radio-control/sdrhal/internal/types"
)

// ErrNotWritable indicates a write to a read-only cell.
var ErrNotWritable = errors.New("cell is not writable")

// Metadata carries the fixed properties of a cell.
type Metadata struct {
	// Writable reports whether Set is permitted.
	Writable bool

	// Persists reports whether the cell's value should be saved across restarts.
	Persists bool
}

// Cell is an observable scalar constrained to a declared Range.
//
// Set returns ErrNotWritable for read-only cells and a range error (wrapping
// types.ErrOutOfRange) for values outside the cell's allowed intervals.
type Cell interface {
	// Get returns the current value.
	Get() float64

	// Set stores a new value after validating it against Type.
	Set(value float64) error

	// Type returns the set of allowed intervals.
	Type() types.Range

	// Metadata returns the cell's fixed properties.
	Metadata() Metadata

	// Subscribe registers fn to be called with each new value after a change.
	// The returned function cancels the subscription.
	Subscribe(fn func(value float64)) (cancel func())
}
