package values

import (
	"github.com/radio-control/sdrhal/internal/types"
)

// ViewCell presents a base cell through a pair of transforms, e.g. a tunable
// oscillator viewed through a fixed conversion offset. Reads apply
// GetTransform to the base value; writes apply SetTransform and store the
// result in the base cell.
type ViewCell struct {
	base         Cell
	getTransform func(float64) float64
	setTransform func(float64) float64
	typ          types.Range
	meta         Metadata
}

// ViewCellOptions configures NewViewCell.
type ViewCellOptions struct {
	// Base is the authoritative underlying cell; required.
	Base Cell

	// GetTransform maps a base value to the viewed value; required.
	GetTransform func(float64) float64

	// SetTransform maps a viewed value to the base value; required.
	// It must be the inverse of GetTransform.
	SetTransform func(float64) float64

	// Type is the allowed-interval set of the viewed value; required.
	Type types.Range

	// Writable permits Set (which still requires the base to accept the write).
	Writable bool

	// Persists marks the viewed value for persistence.
	Persists bool
}

// NewViewCell creates a transformed view of a base cell.
func NewViewCell(opts ViewCellOptions) *ViewCell {
	if opts.Base == nil || opts.GetTransform == nil || opts.SetTransform == nil {
		panic("values: ViewCell requires Base, GetTransform, and SetTransform")
	}
	if opts.Type.IsZero() {
		panic("values: ViewCell requires a Type")
	}
	return &ViewCell{
		base:         opts.Base,
		getTransform: opts.GetTransform,
		setTransform: opts.SetTransform,
		typ:          opts.Type,
		meta:         Metadata{Writable: opts.Writable, Persists: opts.Persists},
	}
}

// Get returns the transformed base value.
func (c *ViewCell) Get() float64 {
	return c.getTransform(c.base.Get())
}

// Set stores the inverse-transformed value into the base cell. Range
// validation is the base cell's; the base stays authoritative.
func (c *ViewCell) Set(value float64) error {
	if !c.meta.Writable {
		return ErrNotWritable
	}
	return c.base.Set(c.setTransform(value))
}

// Type returns the allowed intervals of the viewed value.
func (c *ViewCell) Type() types.Range {
	return c.typ
}

// Metadata returns the cell's fixed properties.
func (c *ViewCell) Metadata() Metadata {
	return c.meta
}

// Subscribe registers a change listener on the viewed value.
func (c *ViewCell) Subscribe(fn func(float64)) func() {
	return c.base.Subscribe(func(base float64) {
		fn(c.getTransform(base))
	})
}
