package values

import (
	"github.com/radio-control/sdrhal/internal/types"
)

// LooseCell stores its value directly rather than reading it from hardware,
// so it can reliably report every change to subscribers.
type LooseCell struct {
	value       float64
	typ         types.Range
	meta        Metadata
	postHook    func(value float64)
	subscribers map[int]func(float64)
	nextSubID   int
}

// LooseCellOptions configures NewLooseCell.
type LooseCellOptions struct {
	// Value is the initial value.
	Value float64

	// Type is the set of allowed intervals; required.
	Type types.Range

	// Writable permits Set.
	Writable bool

	// Persists marks the value for persistence by the surrounding state system.
	Persists bool

	// PostHook, if non-nil, runs after a successful Set stores a new value and
	// before subscribers fire, so related internal state can be updated first.
	PostHook func(value float64)
}

// NewLooseCell creates a stored-value cell.
func NewLooseCell(opts LooseCellOptions) *LooseCell {
	if opts.Type.IsZero() {
		panic("values: LooseCell requires a Type")
	}
	return &LooseCell{
		value:       opts.Value,
		typ:         opts.Type,
		meta:        Metadata{Writable: opts.Writable, Persists: opts.Persists},
		postHook:    opts.PostHook,
		subscribers: make(map[int]func(float64)),
	}
}

// Get returns the current value.
func (c *LooseCell) Get() float64 {
	return c.value
}

// Set validates and stores a new value. Writing an equal value is a no-op.
func (c *LooseCell) Set(value float64) error {
	if !c.meta.Writable {
		return ErrNotWritable
	}
	if err := c.typ.Validate(value); err != nil {
		return err
	}
	if c.value == value {
		return nil
	}
	c.value = value
	if c.postHook != nil {
		c.postHook(value)
	}
	c.fire()
	return nil
}

// SetInternal stores a value reported by the cell's owner, bypassing the
// writability check. Subscribers still fire.
func (c *LooseCell) SetInternal(value float64) {
	c.value = value
	c.fire()
}

// Type returns the allowed intervals.
func (c *LooseCell) Type() types.Range {
	return c.typ
}

// Metadata returns the cell's fixed properties.
func (c *LooseCell) Metadata() Metadata {
	return c.meta
}

// Subscribe registers a change listener.
func (c *LooseCell) Subscribe(fn func(float64)) func() {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	return func() {
		delete(c.subscribers, id)
	}
}

func (c *LooseCell) fire() {
	for _, fn := range c.subscribers {
		fn(c.value)
	}
}

// ConstantCell returns a non-writable cell fixed at value.
func ConstantCell(value float64) *LooseCell {
	return NewLooseCell(LooseCellOptions{
		Value: value,
		Type:  types.Point(value),
	})
}
