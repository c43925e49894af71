package device

import (
	"github.com/radio-control/sdrhal/internal/values"
)

// Device aggregates the functions of one or more pieces of radio hardware, or
// drivers for same: a receiver, a transmitter, a VFO, and auxiliary
// components. With a sound-card transceiver, for example, the audio source,
// audio sink, and the separate interface to the hardware's oscillator are
// unrelated as far as the operating system is concerned; the Device ties them
// together so a control surface can display and operate them as one unit.
//
// A nil rx or tx driver means the device cannot receive or transmit. A nil
// VFO cell means the device has no real tuning control: frequency reads
// report 0 and writes fail, matching a fixed zero-frequency control point.
type Device struct {
	name         string
	rx           RXDriver
	tx           TXDriver
	vfo          values.Cell
	components   map[string]Component
	transmitting bool
}

// Options configures New. All fields are optional.
type Options struct {
	// Name is the display name; empty means unnamed.
	Name string

	// RX supplies the receive path.
	RX RXDriver

	// TX supplies the transmit path.
	TX TXDriver

	// VFO is the tunable-frequency control point. Nil means no real tuning
	// control.
	VFO values.Cell

	// Components maps unique keys to auxiliary components. The map is copied.
	Components map[string]Component
}

// New creates a Device.
func New(opts Options) *Device {
	components := make(map[string]Component, len(opts.Components))
	for key, component := range opts.Components {
		components[key] = component
	}
	return &Device{
		name:       opts.Name,
		rx:         opts.RX,
		tx:         opts.TX,
		vfo:        opts.VFO,
		components: components,
	}
}

// Name returns the display name, empty if unnamed.
func (d *Device) Name() string {
	return d.name
}

// CanReceive reports whether a receive driver is present.
func (d *Device) CanReceive() bool {
	return d.rx != nil
}

// CanTransmit reports whether a transmit driver is present.
func (d *Device) CanTransmit() bool {
	return d.tx != nil
}

// CanTune reports whether the device has a real tuning control.
func (d *Device) CanTune() bool {
	return d.vfo != nil
}

// RX returns the receive driver, nil if absent. The reference is fixed for
// the life of the device except for being cleared by Close.
func (d *Device) RX() RXDriver {
	return d.rx
}

// TX returns the transmit driver, nil if absent.
func (d *Device) TX() TXDriver {
	return d.tx
}

// VFOCell returns the frequency control point, nil if the device has no real
// tuning control.
func (d *Device) VFOCell() values.Cell {
	return d.vfo
}

// Components returns the component mapping. The caller must not mutate it.
func (d *Device) Components() map[string]Component {
	return d.components
}

// Freq returns the current frequency from the VFO cell, 0 for a device with
// no tuning control.
func (d *Device) Freq() float64 {
	if d.vfo == nil {
		return 0
	}
	return d.vfo.Get()
}

// SetFreq writes the frequency to the VFO cell. Range validation is the
// cell's; errors from it are returned unmodified. Devices with no tuning
// control reject all writes.
func (d *Device) SetFreq(value float64) error {
	if d.vfo == nil {
		return values.ErrNotWritable
	}
	return d.vfo.Set(value)
}

// SetTransmitting starts or stops transmitting. The caller is responsible for
// pausing or stopping any signal-processing execution around this call, since
// the transition may reconfigure the driver.
//
// If the device cannot transmit, or value equals the current state, no driver
// is called — but onApplied still fires, so callers can use it as a commit
// point regardless of whether anything changed. The transmit driver is only
// ever called with a genuine transition.
//
// The output of the receive driver while transmitting is undefined; it may
// stop, produce meaningless samples, or be unaffected (full duplex).
func (d *Device) SetTransmitting(value bool, onApplied func()) {
	if onApplied == nil {
		onApplied = func() {}
	}
	if !d.CanTransmit() || value == d.transmitting {
		onApplied()
		return
	}
	d.transmitting = value
	d.tx.SetTransmitting(value, onApplied)
}

// Transmitting returns the last transmit state successfully applied.
func (d *Device) Transmitting() bool {
	return d.transmitting
}

// Close instructs the drivers and components to shut down cleanly, then
// discards the references so a second Close is a no-op.
//
// A shutdown failure propagates immediately and leaves the remaining
// references uncleared; the device is then in an inconsistent state and must
// not be reused.
func (d *Device) Close() error {
	if d.rx != nil {
		if err := d.rx.Close(); err != nil {
			return err
		}
		d.rx = nil
	}
	if d.tx != nil {
		if err := d.tx.Close(); err != nil {
			return err
		}
		d.tx = nil
	}
	for key, component := range d.components {
		if component == nil {
			continue
		}
		if err := component.Close(); err != nil {
			return err
		}
		d.components[key] = nil
	}
	return nil
}

// NotifyReconnectingOrRestarting forwards the reconfiguration warning to the
// present drivers.
func (d *Device) NotifyReconnectingOrRestarting() {
	if d.rx != nil {
		d.rx.NotifyReconnectingOrRestarting()
	}
	if d.tx != nil {
		d.tx.NotifyReconnectingOrRestarting()
	}
}

// AttachContext hands every component a context for emitting telemetry.
func (d *Device) AttachContext(ctx *Context) {
	for _, component := range d.components {
		if component != nil {
			component.AttachContext(ctx)
		}
	}
}
