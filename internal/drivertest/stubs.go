// Package drivertest provides stub drivers and components plus a reusable
// conformance suite, so device constructors and backends can be tested
// without real hardware.
package drivertest

import (
	"time"

	"github.com/radio-control/sdrhal/internal/device"
	"github.com/radio-control/sdrhal/internal/signal"
	"github.com/radio-control/sdrhal/internal/types"
)

// StubRXDriver is a receive driver with fixed, configurable answers.
type StubRXDriver struct {
	// Type is the reported output signal; defaults to IQ at 10 kHz.
	Type signal.Type

	// Usable is the reported usable bandwidth; defaults to the full ±rate/2.
	Usable types.Range

	// Delay is the reported tune delay.
	Delay time.Duration

	// OnClose, if set, supplies Close's result.
	OnClose func() error

	// Closed counts Close calls.
	Closed int

	// Notified counts NotifyReconnectingOrRestarting calls.
	Notified int
}

var _ device.RXDriver = (*StubRXDriver)(nil)

func (d *StubRXDriver) OutputType() signal.Type {
	if d.Type == (signal.Type{}) {
		return signal.MustType(signal.KindIQ, 10000)
	}
	return d.Type
}

func (d *StubRXDriver) TuneDelay() time.Duration {
	return d.Delay
}

func (d *StubRXDriver) UsableBandwidth() types.Range {
	if d.Usable.IsZero() {
		half := d.OutputType().SampleRate() / 2
		return types.MustRange([]types.Subrange{{Lower: -half, Upper: half}})
	}
	return d.Usable
}

func (d *StubRXDriver) Close() error {
	d.Closed++
	if d.OnClose != nil {
		return d.OnClose()
	}
	return nil
}

func (d *StubRXDriver) NotifyReconnectingOrRestarting() {
	d.Notified++
}

// TransmitCall records one SetTransmitting invocation on a StubTXDriver.
type TransmitCall struct {
	Value bool
}

// StubTXDriver is a transmit driver that records transitions and applies them
// immediately.
type StubTXDriver struct {
	// Type is the reported input signal; defaults to IQ at 10 kHz.
	Type signal.Type

	// Calls records every SetTransmitting invocation in order.
	Calls []TransmitCall

	// OnClose, if set, supplies Close's result.
	OnClose func() error

	// Closed counts Close calls.
	Closed int

	// Notified counts NotifyReconnectingOrRestarting calls.
	Notified int
}

var _ device.TXDriver = (*StubTXDriver)(nil)

func (d *StubTXDriver) InputType() signal.Type {
	if d.Type == (signal.Type{}) {
		return signal.MustType(signal.KindIQ, 10000)
	}
	return d.Type
}

func (d *StubTXDriver) SetTransmitting(value bool, onApplied func()) {
	d.Calls = append(d.Calls, TransmitCall{Value: value})
	if onApplied != nil {
		onApplied()
	}
}

func (d *StubTXDriver) Close() error {
	d.Closed++
	if d.OnClose != nil {
		return d.OnClose()
	}
	return nil
}

func (d *StubTXDriver) NotifyReconnectingOrRestarting() {
	d.Notified++
}

// StubComponent is a component that records shutdowns and attached contexts.
type StubComponent struct {
	// OnClose, if set, supplies Close's result.
	OnClose func() error

	// Closed counts Close calls.
	Closed int

	// Contexts records every attached context in order.
	Contexts []*device.Context
}

var _ device.Component = (*StubComponent)(nil)

func (c *StubComponent) Close() error {
	c.Closed++
	if c.OnClose != nil {
		return c.OnClose()
	}
	return nil
}

func (c *StubComponent) AttachContext(ctx *device.Context) {
	c.Contexts = append(c.Contexts, ctx)
}
