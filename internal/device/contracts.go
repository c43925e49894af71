package device

import (
	"time"

	"github.com/radio-control/sdrhal/internal/signal"
	"github.com/radio-control/sdrhal/internal/types"
)

// RXDriver is the capability contract a hardware backend satisfies to supply
// a received sample stream.
type RXDriver interface {
	// OutputType describes the produced signal. The value must not change
	// incompatibly during the driver's lifetime.
	OutputType() signal.Type

	// TuneDelay returns the time between a frequency change request and the
	// new frequency taking observable effect downstream.
	TuneDelay() time.Duration

	// UsableBandwidth returns the portion of the output bandwidth, in
	// baseband Hz, that is within the filter passband and free of spurs
	// (in particular any DC offset artifact of quadrature output).
	UsableBandwidth() types.Range

	// Close performs a clean shutdown. It may leave the driver unusable.
	Close() error

	// NotifyReconnectingOrRestarting warns the driver that the surrounding
	// execution context is being torn down and rebuilt without a full close.
	// Backends that silently stop functioning across such reconfiguration
	// should reinitialize their internal handles here.
	NotifyReconnectingOrRestarting()
}

// TXDriver is the capability contract a hardware backend satisfies to consume
// a transmitted sample stream.
type TXDriver interface {
	// InputType describes the consumed signal. The value must not change
	// incompatibly during the driver's lifetime.
	InputType() signal.Type

	// SetTransmitting enables or disables actual transmission.
	//
	// The surrounding execution is paused or stopped when this is called, and
	// the call is never redundant: value always differs from the driver's
	// current state (the owning Device filters no-op transitions). The driver
	// must invoke onApplied exactly once when the transition has taken
	// observable effect, even if that requires hardware settling first.
	SetTransmitting(value bool, onApplied func())

	// Close performs a clean shutdown. It may leave the driver unusable.
	Close() error

	// NotifyReconnectingOrRestarting is as for RXDriver.
	NotifyReconnectingOrRestarting()
}

// Component is an auxiliary capability incorporated in a Device with no other
// specific role (for example a static position marker).
type Component interface {
	// Close performs a clean shutdown. It may leave the component unusable.
	Close() error

	// AttachContext hands the component a Context for emitting telemetry.
	// It may be called zero or more times, in no guaranteed order relative
	// to other use of the component.
	AttachContext(ctx *Context)
}
