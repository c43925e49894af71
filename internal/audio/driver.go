package audio

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/radio-control/sdrhal/internal/device"
	"github.com/radio-control/sdrhal/internal/signal"
	"github.com/radio-control/sdrhal/internal/types"
)

// rxDriver adapts a capture stream to the receive driver contract. With a
// two-row channel mapping the stream is treated as quadrature (IQ) baseband;
// with one row it is a single-sideband audio channel from a rig.
type rxDriver struct {
	backend    Backend
	deviceName string
	sampleRate float64
	mapping    [][]float64
	signalType signal.Type
	usable     types.Range
	source     Source
	log        zerolog.Logger
}

var _ device.RXDriver = (*rxDriver)(nil)

func newRXDriver(backend Backend, deviceName string, sampleRate float64, mapping [][]float64, usable *Bandwidth, log zerolog.Logger) (*rxDriver, error) {
	d := &rxDriver{
		backend:    backend,
		deviceName: deviceName,
		sampleRate: sampleRate,
		mapping:    mapping,
		log:        log.With().Str("component", "audio-rx").Str("device", deviceName).Logger(),
	}

	if len(mapping) == 2 {
		d.signalType = signal.MustType(signal.KindIQ, sampleRate)
		usableRange, err := quadratureUsableBandwidth(sampleRate, usable)
		if err != nil {
			return nil, err
		}
		d.usable = usableRange
	} else {
		// Single-channel rig audio; voice passband, spur-free by convention.
		d.signalType = signal.MustType(signal.KindUSB, sampleRate)
		d.usable = types.MustRange([]types.Subrange{{Lower: 500, Upper: 2500}})
	}

	if err := d.openSource(); err != nil {
		return nil, err
	}
	return d, nil
}

// quadratureUsableBandwidth computes the spur-free region of an IQ stream.
// Without an override the whole two-sided bandwidth counts; an override
// excludes the DC region when its lower edge is above zero.
func quadratureUsableBandwidth(sampleRate float64, usable *Bandwidth) (types.Range, error) {
	if usable == nil {
		half := sampleRate / 2
		return types.MustRange([]types.Subrange{{Lower: -half, Upper: half}}), nil
	}
	if !(usable.High > 0) {
		return types.Range{}, fmt.Errorf("%w: usable bandwidth upper edge must be positive, got %v", device.ErrConfiguration, usable.High)
	}
	if usable.Low <= 0 {
		return types.MustRange([]types.Subrange{{Lower: -usable.High, Upper: usable.High}}), nil
	}
	return types.MustRange([]types.Subrange{
		{Lower: -usable.High, Upper: -usable.Low},
		{Lower: usable.Low, Upper: usable.High},
	}), nil
}

func (d *rxDriver) openSource() error {
	if d.source != nil {
		d.source.Close()
		d.source = nil
	}
	source, err := d.backend.OpenSource(d.deviceName, d.sampleRate)
	if err != nil {
		return fmt.Errorf("opening audio source %q: %w", d.deviceName, err)
	}
	d.source = source
	return nil
}

// OutputType implements device.RXDriver.
func (d *rxDriver) OutputType() signal.Type {
	return d.signalType
}

// TuneDelay implements device.RXDriver. Audio hardware has no tuning of its
// own, so frequency changes take effect immediately.
func (d *rxDriver) TuneDelay() time.Duration {
	return 0
}

// UsableBandwidth implements device.RXDriver.
func (d *rxDriver) UsableBandwidth() types.Range {
	return d.usable
}

// Close implements device.RXDriver.
func (d *rxDriver) Close() error {
	if d.source == nil {
		return nil
	}
	err := d.source.Close()
	d.source = nil
	return err
}

// NotifyReconnectingOrRestarting implements device.RXDriver. Some platform
// audio stacks stop delivering samples after the surrounding execution is
// reconfigured; re-opening the stream causes a glitch but never leaves the
// device permanently silent.
func (d *rxDriver) NotifyReconnectingOrRestarting() {
	if err := d.openSource(); err != nil {
		d.log.Error().Err(err).Msg("failed to re-open audio source")
	}
}

// txDriver adapts a playback stream to the transmit driver contract.
type txDriver struct {
	deviceName string
	signalType signal.Type
	sink       Sink
}

var _ device.TXDriver = (*txDriver)(nil)

func newTXDriver(backend Backend, deviceName string, sampleRate float64, mapping [][]float64) (*txDriver, error) {
	kind := signal.KindUSB
	if len(mapping) == 2 {
		kind = signal.KindIQ
	}
	sink, err := backend.OpenSink(deviceName, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("opening audio sink %q: %w", deviceName, err)
	}
	return &txDriver{
		deviceName: deviceName,
		signalType: signal.MustType(kind, sampleRate),
		sink:       sink,
	}, nil
}

// InputType implements device.TXDriver.
func (d *txDriver) InputType() signal.Type {
	return d.signalType
}

// SetTransmitting implements device.TXDriver. Audio hardware is full duplex,
// so the transition takes effect immediately and there is nothing to switch.
func (d *txDriver) SetTransmitting(value bool, onApplied func()) {
	if onApplied != nil {
		onApplied()
	}
}

// Close implements device.TXDriver.
func (d *txDriver) Close() error {
	if d.sink == nil {
		return nil
	}
	err := d.sink.Close()
	d.sink = nil
	return err
}

// NotifyReconnectingOrRestarting implements device.TXDriver.
func (d *txDriver) NotifyReconnectingOrRestarting() {}
