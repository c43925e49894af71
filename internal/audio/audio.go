package audio

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/radio-control/sdrhal/internal/device"
	"github.com/radio-control/sdrhal/internal/types"
	"github.com/radio-control/sdrhal/internal/values"
)

const defaultSampleRate = 44100

// Bandwidth is a usable-bandwidth override: the band between Low and High Hz
// on either side of DC is kept, excluding the DC region itself when Low > 0.
type Bandwidth struct {
	Low  float64
	High float64
}

// Options configures NewDevice.
type Options struct {
	// RXDevice names the capture device; empty selects the system default.
	RXDevice string

	// TXDevice, when non-nil, names the playback device for the transmit
	// path; a pointer to the empty string selects the system default.
	TXDevice *string

	// Name overrides the generated display name.
	Name string

	// SampleRate in samples per second; defaults to 44100.
	SampleRate float64

	// ChannelMapping is a specification accepted by CoerceChannelMapping.
	ChannelMapping any

	// UsableBandwidth overrides the default usable-bandwidth range of the
	// receive path (quadrature mappings only).
	UsableBandwidth *Bandwidth

	// Log receives driver diagnostics; defaults to a no-op logger.
	Log zerolog.Logger
}

// NewDevice builds a Device around system audio hardware: a receive path fed
// from a capture stream through a channel gain matrix, optionally a transmit
// path into a playback stream, and a writable VFO fixed at 0 Hz (the
// hardware has no tuning control; merge with a FrequencyShift or rig control
// device to place it on a dial frequency).
//
// A nil backend is a fatal construction error.
func NewDevice(backend Backend, opts Options) (*device.Device, error) {
	if backend == nil {
		return nil, fmt.Errorf("building audio device %q: %w", opts.RXDevice, ErrBackendUnavailable)
	}

	sampleRate := opts.SampleRate
	if sampleRate == 0 {
		sampleRate = defaultSampleRate
	}
	if sampleRate < 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %v", device.ErrConfiguration, sampleRate)
	}

	mapping, err := CoerceChannelMapping(opts.ChannelMapping)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = "Audio " + opts.RXDevice
		if opts.TXDevice != nil {
			name += "/" + *opts.TXDevice
		}
	}

	rx, err := newRXDriver(backend, opts.RXDevice, sampleRate, mapping, opts.UsableBandwidth, opts.Log)
	if err != nil {
		return nil, err
	}

	var tx device.TXDriver
	if opts.TXDevice != nil {
		txDriver, err := newTXDriver(backend, *opts.TXDevice, sampleRate, mapping)
		if err != nil {
			rx.Close()
			return nil, err
		}
		tx = txDriver
	}

	return device.New(device.Options{
		Name: name,
		RX:   rx,
		TX:   tx,
		VFO: values.NewLooseCell(values.LooseCellOptions{
			Value:    0.0,
			Type:     types.Point(0.0),
			Writable: true,
		}),
	}), nil
}
