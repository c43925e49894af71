package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/radio-control/sdrhal/internal/audio"
	"github.com/radio-control/sdrhal/internal/device"
)

// Build constructs one Device per configured entry, in order. backend may be
// nil when no audio entries are configured; with audio entries present a nil
// backend is a fatal construction error.
func (c *Config) Build(backend audio.Backend, log zerolog.Logger) ([]*device.Device, error) {
	devices := make([]*device.Device, 0, len(c.Devices))
	for i, entry := range c.Devices {
		d, err := buildEntry(entry, backend, log)
		if err != nil {
			return nil, fmt.Errorf("devices[%d]: %w", i, err)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

// BuildMerged builds all configured devices and merges them into one.
func (c *Config) BuildMerged(backend audio.Backend, log zerolog.Logger) (*device.Device, error) {
	devices, err := c.Build(backend, log)
	if err != nil {
		return nil, err
	}
	return device.Merge(devices)
}

func buildEntry(entry DeviceEntry, backend audio.Backend, log zerolog.Logger) (*device.Device, error) {
	switch {
	case entry.Audio != nil:
		opts := audio.Options{
			RXDevice:       entry.Audio.RXDevice,
			TXDevice:       entry.Audio.TXDevice,
			Name:           entry.Name,
			SampleRate:     entry.Audio.SampleRate,
			ChannelMapping: entry.Audio.ChannelMapping,
			Log:            log,
		}
		if entry.Audio.UsableBandwidth != nil {
			opts.UsableBandwidth = &audio.Bandwidth{
				Low:  entry.Audio.UsableBandwidth[0],
				High: entry.Audio.UsableBandwidth[1],
			}
		}
		return audio.NewDevice(backend, opts)
	case entry.Shift != nil:
		return device.FrequencyShift(*entry.Shift, entry.Name), nil
	case entry.Position != nil:
		return device.PositionedDevice(entry.Position.Latitude, entry.Position.Longitude), nil
	default:
		// Validate rejects this shape; repeated here for direct construction.
		return nil, fmt.Errorf("%w: empty device entry", device.ErrConfiguration)
	}
}
