package config

import (
	"fmt"

	"github.com/radio-control/sdrhal/internal/audio"
)

// Validate checks the configuration for structural errors before any
// hardware is touched.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if len(c.Devices) == 0 {
		return fmt.Errorf("at least one device must be configured")
	}
	for i, entry := range c.Devices {
		if err := validateEntry(entry); err != nil {
			return fmt.Errorf("devices[%d]: %w", i, err)
		}
	}
	return nil
}

func validateEntry(entry DeviceEntry) error {
	kinds := 0
	if entry.Audio != nil {
		kinds++
	}
	if entry.Shift != nil {
		kinds++
	}
	if entry.Position != nil {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("exactly one of audio, shift, or position must be set, found %d", kinds)
	}

	if entry.Audio != nil {
		return validateAudio(entry.Audio)
	}
	if entry.Position != nil {
		return validatePosition(entry.Position)
	}
	return nil
}

func validateAudio(entry *AudioEntry) error {
	if entry.SampleRate < 0 {
		return fmt.Errorf("audio sample_rate must be positive, got %v", entry.SampleRate)
	}
	if _, err := audio.CoerceChannelMapping(entry.ChannelMapping); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	if entry.UsableBandwidth != nil {
		if len(entry.UsableBandwidth) != 2 {
			return fmt.Errorf("audio usable_bandwidth must be [low, high], got %d values", len(entry.UsableBandwidth))
		}
		if !(entry.UsableBandwidth[0] < entry.UsableBandwidth[1]) {
			return fmt.Errorf("audio usable_bandwidth low edge %v must be below high edge %v", entry.UsableBandwidth[0], entry.UsableBandwidth[1])
		}
	}
	return nil
}

func validatePosition(entry *PositionEntry) error {
	if entry.Latitude < -90 || entry.Latitude > 90 {
		return fmt.Errorf("position latitude must be within [-90, 90], got %v", entry.Latitude)
	}
	if entry.Longitude < -180 || entry.Longitude > 180 {
		return fmt.Errorf("position longitude must be within [-180, 180], got %v", entry.Longitude)
	}
	return nil
}
