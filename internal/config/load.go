package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level device configuration.
type Config struct {
	// Devices lists the hardware pieces to aggregate, in merge order.
	Devices []DeviceEntry `yaml:"devices"`
}

// DeviceEntry describes one device. Exactly one of Audio, Shift, or Position
// must be set.
type DeviceEntry struct {
	// Name is the optional display name.
	Name string `yaml:"name"`

	// Audio configures a sound-card device.
	Audio *AudioEntry `yaml:"audio"`

	// Shift configures a fixed frequency offset in Hz, for
	// upconverter/downconverter scenarios. The value is the needed change in
	// the displayed frequency (e.g. -125e6 for a 125 MHz upconverter).
	Shift *float64 `yaml:"shift"`

	// Position marks the antenna location.
	Position *PositionEntry `yaml:"position"`
}

// AudioEntry configures a sound-card device.
type AudioEntry struct {
	// RXDevice names the capture device; empty selects the system default.
	RXDevice string `yaml:"rx_device"`

	// TXDevice, when present, enables the transmit path.
	TXDevice *string `yaml:"tx_device"`

	// SampleRate in samples per second; defaults to 44100.
	SampleRate float64 `yaml:"sample_rate"`

	// ChannelMapping is "IQ", "QI", a channel number, or a gain matrix.
	ChannelMapping any `yaml:"channel_mapping"`

	// UsableBandwidth is an optional [low, high] Hz override for the
	// spur-free region of the receive path.
	UsableBandwidth []float64 `yaml:"usable_bandwidth"`
}

// PositionEntry is a fixed antenna location.
type PositionEntry struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Load reads and validates a YAML configuration file, then applies
// SDRHAL_* environment overrides:
//
//	SDRHAL_AUDIO_RX_DEVICE    capture device for every audio entry
//	SDRHAL_AUDIO_SAMPLE_RATE  sample rate for every audio entry
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	rxDevice, haveRXDevice := os.LookupEnv("SDRHAL_AUDIO_RX_DEVICE")

	var sampleRate float64
	haveSampleRate := false
	if val := os.Getenv("SDRHAL_AUDIO_SAMPLE_RATE"); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("SDRHAL_AUDIO_SAMPLE_RATE: %w", err)
		}
		sampleRate = parsed
		haveSampleRate = true
	}

	for i := range cfg.Devices {
		audio := cfg.Devices[i].Audio
		if audio == nil {
			continue
		}
		if haveRXDevice {
			audio.RXDevice = rxDevice
		}
		if haveSampleRate {
			audio.SampleRate = sampleRate
		}
	}
	return nil
}
