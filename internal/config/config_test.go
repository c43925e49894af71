package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radio-control/sdrhal/internal/audio"
	"github.com/radio-control/sdrhal/internal/device"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdrhal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type nopStream struct{}

func (nopStream) Channels() int { return 2 }
func (nopStream) Close() error  { return nil }

type nopBackend struct{}

func (nopBackend) OpenSource(string, float64) (audio.Source, error) { return nopStream{}, nil }
func (nopBackend) OpenSink(string, float64) (audio.Sink, error)     { return nopStream{}, nil }

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
devices:
  - name: main
    audio:
      rx_device: "hw:1"
      sample_rate: 96000
      channel_mapping: QI
      usable_bandwidth: [1000, 40000]
  - name: upconverter
    shift: -125.0e+6
  - position:
      latitude: 51.5
      longitude: -0.1
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Devices, 3)

	first := cfg.Devices[0]
	assert.Equal(t, "main", first.Name)
	require.NotNil(t, first.Audio)
	assert.Equal(t, "hw:1", first.Audio.RXDevice)
	assert.Equal(t, 96000.0, first.Audio.SampleRate)
	assert.Equal(t, "QI", first.Audio.ChannelMapping)
	assert.Equal(t, []float64{1000, 40000}, first.Audio.UsableBandwidth)

	require.NotNil(t, cfg.Devices[1].Shift)
	assert.Equal(t, -125e6, *cfg.Devices[1].Shift)

	require.NotNil(t, cfg.Devices[2].Position)
	assert.Equal(t, 51.5, cfg.Devices[2].Position.Latitude)
}

func TestLoadChannelMappingMatrix(t *testing.T) {
	path := writeConfig(t, `
devices:
  - audio:
      channel_mapping: [[1, 0], [0, -1]]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	mapping, err := audio.CoerceChannelMapping(cfg.Devices[0].Audio.ChannelMapping)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, -1}}, mapping)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
devices:
  - audio:
      rx_devise: "typo"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SDRHAL_AUDIO_RX_DEVICE", "hw:9")
	t.Setenv("SDRHAL_AUDIO_SAMPLE_RATE", "48000")

	path := writeConfig(t, `
devices:
  - audio:
      rx_device: "hw:1"
      sample_rate: 96000
  - shift: 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hw:9", cfg.Devices[0].Audio.RXDevice)
	assert.Equal(t, 48000.0, cfg.Devices[0].Audio.SampleRate)
}

func TestLoadBadEnvSampleRate(t *testing.T) {
	t.Setenv("SDRHAL_AUDIO_SAMPLE_RATE", "very fast")

	path := writeConfig(t, `
devices:
  - audio: {}
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	shift := 100.0
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no_devices",
			cfg:     Config{},
			wantErr: "at least one device",
		},
		{
			name:    "empty_entry",
			cfg:     Config{Devices: []DeviceEntry{{}}},
			wantErr: "exactly one of audio, shift, or position",
		},
		{
			name: "two_kinds",
			cfg: Config{Devices: []DeviceEntry{
				{Audio: &AudioEntry{}, Shift: &shift},
			}},
			wantErr: "exactly one of audio, shift, or position",
		},
		{
			name: "negative_sample_rate",
			cfg: Config{Devices: []DeviceEntry{
				{Audio: &AudioEntry{SampleRate: -1}},
			}},
			wantErr: "sample_rate must be positive",
		},
		{
			name: "bad_channel_mapping",
			cfg: Config{Devices: []DeviceEntry{
				{Audio: &AudioEntry{ChannelMapping: "XY"}},
			}},
			wantErr: "channel_mapping",
		},
		{
			name: "bandwidth_wrong_arity",
			cfg: Config{Devices: []DeviceEntry{
				{Audio: &AudioEntry{UsableBandwidth: []float64{1000}}},
			}},
			wantErr: "usable_bandwidth must be [low, high]",
		},
		{
			name: "bandwidth_inverted",
			cfg: Config{Devices: []DeviceEntry{
				{Audio: &AudioEntry{UsableBandwidth: []float64{5000, 1000}}},
			}},
			wantErr: "low edge",
		},
		{
			name: "latitude_out_of_bounds",
			cfg: Config{Devices: []DeviceEntry{
				{Position: &PositionEntry{Latitude: 91}},
			}},
			wantErr: "latitude",
		},
		{
			name: "longitude_out_of_bounds",
			cfg: Config{Devices: []DeviceEntry{
				{Position: &PositionEntry{Longitude: -181}},
			}},
			wantErr: "longitude",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateOK(t *testing.T) {
	shift := -125e6
	cfg := Config{Devices: []DeviceEntry{
		{Audio: &AudioEntry{ChannelMapping: 2, UsableBandwidth: []float64{500, 2500}}},
		{Shift: &shift},
		{Position: &PositionEntry{Latitude: 51.5, Longitude: -0.1}},
	}}
	assert.NoError(t, cfg.Validate())
}

func TestBuildMerged(t *testing.T) {
	shift := -125e6
	cfg := Config{Devices: []DeviceEntry{
		{Name: "sound", Audio: &AudioEntry{}},
		{Name: "upconverter", Shift: &shift},
		{Position: &PositionEntry{Latitude: 51.5, Longitude: -0.1}},
	}}
	require.NoError(t, cfg.Validate())

	merged, err := cfg.BuildMerged(nopBackend{}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "sound+upconverter", merged.Name())
	assert.True(t, merged.CanReceive())
	assert.False(t, merged.CanTransmit())
	assert.Contains(t, merged.Components(), "position")

	// The audio VFO is fixed at 0, so the shift dominates the dial frequency.
	require.True(t, merged.CanTune())
	assert.Equal(t, -125e6, merged.Freq())
}

func TestBuildAudioWithoutBackend(t *testing.T) {
	cfg := Config{Devices: []DeviceEntry{{Audio: &AudioEntry{}}}}

	_, err := cfg.Build(nil, zerolog.Nop())
	assert.ErrorIs(t, err, audio.ErrBackendUnavailable)
}

func TestBuildEmptyEntry(t *testing.T) {
	_, err := buildEntry(DeviceEntry{}, nil, zerolog.Nop())
	assert.True(t, errors.Is(err, device.ErrConfiguration))
}
