package drivertest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radio-control/sdrhal/internal/device"
	"github.com/radio-control/sdrhal/internal/signal"
)

// RunDeviceConformance checks the behavior every well-formed Device must
// exhibit, regardless of backend. newDevice must return a fresh device per
// call; each subtest consumes one.
func RunDeviceConformance(t *testing.T, newDevice func(t *testing.T) *device.Device) {
	t.Run("drivers", func(t *testing.T) {
		d := newDevice(t)
		defer d.Close()

		if d.CanReceive() {
			rx := d.RX()
			require.NotNil(t, rx, "CanReceive implies an RX driver")
			outputType := rx.OutputType()
			assert.NotEqual(t, signal.KindNone, outputType.Kind(), "RX driver must produce a signal")
			assert.Greater(t, outputType.SampleRate(), 0.0)
			assert.GreaterOrEqual(t, rx.TuneDelay(), time.Duration(0))

			usable := rx.UsableBandwidth()
			require.False(t, usable.IsZero(), "RX driver must declare usable bandwidth")
			half := outputType.SampleRate() / 2
			assert.LessOrEqual(t, usable.Max(), half, "usable bandwidth exceeds output bandwidth")
			if outputType.IsTwoSided() {
				assert.GreaterOrEqual(t, usable.Min(), -half, "usable bandwidth exceeds output bandwidth")
			} else {
				assert.GreaterOrEqual(t, usable.Min(), 0.0, "one-sided signal cannot have negative usable frequencies")
			}
		} else {
			assert.Nil(t, d.RX())
		}

		if d.CanTransmit() {
			tx := d.TX()
			require.NotNil(t, tx, "CanTransmit implies a TX driver")
			inputType := tx.InputType()
			assert.NotEqual(t, signal.KindNone, inputType.Kind(), "TX driver must consume a signal")
			assert.Greater(t, inputType.SampleRate(), 0.0)
		} else {
			assert.Nil(t, d.TX())
		}
	})

	t.Run("frequency", func(t *testing.T) {
		d := newDevice(t)
		defer d.Close()

		if d.CanTune() {
			cell := d.VFOCell()
			require.NotNil(t, cell)
			assert.True(t, cell.Type().Contains(cell.Get()), "VFO value outside its own range")
			assert.Equal(t, cell.Get(), d.Freq())
		} else {
			assert.Nil(t, d.VFOCell())
			assert.Equal(t, 0.0, d.Freq())
			assert.Error(t, d.SetFreq(1.0))
		}
	})

	t.Run("transmit_hook", func(t *testing.T) {
		d := newDevice(t)
		defer d.Close()

		// onApplied must fire on every call, transitions and no-ops alike.
		fired := 0
		for _, value := range []bool{true, true, false, false} {
			d.SetTransmitting(value, func() { fired++ })
		}
		assert.Equal(t, 4, fired)
	})

	t.Run("reconnect", func(t *testing.T) {
		d := newDevice(t)
		defer d.Close()

		// Must be safe whether or not any driver is present.
		d.NotifyReconnectingOrRestarting()
		d.NotifyReconnectingOrRestarting()
	})

	t.Run("close_idempotent", func(t *testing.T) {
		d := newDevice(t)

		require.NoError(t, d.Close())
		assert.False(t, d.CanReceive())
		assert.False(t, d.CanTransmit())
		require.NoError(t, d.Close())
	})
}
