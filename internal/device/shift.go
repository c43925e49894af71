package device

import (
	"github.com/radio-control/sdrhal/internal/values"
)

// FrequencyShift defines a fixed VFO offset, for when an
// upconverter/downconverter/transverter sits in the signal path. Merge it
// with the device doing the actual receiving or transmitting.
//
// The shift is the needed change in the displayed frequency: with a 125 MHz
// upconverter for receiving HF, pass -125e6.
func FrequencyShift(shift float64, name string) *Device {
	return New(Options{
		Name: name,
		VFO:  values.ConstantCell(shift),
	})
}
