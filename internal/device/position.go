package device

import (
	"github.com/radio-control/sdrhal/internal/telemetry"
)

// PositionedDevice specifies a device's location on the Earth. Merge it with
// other devices to mark where their antenna is.
func PositionedDevice(latitude, longitude float64) *Device {
	return New(Options{
		Components: map[string]Component{
			"position": &positionComponent{
				track: telemetry.Track{
					Latitude:  telemetry.Item{Value: latitude},
					Longitude: telemetry.Item{Value: longitude},
				},
			},
		},
	})
}

// positionComponent holds a fixed antenna location. It emits its track once
// per attached context so the location shows up alongside live telemetry.
type positionComponent struct {
	track telemetry.Track
}

func (c *positionComponent) Close() error {
	return nil
}

func (c *positionComponent) AttachContext(ctx *Context) {
	ctx.OutputMessage(telemetry.TrackMessage{
		ID:    "antenna-position",
		Track: c.track,
	})
}

// Track returns the fixed location.
func (c *positionComponent) Track() telemetry.Track {
	return c.track
}
