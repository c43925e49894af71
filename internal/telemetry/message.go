package telemetry

import (
	"time"
)

// Message is a single telemetry report about one tracked object.
//
// ObjectID must be unique among all tracked objects, not merely within the
// reporting component.
type Message interface {
	ObjectID() string
}

// Item is one observed quantity: a value plus the time it was obtained.
// A nil Value means unknown; a zero Timestamp means no or undefined time.
type Item struct {
	Value     any
	Timestamp time.Time
}

// EmptyItem is an Item with no data.
var EmptyItem = Item{}

// Track is the kinematic state of a tracked object. Unobserved fields hold
// EmptyItem rather than being omitted.
type Track struct {
	// Latitude is degrees north.
	Latitude Item

	// Longitude is degrees east.
	Longitude Item

	// Heading is the nominal forward-facing of the vehicle, degrees east of north.
	Heading Item

	// TrackAngle is the direction of the horizontal velocity, degrees east of north.
	TrackAngle Item

	// HSpeed is the magnitude of the horizontal velocity in m/s.
	HSpeed Item

	// Altitude is meters above sea level.
	Altitude Item

	// VSpeed is vertical speed in m/s.
	VSpeed Item
}

// EmptyTrack is a Track with every field unobserved.
var EmptyTrack = Track{}

// TrackMessage is a plain Message carrying a Track.
type TrackMessage struct {
	ID    string
	Track Track
}

// ObjectID implements Message.
func (m TrackMessage) ObjectID() string {
	return m.ID
}
