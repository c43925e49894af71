package audio

import (
	"errors"
)

// ErrBackendUnavailable indicates an attempt to build an audio device when no
// audio backend was supplied, e.g. because the hosting binary was built
// without audio support.
var ErrBackendUnavailable = errors.New("audio backend unavailable")

// Source is an open capture stream.
type Source interface {
	// Channels returns the number of capture channels the stream provides.
	Channels() int

	// Close releases the stream.
	Close() error
}

// Sink is an open playback stream.
type Sink interface {
	// Channels returns the number of playback channels the stream accepts.
	Channels() int

	// Close releases the stream.
	Close() error
}

// Backend opens audio streams by device name. An empty name selects the
// system default device. OpenSource and OpenSink fail if the named device
// does not exist or cannot be opened.
type Backend interface {
	OpenSource(deviceName string, sampleRate float64) (Source, error)
	OpenSink(deviceName string, sampleRate float64) (Sink, error)
}

// FindRXNames probes for usable capture device names. Currently only the
// default device is probed.
func FindRXNames(backend Backend) []string {
	if backend == nil {
		return nil
	}
	source, err := backend.OpenSource("", defaultSampleRate)
	if err != nil {
		return nil
	}
	source.Close()
	return []string{""}
}
