// Package signal describes sample streams exchanged with hardware drivers:
// the kind of signal (quadrature, sideband, plain audio) plus its sample rate.
package signal

import (
	"fmt"
)

// Kind identifies how the samples of a stream are to be interpreted.
type Kind string

const (
	// KindNone is the absence of a signal.
	KindNone Kind = "NONE"

	// KindIQ is a quadrature (complex baseband) signal with a two-sided spectrum.
	KindIQ Kind = "IQ"

	// KindUSB is an upper-sideband signal (complex with zero Q component).
	KindUSB Kind = "USB"

	// KindLSB is a lower-sideband signal (complex with zero Q component).
	KindLSB Kind = "LSB"

	// KindMono is single-channel real audio.
	KindMono Kind = "MONO"

	// KindStereo is two-channel real audio.
	KindStereo Kind = "STEREO"
)

var validKinds = map[Kind]bool{
	KindNone:   true,
	KindIQ:     true,
	KindUSB:    true,
	KindLSB:    true,
	KindMono:   true,
	KindStereo: true,
}

// Type describes a signal: its kind and sample rate. The zero Type is KindNone.
//
// A driver's signal type must not change incompatibly during its lifetime.
type Type struct {
	kind       Kind
	sampleRate float64
}

// NewType builds a signal description. KindNone requires a zero sample rate;
// every other kind requires a positive one.
func NewType(kind Kind, sampleRate float64) (Type, error) {
	if kind == "" {
		kind = KindNone
	}
	if !validKinds[kind] {
		return Type{}, fmt.Errorf("unknown signal kind %q", kind)
	}
	if kind == KindNone {
		if sampleRate != 0 {
			return Type{}, fmt.Errorf("sample rate must be zero for kind %q, got %v", kind, sampleRate)
		}
	} else if !(sampleRate > 0) {
		return Type{}, fmt.Errorf("sample rate must be positive for kind %q, got %v", kind, sampleRate)
	}
	return Type{kind: kind, sampleRate: sampleRate}, nil
}

// MustType is NewType for statically-known-good arguments; it panics on error.
func MustType(kind Kind, sampleRate float64) Type {
	t, err := NewType(kind, sampleRate)
	if err != nil {
		panic(err)
	}
	return t
}

// Kind returns the signal kind.
func (t Type) Kind() Kind {
	if t.kind == "" {
		return KindNone
	}
	return t.kind
}

// SampleRate returns the sample rate in samples per second, zero for KindNone.
func (t Type) SampleRate() float64 {
	return t.sampleRate
}

// IsTwoSided reports whether the signal has a two-sided spectrum around DC.
func (t Type) IsTwoSided() bool {
	return t.Kind() == KindIQ
}

// ItemsPerSample returns the number of scalar items per sample: 0 for no
// signal, 1 for mono, 2 for complex or stereo streams.
func (t Type) ItemsPerSample() int {
	switch t.Kind() {
	case KindNone:
		return 0
	case KindMono:
		return 1
	default:
		return 2
	}
}

// CompatibleItems reports whether streams of the two types carry
// interchangeable sample items.
func (t Type) CompatibleItems(other Type) bool {
	return t.ItemsPerSample() == other.ItemsPerSample()
}

// String returns e.g. "IQ@44100".
func (t Type) String() string {
	if t.Kind() == KindNone {
		return string(KindNone)
	}
	return fmt.Sprintf("%s@%g", t.Kind(), t.sampleRate)
}
