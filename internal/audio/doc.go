// Package audio builds Devices around system audio ("sound card") hardware,
// the common path for soundcard-interfaced transceivers. The hardware itself
// is reached through a pluggable Backend, so the package carries the channel
// mapping and signal description logic without binding to one audio library.
package audio
