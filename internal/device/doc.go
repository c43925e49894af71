// Package device implements the hardware aggregation model: a Device bundles
// a receive driver, a transmit driver, a tunable-frequency control point, and
// named auxiliary components behind one entity, and Merge combines several
// Devices into a single composite so distributed hardware (say, a receiver
// card plus a separate upconverter) presents as one unit.
//
// The package assumes single-threaded access from a control loop and performs
// no locking. Callers must pause any signal-processing execution before
// reconfiguring drivers (SetTransmitting, Close, structural rewiring), since
// drivers are not safe to reconfigure while streaming.
package device
