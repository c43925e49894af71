// Package telemetry defines the message contract through which device
// components report observations about external objects (stations, vehicles,
// antenna positions), and a hub that fans those messages out to consumers.
//
// Producers never block on consumers: a subscriber that cannot keep up loses
// messages rather than stalling the device side.
package telemetry
