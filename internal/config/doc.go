// Package config loads and validates the YAML device configuration: which
// hardware pieces to aggregate (sound-card devices, fixed frequency shifts,
// antenna positions) and how to build and merge them into one logical device.
package config
