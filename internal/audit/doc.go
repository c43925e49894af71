// Package audit implements an append-only action log: every control action
// against a device (frequency changes, transmit transitions, shutdowns) is
// recorded with its parameters and outcome, one JSON object per line.
package audit
