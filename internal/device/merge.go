package device

import (
	"fmt"
	"strings"

	"github.com/radio-control/sdrhal/internal/values"
)

// Merge combines a list of devices into one. A single-element list is
// returned as-is (the same Device, not a copy). Otherwise a new composite
// Device is built:
//
//   - names join with "+" in input order, skipping unnamed devices;
//   - at most one input may contribute a receive driver, and at most one a
//     transmit driver;
//   - components keep their keys unless a key appears on more than one
//     device, in which case every key of each colliding device is prefixed
//     with that device's input index;
//   - frequency control points compose per MergeVFOs, counting only devices
//     with a real tuning control.
//
// Merging never mutates its inputs, but the composite shares the driver and
// component references with them: do not independently close a device that
// has been merged into a still-live composite.
func Merge(devices []*Device) (*Device, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: at least one device must be provided", ErrConfiguration)
	}
	if len(devices) == 1 {
		return devices[0], nil
	}

	var names []string
	var rxDrivers []RXDriver
	var txDrivers []TXDriver
	var vfoCells []values.Cell
	for _, d := range devices {
		if d.Name() != "" {
			names = append(names, d.Name())
		}
		if d.CanReceive() {
			rxDrivers = append(rxDrivers, d.RX())
		}
		if d.CanTransmit() {
			txDrivers = append(txDrivers, d.TX())
		}
		if d.CanTune() {
			vfoCells = append(vfoCells, d.VFOCell())
		}
	}

	rx, err := atMostOne("RX driver", rxDrivers)
	if err != nil {
		return nil, err
	}
	tx, err := atMostOne("TX driver", txDrivers)
	if err != nil {
		return nil, err
	}
	vfo, err := MergeVFOs(vfoCells)
	if err != nil {
		return nil, err
	}

	return New(Options{
		Name:       strings.Join(names, "+"),
		RX:         rx,
		TX:         tx,
		VFO:        vfo,
		Components: mergeComponents(devices),
	}), nil
}

// mergeComponents unions component mappings, re-establishing key uniqueness.
// A device whose keys all avoid collision keeps them unprefixed; a device
// with any colliding key gets all its keys prefixed with its input index,
// which is deterministic and stable for a given input order.
func mergeComponents(devices []*Device) map[string]Component {
	keyCount := make(map[string]int)
	for _, d := range devices {
		for key := range d.Components() {
			keyCount[key]++
		}
	}

	merged := make(map[string]Component)
	for i, d := range devices {
		prefix := ""
		for key := range d.Components() {
			if keyCount[key] > 1 {
				prefix = fmt.Sprintf("%d-", i)
				break
			}
		}
		for key, component := range d.Components() {
			merged[prefix+key] = component
		}
	}
	return merged
}

// atMostOne returns the sole item, the zero value for an empty list, or a
// configuration error for two or more.
func atMostOne[T any](what string, items []T) (T, error) {
	var zero T
	switch len(items) {
	case 0:
		return zero, nil
	case 1:
		return items[0], nil
	default:
		return zero, fmt.Errorf("%w: exactly one %s must be provided, found %d", ErrConfiguration, what, len(items))
	}
}

// MergeVFOs composes frequency control points. Each input is either a fixed
// contribution (its allowed-interval set collapses to a single value) or a
// genuinely variable point. All fixed contributions sum; then:
//
//   - no variable point and a zero sum: no VFO at all (nil);
//   - no variable point and a non-zero sum: a constant point at the sum;
//   - one variable point and a zero sum: that point, unchanged;
//   - one variable point and a non-zero sum: a view over the variable point
//     that adds the sum on read and subtracts it on write, with the allowed
//     intervals shifted likewise — the variable point stays authoritative;
//   - two or more variable points: a configuration error.
//
// A device may thus carry both a fixed upconversion offset and a real
// tunable oscillator; the user sees a single additive frequency.
func MergeVFOs(cells []values.Cell) (values.Cell, error) {
	fixed := 0.0
	var variable []values.Cell
	for _, cell := range cells {
		if p, ok := cell.Type().SinglePoint(); ok {
			fixed += p
		} else {
			variable = append(variable, cell)
		}
	}

	switch len(variable) {
	case 0:
		if fixed == 0.0 {
			return nil, nil
		}
		return values.ConstantCell(fixed), nil
	case 1:
		base := variable[0]
		if fixed == 0.0 {
			return base, nil
		}
		offset := fixed
		return values.NewViewCell(values.ViewCellOptions{
			Base:         base,
			GetTransform: func(x float64) float64 { return x + offset },
			SetTransform: func(x float64) float64 { return x - offset },
			Type:         base.Type().ShiftedBy(offset),
			Writable:     true,
			Persists:     base.Metadata().Persists,
		}), nil
	default:
		return nil, fmt.Errorf("%w: multiple non-fixed frequency control points not supported", ErrConfiguration)
	}
}
