package device

import (
	"errors"
)

// ErrConfiguration is the class of fatal configuration errors surfaced at
// construction or merge time: conflicting drivers, unmergeable frequency
// control points, malformed backend parameters. These are never retried.
var ErrConfiguration = errors.New("invalid device configuration")
