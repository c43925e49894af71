// Package types defines value types shared across the hardware abstraction
// layer, most importantly Range: a set of allowed intervals used to describe
// tunable frequencies and usable bandwidth.
package types
