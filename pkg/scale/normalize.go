// Package scale remaps values between numeric ranges.
//
// The generator uses it to turn a uniform draw in [0, 1) into a polygon size
// multiplier that never collapses to zero but can still cover a whole panel:
//
//	mult := scale.Unit(rng.Float64()) // in [0.02, 1.0)
package scale

import (
	"errors"
	"math"
)

// Default target range used for polygon size multipliers.
const (
	DefaultTargetMin = 0.02
	DefaultTargetMax = 1.0
)

// ErrDegenerateRange is returned when the source range has zero width or a
// non-finite bound.
var ErrDegenerateRange = errors.New("scale: degenerate source range")

// Normalize linearly maps v from [rMin, rMax] onto [tMin, tMax].
// Values outside the source range extrapolate; nothing is clamped.
func Normalize(v, rMin, rMax, tMin, tMax float64) (float64, error) {
	if rMax == rMin || !finite(rMin) || !finite(rMax) {
		return 0, ErrDegenerateRange
	}
	return (v-rMin)/(rMax-rMin)*(tMax-tMin) + tMin, nil
}

// Unit maps v from [0, 1] onto [DefaultTargetMin, DefaultTargetMax].
func Unit(v float64) float64 {
	return v*(DefaultTargetMax-DefaultTargetMin) + DefaultTargetMin
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
