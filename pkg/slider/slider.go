// Package slider maps integer slider ticks to the physical units the
// volume renderer expects.
//
// Every slider works on raw values scaled by Factor so that the UI can
// step in fractions of a unit while the physical value stays exact.
package slider

import "math"

// Factor separates UI tick resolution from physical units
const Factor = 16

// Quantize converts a physical value in [min, max] to raw slider ticks.
// Values outside the range are clamped first.
func Quantize(min, max, value int) int {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value * Factor
}

// Dequantize converts raw slider ticks back to physical units
func Dequantize(raw int) float64 {
	return float64(raw) / Factor
}

// ZoomRatio returns the zoom ratio for a raw zoom slider value
func ZoomRatio(raw int) float64 {
	return Dequantize(raw) / 100
}

// ClipDistance maps the raw clip slider value to [-1, 1], inverted,
// so that the slider at 0 leaves the volume unclipped.
func ClipDistance(raw int) float64 {
	dist := Dequantize(raw) / 100
	return 1 - 2*dist
}

// Angle returns the rotation or tilt angle in degrees
func Angle(raw int) float64 {
	return Dequantize(raw)
}

// Ratio returns the emission or absorption ratio for a raw slider value
func Ratio(raw int) float64 {
	return Dequantize(raw) / 100
}

// FromRatio converts an engine ratio (emission, absorption) back to raw ticks
func FromRatio(ratio float64) int {
	return int(math.Round(Factor * 100 * ratio))
}

// FromClipDistance converts a clip distance in [-1, 1] back to raw ticks
func FromClipDistance(clip float64) int {
	return FromRatio((1 - clip) / 2)
}

// FromAngle converts an angle in degrees back to raw ticks
func FromAngle(deg float64) int {
	return int(math.Round(Factor * deg))
}
