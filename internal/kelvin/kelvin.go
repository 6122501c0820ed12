// Package kelvin models the linear RGB color of a blackbody radiator and
// derives per-channel white-balance corrections from a color temperature.
//
// The model is a rational fit: each channel is m0/(T+m1)+m2 with one set of
// coefficients for temperatures up to 6500K and another above. Below 1000K
// the result blends smoothly to pure white, so a temperature of 0 acts as a
// "no correction" sentinel.
package kelvin

import (
	"golang.org/x/image/math/f32"
)

// Valid temperature domain. Inputs outside it are clamped before the
// rational model is evaluated; the smoothstep blend below MinTemp only
// affects the mix toward white, never the model input.
const (
	MinTemp = 1000.0
	MaxTemp = 40000.0
)

// Pivot between the two coefficient sets.
const pivotTemp = 6500.0

// scaleFloor keeps the diagonal correction finite. The rational fit clamps
// the blue channel to 0 for temperatures up to roughly 1772K, so a plain
// reciprocal would divide by zero there.
const scaleFloor = 1e-3

// Rational-model coefficients, empirical calibration data. Row-major
// f32.Mat3: row 0 is m0 per channel (R, G, B), row 1 is m1, row 2 is m2.
var (
	warmCoeff = f32.Mat3{
		0, -2902.1955373783176, -8257.7997278925690,
		0, 1669.5803561666639, 2575.2827530017594,
		1, 1.3302673723350029, 1.8993753891711275,
	}
	coolCoeff = f32.Mat3{
		1745.0425298314172, 1216.6168361476490, -8257.7997278925690,
		-2666.3474220535695, -2173.1012343082230, 2575.2827530017594,
		0.55995389139931482, 0.70381203140554553, 1.8993753891711275,
	}
)

// RGB returns the linear color of a blackbody radiator at the given
// temperature, each channel in [0,1]. Temperatures at or below 0 return
// pure white (1,1,1); between 0 and MinTemp the result blends smoothly
// from white to the 1000K color.
func RGB(temperature float32) f32.Vec3 {
	t := clamp(temperature, MinTemp, MaxTemp)
	m := &warmCoeff
	if temperature > pivotTemp {
		m = &coolCoeff
	}

	var body f32.Vec3
	for c := 0; c < 3; c++ {
		body[c] = clamp(m[c]/(t+m[3+c])+m[6+c], 0, 1)
	}

	// Blend to white as the temperature falls from MinTemp to 0.
	w := smoothstep(MinTemp, 0, temperature)
	return f32.Vec3{
		mix(body[0], 1, w),
		mix(body[1], 1, w),
		mix(body[2], 1, w),
	}
}

// Scale returns the diagonal white-balance correction diag(1/r, 1/g, 1/b)
// for the blackbody color at the given temperature. Channels are floored
// at a small positive value so the reciprocal is always defined.
func Scale(temperature float32) f32.Vec3 {
	ref := RGB(temperature)
	return f32.Vec3{
		1 / max32(ref[0], scaleFloor),
		1 / max32(ref[1], scaleFloor),
		1 / max32(ref[2], scaleFloor),
	}
}

// smoothstep is the Hermite interpolant clamped to [0,1]. Edges may be
// given in decreasing order, matching GLSL semantics.
func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
