// Package colorspace converts between gamma-encoded sRGB and linear RGB.
//
// Stored and displayed pixel values are sRGB-encoded; all color math in
// grade happens in linear space, where values are proportional to light
// energy. This package is the only place conversions happen: callers track
// which encoding a value is in, and the conversion functions never clamp.
package colorspace

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// SRGBToLinear converts one sRGB component to linear (the sRGB EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4).
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts one linear component to sRGB (the sRGB OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// Decode converts an sRGB-encoded RGB triplet to linear.
// Alpha is never gamma-encoded, so it is not part of this contract.
func Decode(v f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		SRGBToLinear(v[0]),
		SRGBToLinear(v[1]),
		SRGBToLinear(v[2]),
	}
}

// Encode converts a linear RGB triplet back to sRGB.
func Encode(v f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		LinearToSRGB(v[0]),
		LinearToSRGB(v[1]),
		LinearToSRGB(v[2]),
	}
}
