package grade

import "image/color"

// RGBA is a pixel value with float32 components in [0, 1].
//
// The RGB components may be sRGB-encoded or linear; the encoding is
// tracked by the caller, and only the pipeline converts between the two.
// Alpha is never gamma-encoded.
type RGBA struct {
	R, G, B, A float32
}

// Predefined colors, sRGB-encoded.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Gray        = RGBA{0.5, 0.5, 0.5, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

// RGB creates an opaque pixel value from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts the pixel to the standard color.Color interface,
// quantizing to 8 bits per channel.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// FromColor converts a standard color.Color to an RGBA pixel value,
// un-premultiplying alpha.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// quantize clamps a component to [0,1] and rounds it to 8 bits.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
