package grade

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/grade/internal/colorspace"
	"github.com/gogpu/grade/internal/kelvin"
	"github.com/gogpu/grade/internal/tone"
)

// ProcessPixel runs the full pipeline on a single sRGB-encoded pixel and
// returns the sRGB-encoded result. It is a pure function of its arguments
// and safe to call from any number of goroutines.
//
// With p.ShowOriginal set the pixel only round-trips through the codec,
// which is the identity to within floating-point tolerance.
func ProcessPixel(c RGBA, p Params) RGBA {
	rgb := colorspace.Decode(f32.Vec3{c.R, c.G, c.B})
	a := c.A
	if !p.ShowOriginal {
		rgb, a = applyLinear(rgb, a, p, kelvin.Scale(p.Temperature))
	}
	enc := colorspace.Encode(rgb)
	return RGBA{R: enc[0], G: enc[1], B: enc[2], A: a}
}

// applyLinear is the linear-light portion of the pipeline: white balance,
// exposure, levels, and the optional invert. wb is the precomputed
// white-balance scale so whole-buffer renders derive it once per pass.
//
// The result is clamped to [0,1]: the levels rescale can push saturated
// colors past 1, and both invert and the encoder require the nominal range.
func applyLinear(rgb f32.Vec3, alpha float32, p Params, wb f32.Vec3) (f32.Vec3, float32) {
	rgb = f32.Vec3{rgb[0] * wb[0], rgb[1] * wb[1], rgb[2] * wb[2]}
	rgb = tone.Exposure(rgb, p.Brightness, p.Contrast)
	rgb = tone.Levels(rgb, p.WhitePt, p.BlackPt, p.Highlight, p.Shadow)
	rgb = f32.Vec3{clamp01(rgb[0]), clamp01(rgb[1]), clamp01(rgb[2])}

	if p.Invert {
		// Invert negates the whole RGBA vector, alpha included.
		rgb = f32.Vec3{1 - rgb[0], 1 - rgb[1], 1 - rgb[2]}
		alpha = 1 - alpha
	}
	return rgb, alpha
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
