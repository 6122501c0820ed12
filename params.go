package grade

import "github.com/gogpu/grade/internal/kelvin"

// Params is the full set of user-adjustable knobs for one render.
//
// A Params value is an immutable snapshot: take it by value, hand it to
// the pipeline, and mutate only your own copy between renders. Fields
// outside their documented range are clamped inside the pipeline, never
// rejected.
type Params struct {
	// Brightness is an additive offset in linear light. The practical UI
	// range is about [-1, 1]; 0 is neutral.
	Brightness float32

	// Contrast in [0, 1] is remapped internally to a multiplier
	// tan(pi*Contrast/2) pivoted at mid-gray: 0.5 is neutral, 0 flattens
	// to gray, values near 1 approach binary thresholding.
	Contrast float32

	// Highlight in [0, 1] controls the tone curve's bright-side softness:
	// 1 is the plain linear stretch, 0 maximal highlight rolloff.
	Highlight float32

	// Shadow in [0, 1] is the dark-side counterpart of Highlight.
	Shadow float32

	// WhitePt and BlackPt in [0, 1] bound the luminance interval that is
	// stretched onto the full output range. BlackPt below WhitePt is
	// expected; inverted ranges are clamped to a minimal interval.
	WhitePt float32
	BlackPt float32

	// Temperature is the white-balance control in Kelvin, valid over
	// [1000, 40000]. The sentinel 0 means "no correction". Values between
	// 0 and 1000 blend smoothly toward no correction.
	Temperature float32

	// Invert flips the image to its negative.
	Invert bool

	// ShowOriginal bypasses the whole pipeline, displaying the unmodified
	// source. Honored by Process and ProcessPixel.
	ShowOriginal bool
}

// DefaultParams returns the parameters a freshly opened photo starts with.
// Every stage is neutral except white balance, which assumes daylight
// (6500K) and therefore applies a slight correction.
func DefaultParams() Params {
	return Params{
		Contrast:    0.5,
		Highlight:   0.5,
		Shadow:      0.5,
		WhitePt:     1,
		Temperature: 6500,
	}
}

// IdentityParams returns the provably-neutral parameter set: the output
// equals the input to within floating-point tolerance for any pixel.
// Unlike DefaultParams, the white-balance sentinel 0 is used so no
// temperature correction applies at all.
func IdentityParams() Params {
	return Params{
		Contrast:    0.5,
		Highlight:   1,
		Shadow:      1,
		WhitePt:     1,
		Temperature: 0,
	}
}

// MinTemperature and MaxTemperature bound the valid white-balance domain.
// Temperatures outside it are clamped before use (0 excepted, which is the
// "no correction" sentinel).
const (
	MinTemperature = kelvin.MinTemp
	MaxTemperature = kelvin.MaxTemp
)
