package colorspace

// decodeLUT maps an 8-bit sRGB component directly to its linear value.
// 256 entries, 1KB. Whole-buffer renders decode every pixel, so the
// table replaces two float ops and a pow per component on the hot path.
var decodeLUT [256]float32

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}
}

// ByteToLinear converts an 8-bit sRGB component to linear via table lookup.
// Exact (not approximate): the table is built from SRGBToLinear.
func ByteToLinear(b uint8) float32 {
	return decodeLUT[b]
}

// LinearToByte converts a linear component to an 8-bit sRGB value,
// clamping to [0,1] and rounding to nearest.
func LinearToByte(l float32) uint8 {
	s := LinearToSRGB(l)
	if s <= 0 {
		return 0
	}
	if s >= 1 {
		return 255
	}
	return uint8(s*255.0 + 0.5)
}
