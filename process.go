package grade

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/grade/internal/colorspace"
	"github.com/gogpu/grade/internal/kelvin"
	"github.com/gogpu/grade/internal/parallel"
)

// ErrNilPixmap is returned when a render is given a nil source or
// destination buffer.
var ErrNilPixmap = errors.New("grade: pixmap must not be nil")

// Process applies the pipeline to every pixel of src and writes the result
// into dst. The two pixmaps must have identical dimensions; they may be
// the same pixmap for an in-place render, since each pixel depends only on
// itself.
//
// The image is partitioned into row bands and mapped across CPU workers;
// p is treated as an immutable snapshot for the duration of the pass.
// With p.ShowOriginal set, the source is copied through unchanged (the
// decode-encode round trip is exact on 8-bit data).
func Process(dst, src *Pixmap, p Params, opts ...RenderOption) error {
	if dst == nil || src == nil {
		return ErrNilPixmap
	}
	if dst.width != src.width || dst.height != src.height {
		return fmt.Errorf("grade: dimension mismatch: dst %dx%d, src %dx%d",
			dst.width, dst.height, src.width, src.height)
	}

	o := applyRenderOptions(opts)
	workers := parallel.Workers(o.workers)
	Logger().Debug("grade: render pass",
		"width", src.width, "height", src.height, "workers", workers)

	if p.ShowOriginal {
		copy(dst.data, src.data)
		return nil
	}

	// The white-balance correction depends only on the parameters, so it
	// is derived once per pass rather than once per pixel.
	wb := kelvin.Scale(p.Temperature)

	parallel.Run(src.height, workers, func(y0, y1 int) {
		processRows(dst, src, p, wb, y0, y1)
	})
	return nil
}

// ProcessInPlace applies the pipeline to pm, overwriting its pixels.
func ProcessInPlace(pm *Pixmap, p Params, opts ...RenderOption) error {
	return Process(pm, pm, p, opts...)
}

// ProcessImage is a convenience wrapper: it runs the pipeline over any
// image and returns the result as a new NRGBA image. It returns nil for a
// nil or empty source.
func ProcessImage(img image.Image, p Params, opts ...RenderOption) *image.NRGBA {
	if img == nil {
		return nil
	}
	src := FromImage(img)
	if src == nil {
		return nil
	}
	if err := ProcessInPlace(src, p, opts...); err != nil {
		return nil
	}
	return src.ToImage()
}

// processRows runs the pipeline over the half-open row range [y0, y1).
// Decoding goes through the 8-bit lookup table; all further math is the
// same linear-light path ProcessPixel uses.
func processRows(dst, src *Pixmap, p Params, wb f32.Vec3, y0, y1 int) {
	for i := y0 * src.width * 4; i < y1*src.width*4; i += 4 {
		rgb := f32.Vec3{
			colorspace.ByteToLinear(src.data[i+0]),
			colorspace.ByteToLinear(src.data[i+1]),
			colorspace.ByteToLinear(src.data[i+2]),
		}
		alpha := float32(src.data[i+3]) / 255

		rgb, alpha = applyLinear(rgb, alpha, p, wb)

		dst.data[i+0] = colorspace.LinearToByte(rgb[0])
		dst.data[i+1] = colorspace.LinearToByte(rgb[1])
		dst.data[i+2] = colorspace.LinearToByte(rgb[2])
		dst.data[i+3] = quantize(alpha)
	}
}
