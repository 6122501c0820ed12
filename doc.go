// Package grade implements the color-correction pipeline of a photo
// editor: a deterministic, per-pixel transform that maps a stored
// (sRGB-encoded) image to a display-ready image under a set of
// user-adjustable parameters.
//
// # Pipeline
//
// Every pixel passes through five stages, all operating in linear light:
//
//	decode sRGB → white balance → exposure → tone curve (levels) → invert + encode
//
// The stages are pure functions of the input pixel and a [Params] value;
// there is no cross-pixel state, which makes whole-buffer renders
// embarrassingly parallel.
//
// # Quick start
//
//	src := grade.FromImage(img)
//	dst := grade.NewPixmap(src.Width(), src.Height())
//
//	p := grade.DefaultParams()
//	p.Brightness = 0.1
//	p.Temperature = 5200
//
//	if err := grade.Process(dst, src, p); err != nil {
//	    log.Fatal(err)
//	}
//	out := dst.ToImage()
//
// Single pixels can be transformed with [ProcessPixel], which is the same
// pipeline without the buffer plumbing.
//
// # Parameters
//
// [Params] is an immutable snapshot of the user's adjustment knobs for one
// render. [DefaultParams] matches a freshly opened photo (no visible
// change); [IdentityParams] is the provably-neutral set used in tests.
// Malformed parameters never cause errors: out-of-range values are clamped
// and degenerate combinations produce a degenerate-looking image, exactly
// as a live slider would.
//
// # Concurrency
//
// [Process] partitions the image into row bands and maps them across CPU
// workers; use [WithWorkers] to pin the count. All exported functions are
// safe for concurrent use as long as the caller does not mutate a Params
// value or pixel buffer mid-render.
package grade
