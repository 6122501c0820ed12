package grade

// RenderOption configures a single render pass.
//
// Example:
//
//	// Pin the render to two workers:
//	grade.Process(dst, src, p, grade.WithWorkers(2))
type RenderOption func(*renderOptions)

// renderOptions holds the resolved per-render configuration.
type renderOptions struct {
	workers int
}

// defaultRenderOptions returns the default render configuration:
// one worker per CPU.
func defaultRenderOptions() renderOptions {
	return renderOptions{workers: 0}
}

// WithWorkers sets the number of CPU workers for a render pass.
// Values <= 0 select GOMAXPROCS. A value of 1 renders sequentially on the
// calling goroutine, which is useful for deterministic profiling.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}

func applyRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
