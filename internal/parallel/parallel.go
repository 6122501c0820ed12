// Package parallel distributes per-row pixel work across CPU workers.
//
// A render pass is embarrassingly parallel: every pixel is independent, so
// the image is split into horizontal bands that workers process without any
// coordination beyond a WaitGroup. Bands are sized a few per worker so a
// slow band (cache misses, NUMA) cannot stall the whole pass behind one
// goroutine.
package parallel

import (
	"runtime"
	"sync"
)

// bandsPerWorker oversizes the band count relative to the worker count to
// smooth out uneven band cost.
const bandsPerWorker = 4

// minRowsPerBand keeps goroutine overhead below the per-band work for
// small images.
const minRowsPerBand = 16

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0 int
	Y1 int
}

// Bands splits height rows into at most count bands of near-equal size.
// It returns nil when height <= 0. Every row belongs to exactly one band.
func Bands(height, count int) []Band {
	if height <= 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}
	if count > height {
		count = height
	}

	bands := make([]Band, 0, count)
	size := (height + count - 1) / count
	for y := 0; y < height; y += size {
		end := y + size
		if end > height {
			end = height
		}
		bands = append(bands, Band{Y0: y, Y1: end})
	}
	return bands
}

// Workers resolves a requested worker count: values <= 0 mean GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Run executes fn over height rows using the given number of workers and
// blocks until every band has been processed. fn receives a half-open row
// range and must be safe to call concurrently with itself.
//
// Small images and a worker count of 1 run inline on the calling
// goroutine.
func Run(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}

	workers = Workers(workers)
	if workers == 1 || height <= minRowsPerBand {
		fn(0, height)
		return
	}

	bands := Bands(height, workers*bandsPerWorker)
	if len(bands) == 1 {
		fn(bands[0].Y0, bands[0].Y1)
		return
	}
	if workers > len(bands) {
		workers = len(bands)
	}

	queue := make(chan Band, len(bands))
	for _, b := range bands {
		queue <- b
	}
	close(queue)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for b := range queue {
				fn(b.Y0, b.Y1)
			}
		}()
	}
	wg.Wait()
}
