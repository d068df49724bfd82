package srgb

import "github.com/gogpu/srgb/internal/parallel"

// pixelGrain is the smallest number of pixels handed to one worker.
const pixelGrain = 4096

// PixelConverter runs DecodePixels and EncodePixels on a fixed pool of
// goroutines. Results are identical to the package-level functions.
//
// A PixelConverter is safe for concurrent use. Call Close to stop its
// workers; a closed converter keeps working on the calling goroutine.
type PixelConverter struct {
	pool *parallel.Pool
}

// NewPixelConverter starts a converter with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPixelConverter(workers int) *PixelConverter {
	return &PixelConverter{pool: parallel.NewPool(workers)}
}

// DecodePixels is the parallel form of the package-level DecodePixels.
func (pc *PixelConverter) DecodePixels(dst []LinearColor, src []byte, o ChannelOrder) int {
	n := min(len(dst), len(src)/4)
	pc.pool.For(n, pixelGrain, func(lo, hi int) {
		decodeRange(dst, src, o, lo, hi)
	})
	return n
}

// EncodePixels is the parallel form of the package-level EncodePixels.
func (pc *PixelConverter) EncodePixels(dst []byte, src []LinearColor, o ChannelOrder) int {
	n := min(len(dst)/4, len(src))
	pc.pool.For(n, pixelGrain, func(lo, hi int) {
		encodeRange(dst, src, o, lo, hi)
	})
	return n
}

// Workers returns the number of worker goroutines.
func (pc *PixelConverter) Workers() int {
	return pc.pool.Workers()
}

// Close stops the worker goroutines. It is safe to call more than once.
func (pc *PixelConverter) Close() {
	pc.pool.Close()
}
