// Package jpegli implements the inverse-transform stage of a block-based
// image codec's decode path: it converts quantized 8x8 frequency-domain
// coefficient blocks into spatial sample blocks, optionally at a reduced or
// enlarged output size in [1, 16] so a decoder can render a smaller image
// without reconstructing full resolution first.
//
// The kernel is a pure function of its inputs: each call reads the
// coefficient block and the channel's dequantization and bias tables, and
// writes only the destination region and the supplied scratch buffer.
// Entropy decoding, quantization-table setup, chroma upsampling and color
// conversion all happen outside this package.
//
// Per-channel transform selection happens once at configuration time via
// [Select]; the resolved [Transform] value is then applied to every block of
// that channel. Concurrent calls are safe as long as each uses its own
// scratch buffer.
package jpegli

import "sync"

// ScratchSize is the minimum length, in float32 elements, of the scratch
// buffer passed to [Transform.Apply].
const ScratchSize = 192

// A pool of scratch buffers for callers that do not manage their own.
var scratchPool = sync.Pool{
	New: func() interface{} {
		b := make([]float32, ScratchSize)

		return &b
	},
}

// GetScratch returns a scratch buffer of at least ScratchSize floats.
// The buffer contents are undefined; a buffer must not be shared between
// two concurrently executing calls.
func GetScratch() *[]float32 {
	return scratchPool.Get().(*[]float32)
}

// PutScratch returns a buffer obtained from GetScratch to the pool.
func PutScratch(b *[]float32) {
	scratchPool.Put(b)
}
