package jpegli

// Inverse Discrete Cosine Transform, fast path (output size 8).
//
// The 1-D transform is a recursive even/odd butterfly factorization,
// O(N log N) instead of the O(N^2) direct form. It operates on rows of 8
// float32 lanes: the 8 columns of a block move through the transform
// together, which keeps the per-row work as plain fixed-width loops the
// compiler can vectorize.

// Multipliers for the even/odd recombination step.
// wcN[i] = 1/(2*cos((i+0.5)*pi/N)) for i in [0, N/2).
var (
	wc4 = [2]float32{
		0.541196100146197,
		1.3065629648763764,
	}
	wc8 = [4]float32{
		0.5097955791041592,
		0.6013448869350453,
		0.8999762231364156,
		2.5629154477415055,
	}
)

const sqrt2 = 1.41421356237

// idctScale folds the 1/(2*sqrt2) DC normalization of both 1-D passes into
// a single multiply applied to the dequantized block, so a DC-only block
// decodes to coefficient*dequant/8 at every position.
const idctScale = 0.125

// normalizeBlock applies idctScale to a dequantized block before either
// transform path runs.
func normalizeBlock(block []float32) {
	for k := range block {
		block[k] *= idctScale
	}
}

// transposeBlock writes the 8x8 transpose of from into to.
// The two blocks must not overlap.
func transposeBlock(from, to []float32) {
	_ = from[63]
	_ = to[63]

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			to[x*8+y] = from[y*8+x]
		}
	}
}

// forwardEvenOdd gathers the n input rows into out: original positions
// 0,2,4,... become the first n/2 rows (the even half), positions 1,3,5,...
// the last n/2 rows (the odd half). Rows in out are packed at stride 8.
func forwardEvenOdd(n int, from []float32, fromStride int, out []float32) {
	half := n / 2

	for i := 0; i < half; i++ {
		src := 2 * i * fromStride
		copy(out[i*8:i*8+8], from[src:src+8])
	}

	for i := half; i < n; i++ {
		src := (2*(i-half) + 1) * fromStride
		copy(out[i*8:i*8+8], from[src:src+8])
	}
}

// bTranspose prepares the odd half for its sub-transform: adjacent rows are
// accumulated from the top down, and the first row is scaled by sqrt2.
func bTranspose(n int, coeff []float32) {
	for i := n - 1; i > 0; i-- {
		row := coeff[i*8 : i*8+8]
		prev := coeff[(i-1)*8 : i*8]
		for l := 0; l < 8; l++ {
			row[l] += prev[l]
		}
	}

	for l := 0; l < 8; l++ {
		coeff[l] *= sqrt2
	}
}

// multiplyAndAdd recombines the transformed halves:
// out[i] = even[i] + wc[i]*odd[i], out[n-1-i] = even[i] - wc[i]*odd[i].
func multiplyAndAdd(n int, coeff []float32, out []float32, outStride int) {
	half := n / 2

	wc := wc8[:]
	if n == 4 {
		wc = wc4[:]
	}

	for i := 0; i < half; i++ {
		mul := wc[i]
		even := coeff[i*8 : i*8+8]
		odd := coeff[(half+i)*8 : (half+i)*8+8]
		lo := out[i*outStride : i*outStride+8]
		hi := out[(n-1-i)*outStride : (n-1-i)*outStride+8]

		for l := 0; l < 8; l++ {
			lo[l] = even[l] + mul*odd[l]
			hi[l] = even[l] - mul*odd[l]
		}
	}
}

// idct1D computes the n-point inverse transform down the rows of an 8-lane
// block: element i of each of the 8 columns lives at from[i*fromStride].
// n must be a power of two in [1, 8]. Recursive levels copy their input
// into a local buffer first, so from and to may be the same block.
func idct1D(n int, from []float32, fromStride int, to []float32, toStride int) {
	switch n {
	case 1:
		copy(to[:8], from[:8])
	case 2:
		for l := 0; l < 8; l++ {
			a, b := from[l], from[fromStride+l]
			to[l] = a + b
			to[toStride+l] = a - b
		}
	default:
		var tmp [64]float32
		forwardEvenOdd(n, from, fromStride, tmp[:])
		idct1D(n/2, tmp[:], 8, tmp[:], 8)
		bTranspose(n/2, tmp[n*4:])
		idct1D(n/2, tmp[n*4:], 8, tmp[n*4:], 8)
		multiplyAndAdd(n, tmp[:], to, toStride)
	}
}

// computeIDCT8x8 realizes the 2-D transform as two separable 1-D passes
// with an intervening transpose. block0 holds the input and is clobbered;
// block1 is a second 64-element work buffer. The result is written to out
// as 8 rows of 8 samples at the given row stride.
func computeIDCT8x8(block0, block1 []float32, out []float32, stride int) {
	transposeBlock(block0, block1)
	idct1D(8, block1, 8, block0, 8)
	transposeBlock(block0, block1)
	idct1D(8, block1, 8, out, stride)
}

// inverseTransform8x8 is the full-resolution per-block path: dequantize,
// normalize, transform, write 8x8 samples at the caller's stride.
func inverseTransform8x8(qblock *[64]int16, dequant, bias *[64]float32, scratch []float32, out []float32, stride int) {
	block0 := scratch[0:64]
	block1 := scratch[64:128]

	dequantBlock(qblock, dequant, bias, block0)
	normalizeBlock(block0)
	computeIDCT8x8(block0, block1, out, stride)
}
