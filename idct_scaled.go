package jpegli

// inverseTransformScaled produces a size x size output block from an 8x8
// coefficient block. size must be in [1, 16].
//
// Sizes 1, 2 and 4 box-average the full 8x8 result: averaging spatial
// samples over tiles whose side evenly divides 8 reproduces the orthogonal
// downsampling exactly, so no dedicated small transform is needed. That
// equivalence holds only for sizes dividing 8; every other size runs the
// separable two-pass direct transform.
func inverseTransformScaled(qblock *[64]int16, dequant, bias *[64]float32, scratch []float32, out []float32, stride int, size int) {
	block0 := scratch[0:64]
	block1 := scratch[64:128]

	dequantBlock(qblock, dequant, bias, block0)
	normalizeBlock(block0)

	switch size {
	case 8:
		computeIDCT8x8(block0, block1, out, stride)
	case 1:
		// The mean of the full 8x8 inverse is its DC term: every AC basis
		// function sums to zero over the block. The 1x1 output therefore
		// needs no transform at all.
		out[0] = block0[0]
	case 2, 4:
		block2 := scratch[128:192]
		computeIDCT8x8(block0, block1, block2, 8)

		if size == 4 {
			for iy := 0; iy < 4; iy++ {
				for ix := 0; ix < 4; ix++ {
					b := block2[16*iy+2*ix:]
					out[iy*stride+ix] = 0.25 * (b[0] + b[1] + b[8] + b[9])
				}
			}
		} else {
			for iy := 0; iy < 2; iy++ {
				for ix := 0; ix < 2; ix++ {
					b := block2[32*iy+4*ix:]
					out[iy*stride+ix] = 0.0625 * (b[0] + b[1] + b[2] + b[3] +
						b[8] + b[9] + b[10] + b[11] +
						b[16] + b[17] + b[18] + b[19] +
						b[24] + b[25] + b[26] + b[27])
				}
			}
		}
	default:
		// Separable two-pass direct transform. The column-pass
		// intermediate lives in scratch[64:192] at a fixed row stride of
		// 8 (at most 16 rows by 8 columns), which is why 192 floats of
		// scratch cover every output size.
		tmp := scratch[64 : 64+size*8]

		insize := size
		if insize > 8 {
			insize = 8
		}

		// Gather buffers are zero-padded explicitly: scratch contents are
		// undefined on entry and the shared transform loop reads all
		// eight lanes.
		var vec [8]float32
		var col [16]float32

		for ix := 0; ix < insize; ix++ {
			for iy := 0; iy < insize; iy++ {
				vec[iy] = block0[iy*8+ix]
			}
			for iy := insize; iy < 8; iy++ {
				vec[iy] = 0
			}

			idctGeneral1D(&vec, col[:], size)

			for iy := 0; iy < size; iy++ {
				tmp[iy*8+ix] = col[iy]
			}
		}

		for iy := 0; iy < size; iy++ {
			row := tmp[iy*8 : iy*8+8]
			for ix := 0; ix < insize; ix++ {
				vec[ix] = row[ix]
			}
			for ix := insize; ix < 8; ix++ {
				vec[ix] = 0
			}

			idctGeneral1D(&vec, out[iy*stride:], size)
		}
	}
}
