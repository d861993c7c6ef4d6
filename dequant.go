package jpegli

// dequantBlock recovers approximate coefficient magnitudes from the
// quantized integers. Each nonzero coefficient is first pulled toward zero
// by the per-frequency bias, compensating the quantizer's rounding
// deadzone, and then scaled by the per-frequency multiplier. A zero
// coefficient stays exactly zero without reading either table, preserving
// the sparsity that upstream fast paths rely on.
//
// The rule is elementwise with no cross-element dependency, so results do
// not depend on any batching width.
func dequantBlock(qblock *[64]int16, dequant, bias *[64]float32, block []float32) {
	// Hint BCE. The loop writes all 64 elements.
	_ = block[63]

	for k := 0; k < 64; k++ {
		q := qblock[k]
		if q == 0 {
			block[k] = 0
			continue
		}

		b := bias[k]
		if q < 0 {
			b = -b
		}

		block[k] = (float32(q) - b) * dequant[k]
	}
}
