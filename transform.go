package jpegli

import "fmt"

// transformKind discriminates the per-channel transform variant.
type transformKind uint8

const (
	kindNone   transformKind = iota // zero value, not configured
	kindFast                        // full-resolution 8x8 butterfly
	kindScaled                      // any other output size
)

// Transform is the inverse-transform choice for one image channel. It is
// resolved once at configuration time with Select and then passed by value
// into the per-block loop, so the hot path carries no per-block branch on
// the output size and no indirect call. The zero value is not usable;
// Apply panics on it.
type Transform struct {
	kind transformKind
	size int
}

// Select resolves the transform for a channel configured with the given
// output block size. A size outside [1, 16] is a contract violation and
// panics: the value derives from validated scan configuration, and
// continuing would silently emit wrong samples.
func Select(outputSize int) Transform {
	if outputSize < 1 || outputSize > 16 {
		panic(fmt.Sprintf("jpegli: output size %d out of range [1, 16]", outputSize))
	}

	if outputSize == 8 {
		return Transform{kind: kindFast, size: 8}
	}

	return Transform{kind: kindScaled, size: outputSize}
}

// SelectChannels resolves one Transform per channel, in order.
func SelectChannels(outputSizes []int) []Transform {
	ts := make([]Transform, len(outputSizes))
	for i, size := range outputSizes {
		ts[i] = Select(size)
	}

	return ts
}

// Size returns the resolved output block size.
func (t Transform) Size() int {
	return t.size
}

// Apply converts one quantized coefficient block into a Size() x Size()
// spatial block written to out at the given row stride, in elements.
// dequant and bias are the channel's 64-entry tables, read-only during the
// call. scratch must hold at least ScratchSize floats; its contents are
// undefined on entry and exit, and it must not be shared with a
// concurrently executing call. out and scratch are the only memory
// written.
//
// Coefficients and tables must be finite; the kernel performs no NaN or
// infinity detection, and non-finite input produces undefined output.
func (t Transform) Apply(coeffs *[64]int16, dequant, bias *[64]float32, scratch []float32, out []float32, stride int) {
	if len(scratch) < ScratchSize {
		panic(fmt.Sprintf("jpegli: scratch buffer too small: %d < %d", len(scratch), ScratchSize))
	}

	switch t.kind {
	case kindFast:
		inverseTransform8x8(coeffs, dequant, bias, scratch, out, stride)
	case kindScaled:
		inverseTransformScaled(coeffs, dequant, bias, scratch, out, stride, t.size)
	default:
		panic("jpegli: Transform not configured, use Select")
	}
}
