package jpegli

import (
	"math"
	"math/rand"
	"testing"
)

// TestDequantZeroShortCircuit verifies a zero coefficient dequantizes to
// exactly 0.0 without the tables being consulted: even pathological
// non-finite table entries must not leak into the output.
func TestDequantZeroShortCircuit(t *testing.T) {
	var qblock [64]int16
	var dequant, bias [64]float32
	for i := range dequant {
		dequant[i] = float32(math.NaN())
		bias[i] = float32(math.Inf(1))
	}

	block := make([]float32, 64)
	for i := range block {
		block[i] = -1
	}

	dequantBlock(&qblock, &dequant, &bias, block)

	for k, got := range block {
		if got != 0 {
			t.Fatalf("zero coefficient at index %d dequantized to %v, want exactly 0", k, got)
		}
	}
}

// TestDequantBias checks the deadzone correction: the bias is subtracted
// toward zero, so positive and negative coefficients of equal magnitude
// produce outputs of equal magnitude.
func TestDequantBias(t *testing.T) {
	var qblock [64]int16
	var dequant, bias [64]float32

	qblock[0] = 5
	qblock[1] = -5
	qblock[2] = 1
	qblock[3] = -1
	for i := range dequant {
		dequant[i] = 2
		bias[i] = 0.5
	}

	block := make([]float32, 64)
	dequantBlock(&qblock, &dequant, &bias, block)

	want := []float32{9, -9, 1, -1}
	for k, w := range want {
		if block[k] != w {
			t.Errorf("coefficient %d: got %v, want %v", qblock[k], block[k], w)
		}
	}
}

// TestDequantMatchesFormula compares the kernel against a float64 replica
// of the rule on random inputs.
func TestDequantMatchesFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	var qblock [64]int16
	var dequant, bias [64]float32
	for i := range qblock {
		qblock[i] = int16(rng.Intn(4095) - 2047)
		dequant[i] = 0.1 + 3*rng.Float32()
		bias[i] = rng.Float32()
	}

	block := make([]float32, 64)
	dequantBlock(&qblock, &dequant, &bias, block)

	for k, q := range qblock {
		var want float64
		if q != 0 {
			b := float64(bias[k])
			if q < 0 {
				b = -b
			}
			want = (float64(q) - b) * float64(dequant[k])
		}

		if diff := math.Abs(float64(block[k]) - want); diff > 1e-3 {
			t.Fatalf("index %d (q=%d): got %v, want %v", k, q, block[k], want)
		}
	}
}

// BenchmarkDequant measures the elementwise recovery pass alone.
func BenchmarkDequant(b *testing.B) {
	rng := rand.New(rand.NewSource(6))

	var qblock [64]int16
	var dequant, bias [64]float32
	for i := range qblock {
		qblock[i] = int16(rng.Intn(2047) - 1023)
		dequant[i] = 1
		bias[i] = 0.5
	}
	block := make([]float32, 64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dequantBlock(&qblock, &dequant, &bias, block)
	}
}
