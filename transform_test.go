package jpegli

import (
	"math"
	"sync"
	"testing"
)

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()

	fn()
}

func TestSelectSizes(t *testing.T) {
	for size := 1; size <= 16; size++ {
		tr := Select(size)
		if got := tr.Size(); got != size {
			t.Errorf("Select(%d).Size() = %d", size, got)
		}
	}
}

func TestSelectOutOfRangePanics(t *testing.T) {
	for _, size := range []int{-3, 0, 17, 64} {
		mustPanic(t, "Select", func() { Select(size) })
	}
}

func TestSelectChannels(t *testing.T) {
	sizes := []int{8, 4, 4}
	ts := SelectChannels(sizes)

	if len(ts) != len(sizes) {
		t.Fatalf("got %d transforms, want %d", len(ts), len(sizes))
	}
	for i, tr := range ts {
		if tr.Size() != sizes[i] {
			t.Errorf("channel %d: size %d, want %d", i, tr.Size(), sizes[i])
		}
	}
}

func TestApplyContractViolations(t *testing.T) {
	var coeffs [64]int16
	dequant, bias := identityTables()
	out := make([]float32, 64)

	// Zero-value Transform was never configured.
	var unset Transform
	mustPanic(t, "zero-value Apply", func() {
		unset.Apply(&coeffs, dequant, bias, make([]float32, ScratchSize), out, 8)
	})

	// Undersized scratch.
	mustPanic(t, "short scratch", func() {
		Select(8).Apply(&coeffs, dequant, bias, make([]float32, ScratchSize-1), out, 8)
	})
}

func TestScratchPool(t *testing.T) {
	b := GetScratch()
	if len(*b) < ScratchSize {
		t.Fatalf("pooled scratch has %d floats, want at least %d", len(*b), ScratchSize)
	}
	PutScratch(b)
}

// TestConcurrentApply exercises parallel per-block calls, each with its
// own scratch buffer, the way a decoder parallelizes across block rows.
func TestConcurrentApply(t *testing.T) {
	var coeffs [64]int16
	coeffs[0] = 1024

	dequant, bias := identityTables()
	dequant[0] = 0.125

	var wg sync.WaitGroup

	// One goroutine per size, covering the fast 8x8 path, the box-averaging
	// sizes and the direct-transform sizes side by side.
	for _, size := range []int{1, 2, 3, 4, 7, 8, 12, 16} {
		wg.Add(1)

		go func(size int) {
			defer wg.Done()

			scratch := GetScratch()
			defer PutScratch(scratch)

			tr := Select(size)
			out := make([]float32, size*size)

			for iter := 0; iter < 200; iter++ {
				tr.Apply(&coeffs, dequant, bias, *scratch, out, size)

				for _, v := range out {
					if math.Abs(float64(v)-16.0) > 1e-3 {
						t.Errorf("size %d: got %v, want uniform 16.0", size, v)
						return
					}
				}
			}
		}(size)
	}

	wg.Wait()
}
