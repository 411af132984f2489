package fractal

import (
	"errors"
	"testing"
)

// testGrid returns coordinate arrays spanning interesting territory:
// deep interior, fast escapes, and points near the boundary.
func testGrid() (re, im []float64) {
	for x := -2.0; x <= 1.0; x += 0.13 {
		for y := -1.2; y <= 1.2; y += 0.17 {
			re = append(re, x)
			im = append(im, y)
		}
	}
	return re, im
}

func TestCalculatePointKnownValues(t *testing.T) {
	var b MandelbrotBackend

	// The origin never escapes.
	count, err := b.CalculatePoint(0, 0, 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	if count != 100 {
		t.Errorf("origin count = %d, want 100", count)
	}

	// c = 2+2i escapes on the first magnitude test after one step.
	count, _ = b.CalculatePoint(2, 2, 100, 2)
	if count != 1 {
		t.Errorf("count(2+2i) = %d, want 1", count)
	}

	// c = -1 cycles 0, -1, 0, -1, ... and never escapes.
	count, _ = b.CalculatePoint(-1, 0, 500, 2)
	if count != 500 {
		t.Errorf("count(-1) = %d, want 500", count)
	}
}

func TestCountsWithinBounds(t *testing.T) {
	re, im := testGrid()
	counts, err := MandelbrotBackend{}.CalculateSet(re, im, 64, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range counts {
		if c > 64 {
			t.Fatalf("counts[%d] = %d exceeds maxIterations", i, c)
		}
	}
}

// TestBatchMatchesPointwise verifies the backend contract: the batch result
// equals the element-wise application of the single-point function, for
// every backend.
func TestBatchMatchesPointwise(t *testing.T) {
	re, im := testGrid()
	backends := map[string]ComputeBackend{
		"mandelbrot": MandelbrotBackend{},
		"fast":       FastBackend{},
		"parallel":   ParallelBackend{Workers: 4},
	}
	for name, b := range backends {
		counts, err := b.CalculateSet(re, im, 128, 2)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(counts) != len(re) {
			t.Fatalf("%s: got %d counts, want %d", name, len(counts), len(re))
		}
		for i := range counts {
			single, err := b.CalculatePoint(re[i], im[i], 128, 2)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if counts[i] != single {
				t.Fatalf("%s: counts[%d] = %d, point = %d at (%g, %g)",
					name, i, counts[i], single, re[i], im[i])
			}
		}
	}
}

// TestBackendsAgree verifies the engines are interchangeable: identical
// counts for identical inputs.
func TestBackendsAgree(t *testing.T) {
	re, im := testGrid()
	reference, _ := MandelbrotBackend{}.CalculateSet(re, im, 256, 2)

	others := map[string]ComputeBackend{
		"fast":     FastBackend{},
		"parallel": ParallelBackend{Workers: 3},
	}
	for name, b := range others {
		counts, err := b.CalculateSet(re, im, 256, 2)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for i := range reference {
			if counts[i] != reference[i] {
				t.Fatalf("%s disagrees at (%g, %g): %d != %d",
					name, re[i], im[i], counts[i], reference[i])
			}
		}
	}
}

func TestBatchMinLengthRule(t *testing.T) {
	re := []float64{0, 1, 2, 3}
	im := []float64{0, 1}
	counts, err := MandelbrotBackend{}.CalculateSet(re, im, 32, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 2 {
		t.Errorf("len(counts) = %d, want min(4, 2) = 2", len(counts))
	}
}

func TestInteriorShortcutIsInterior(t *testing.T) {
	// Every point the shortcut claims is interior must survive the full
	// escape-time loop.
	for x := -1.6; x <= 0.6; x += 0.01 {
		for y := -0.7; y <= 0.7; y += 0.01 {
			if insideKnownInterior(x, y) {
				if c := escapeCount(x, y, 1000, 2); c != 1000 {
					t.Fatalf("(%g, %g) claimed interior but escaped after %d", x, y, c)
				}
			}
		}
	}
}

type failingBackend struct{ err error }

func (f failingBackend) CalculatePoint(re, im float64, maxIterations uint32, escapeRadius float64) (uint32, error) {
	return 0, f.err
}

func (f failingBackend) CalculateSet(re, im []float64, maxIterations uint32, escapeRadius float64) ([]uint32, error) {
	return nil, f.err
}

func TestParallelBackendPropagatesError(t *testing.T) {
	wantErr := errors.New("engine offline")
	b := ParallelBackend{Inner: failingBackend{err: wantErr}, Workers: 4}

	re, im := testGrid()
	_, err := b.CalculateSet(re, im, 64, 2)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestParallelBackendSmallBatch(t *testing.T) {
	// Fewer points than workers must not panic or drop counts.
	b := ParallelBackend{Workers: 16}
	counts, err := b.CalculateSet([]float64{0, 2}, []float64{0, 2}, 50, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 2 || counts[0] != 50 || counts[1] != 1 {
		t.Errorf("counts = %v, want [50 1]", counts)
	}
}
