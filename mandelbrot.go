package fractal

import (
	"runtime"
	"sync"
)

// MandelbrotBackend is the plain escape-time engine: it iterates z = z² + c
// from z = 0 until |z| exceeds the escape radius or the iteration cap is
// reached.
type MandelbrotBackend struct{}

// CalculatePoint implements ComputeBackend. It never fails.
func (MandelbrotBackend) CalculatePoint(re, im float64, maxIterations uint32, escapeRadius float64) (uint32, error) {
	return escapeCount(re, im, maxIterations, escapeRadius), nil
}

// CalculateSet implements ComputeBackend.
func (MandelbrotBackend) CalculateSet(re, im []float64, maxIterations uint32, escapeRadius float64) ([]uint32, error) {
	n := min(len(re), len(im))
	counts := make([]uint32, n)
	for i := 0; i < n; i++ {
		counts[i] = escapeCount(re[i], im[i], maxIterations, escapeRadius)
	}
	return counts, nil
}

// escapeCount is the escape-time loop shared by the local backends. The
// magnitude test precedes the iteration step, so a point escaping on the
// k-th test reports k counts.
func escapeCount(cr, ci float64, maxIterations uint32, escapeRadius float64) uint32 {
	zr, zi := 0.0, 0.0
	limit := escapeRadius * escapeRadius
	for i := uint32(0); i < maxIterations; i++ {
		if zr*zr+zi*zi > limit {
			return i
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return maxIterations
}

// FastBackend is an escape-time engine with interior shortcuts: points
// inside the main cardioid or the period-2 bulb are known never to escape,
// so they report maxIterations without iterating. Counts are identical to
// MandelbrotBackend for every input.
type FastBackend struct{}

// CalculatePoint implements ComputeBackend. It never fails.
func (FastBackend) CalculatePoint(re, im float64, maxIterations uint32, escapeRadius float64) (uint32, error) {
	if insideKnownInterior(re, im) {
		return maxIterations, nil
	}
	return escapeCount(re, im, maxIterations, escapeRadius), nil
}

// CalculateSet implements ComputeBackend.
func (b FastBackend) CalculateSet(re, im []float64, maxIterations uint32, escapeRadius float64) ([]uint32, error) {
	n := min(len(re), len(im))
	counts := make([]uint32, n)
	for i := 0; i < n; i++ {
		counts[i], _ = b.CalculatePoint(re[i], im[i], maxIterations, escapeRadius)
	}
	return counts, nil
}

// insideKnownInterior reports whether c = cr + ci·i lies in the main
// cardioid or the period-2 bulb.
func insideKnownInterior(cr, ci float64) bool {
	// Main cardioid: q(q + (x - 1/4)) <= y²/4 with q = (x - 1/4)² + y².
	x := cr - 0.25
	q := x*x + ci*ci
	if q*(q+x) <= 0.25*ci*ci {
		return true
	}
	// Period-2 bulb: circle of radius 1/4 around -1.
	dx := cr + 1
	return dx*dx+ci*ci <= 0.0625
}

// ParallelBackend fans batch calls out across worker goroutines and joins
// before returning, so the call stays synchronous for the caller. Counts are
// those of the wrapped backend; ordering is preserved.
type ParallelBackend struct {
	// Inner is the backend doing the actual math. Defaults to
	// MandelbrotBackend.
	Inner ComputeBackend
	// Workers caps the number of goroutines. Defaults to GOMAXPROCS.
	Workers int
}

// CalculatePoint implements ComputeBackend by delegating to Inner.
func (b ParallelBackend) CalculatePoint(re, im float64, maxIterations uint32, escapeRadius float64) (uint32, error) {
	return b.inner().CalculatePoint(re, im, maxIterations, escapeRadius)
}

// CalculateSet implements ComputeBackend. The batch is split into contiguous
// chunks, one per worker; the first chunk error, if any, is returned and the
// counts discarded.
func (b ParallelBackend) CalculateSet(re, im []float64, maxIterations uint32, escapeRadius float64) ([]uint32, error) {
	n := min(len(re), len(im))
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return b.inner().CalculateSet(re[:n], im[:n], maxIterations, escapeRadius)
	}

	counts := make([]uint32, n)
	errs := make([]error, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			part, err := b.inner().CalculateSet(re[lo:hi], im[lo:hi], maxIterations, escapeRadius)
			if err != nil {
				errs[w] = err
				return
			}
			copy(counts[lo:hi], part)
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}

func (b ParallelBackend) inner() ComputeBackend {
	if b.Inner != nil {
		return b.Inner
	}
	return MandelbrotBackend{}
}
