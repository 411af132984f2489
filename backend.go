package fractal

// ComputeBackend is a pluggable iteration-count engine. Implementations are
// interchangeable at runtime: the renderer holds exactly one and swaps it
// only through Renderer.SetBackend.
//
// Both methods are synchronous. CalculateSet must equal the element-wise
// application of CalculatePoint, return one count per coordinate pair with
// result length min(len(re), len(im)), and every count must lie in
// [0, maxIterations].
type ComputeBackend interface {
	// CalculatePoint returns the number of iterations before the orbit of
	// c = re + im·i escapes the given radius, or maxIterations if it never
	// does.
	CalculatePoint(re, im float64, maxIterations uint32, escapeRadius float64) (uint32, error)

	// CalculateSet computes iteration counts for a batch of coordinates in
	// one call.
	CalculateSet(re, im []float64, maxIterations uint32, escapeRadius float64) ([]uint32, error)
}

// Options carries the per-render compute parameters.
type Options struct {
	// MaxIterations is the escape-time iteration cap. Defaults to 256.
	MaxIterations uint32
	// EscapeRadius is the orbit magnitude beyond which a point counts as
	// escaped. Defaults to 2, the classic Mandelbrot bailout.
	EscapeRadius float64
}

// DefaultOptions returns the standard compute parameters.
func DefaultOptions() Options {
	return Options{MaxIterations: 256, EscapeRadius: 2}
}

func (o Options) withDefaults() Options {
	if o.MaxIterations == 0 {
		o.MaxIterations = 256
	}
	if o.EscapeRadius == 0 {
		o.EscapeRadius = 2
	}
	return o
}
