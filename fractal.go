package fractal

// Bounds is an axis-aligned rectangular region of the complex plane.
// Real values grow to the right, imaginary values grow upward — the
// opposite of screen rows, which grow downward.
type Bounds struct {
	MinReal, MaxReal float64
	MinImag, MaxImag float64
}

// RealRange returns the width of the region along the real axis.
func (b Bounds) RealRange() float64 {
	return b.MaxReal - b.MinReal
}

// ImagRange returns the height of the region along the imaginary axis.
func (b Bounds) ImagRange() float64 {
	return b.MaxImag - b.MinImag
}

// Center returns the complex-plane midpoint of the region.
func (b Bounds) Center() (re, im float64) {
	return (b.MinReal + b.MaxReal) / 2, (b.MinImag + b.MaxImag) / 2
}

// lerpBounds linearly interpolates between two regions. t=0 yields a,
// t=1 yields b.
func lerpBounds(a, b Bounds, t float64) Bounds {
	return Bounds{
		MinReal: a.MinReal + (b.MinReal-a.MinReal)*t,
		MaxReal: a.MaxReal + (b.MaxReal-a.MaxReal)*t,
		MinImag: a.MinImag + (b.MinImag-a.MinImag)*t,
		MaxImag: a.MaxImag + (b.MaxImag-a.MaxImag)*t,
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Mode is the interaction controller's input state.
type Mode uint8

const (
	ModeIdle    Mode = iota // no button held; wheel zoom still applies
	ModePanning             // primary button held, drags pan the viewport
)
