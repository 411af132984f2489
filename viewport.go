package fractal

// Viewport owns the authoritative complex-plane bounds mapped onto a canvas
// and keeps them consistent with the canvas aspect ratio. All mutation goes
// through its methods; Bounds returns value snapshots only.
//
// After every mutating call the ordering invariant (MinReal < MaxReal,
// MinImag < MaxImag) and the aspect invariant
// (RealRange/ImagRange == canvasW/canvasH, to float tolerance) hold,
// provided they held for the inputs. Non-finite bounds, non-positive canvas
// dimensions, and non-positive zoom factors are caller errors; the viewport
// does not clamp or repair them.
type Viewport struct {
	bounds  Bounds
	canvasW float64
	canvasH float64
}

// NewViewport creates a viewport over the given region. When canvas
// dimensions are known at construction they are recorded and the imaginary
// range is corrected about its center so the aspect invariant holds
// immediately. Pass zero dimensions if the canvas size is not yet known.
func NewViewport(b Bounds, canvasW, canvasH float64) *Viewport {
	v := &Viewport{bounds: b}
	if canvasW > 0 && canvasH > 0 {
		v.canvasW = canvasW
		v.canvasH = canvasH
		v.enforceAspect()
	}
	return v
}

// Bounds returns a snapshot of the current region. No side effects.
func (v *Viewport) Bounds() Bounds {
	return v.bounds
}

// CanvasSize returns the last-known canvas dimensions, or zeros if none were
// ever supplied.
func (v *Viewport) CanvasSize() (w, h float64) {
	return v.canvasW, v.canvasH
}

// SetBounds replaces the region wholesale and re-enforces the aspect
// invariant against the recorded canvas dimensions. Used for region jumps
// and animated glides; pan/zoom/resize are the usual mutation paths.
func (v *Viewport) SetBounds(b Bounds) {
	v.bounds = b
	if v.canvasW > 0 && v.canvasH > 0 {
		v.enforceAspect()
	}
}

// CanvasToComplex converts the pixel position (px, py) on a w×h canvas to
// the complex coordinate it displays. Screen rows grow downward while the
// imaginary axis grows upward, so py is inverted.
func (v *Viewport) CanvasToComplex(px, py, w, h float64) (re, im float64) {
	re = v.bounds.MinReal + (px/w)*v.bounds.RealRange()
	im = v.bounds.MaxImag - (py/h)*v.bounds.ImagRange()
	return re, im
}

// Pan translates the region by a drag of (dx, dy) pixels on a w×h canvas.
// Dragging right reveals content to the left, so the real axis moves by
// -(dx/w)·RealRange; dragging down reveals content above, so the imaginary
// axis moves by +(dy/h)·ImagRange. Ranges are unchanged.
func (v *Viewport) Pan(dx, dy, w, h float64) {
	shiftRe := -(dx / w) * v.bounds.RealRange()
	shiftIm := (dy / h) * v.bounds.ImagRange()

	v.bounds.MinReal += shiftRe
	v.bounds.MaxReal += shiftRe
	v.bounds.MinImag += shiftIm
	v.bounds.MaxImag += shiftIm

	v.canvasW = w
	v.canvasH = h
	v.enforceAspect()
}

// Zoom scales the region by 1/factor about the canvas position (fx, fy):
// factor > 1 zooms in, factor < 1 zooms out, factor == 1 is a no-op beyond
// aspect re-enforcement. The complex coordinate under (fx, fy) maps to the
// same canvas position before and after the call.
//
// Extreme factors are not clamped; repeated deep zooms will eventually
// exhaust float64 resolution. Recovery is the caller's job (SetBounds with
// a sane region).
func (v *Viewport) Zoom(factor, fx, fy, w, h float64) {
	focalRe, focalIm := v.CanvasToComplex(fx, fy, w, h)

	// Fractional position of the focal point within each axis range.
	fracRe := (focalRe - v.bounds.MinReal) / v.bounds.RealRange()
	fracIm := (v.bounds.MaxImag - focalIm) / v.bounds.ImagRange()

	newRealRange := v.bounds.RealRange() / factor
	newImagRange := v.bounds.ImagRange() / factor

	// Reposition so the focal point keeps its fractional position.
	v.bounds.MinReal = focalRe - fracRe*newRealRange
	v.bounds.MaxReal = v.bounds.MinReal + newRealRange
	v.bounds.MaxImag = focalIm + fracIm*newImagRange
	v.bounds.MinImag = v.bounds.MaxImag - newImagRange

	v.canvasW = w
	v.canvasH = h
	v.enforceAspect()
}

// Resize adapts the region to a new canvas size, anchoring the top-left
// complex corner (MinReal, MaxImag) and preserving the real-axis scale
// (complex units per pixel). With no previously recorded dimensions it
// falls back to an aspect-only correction anchored top-left.
func (v *Viewport) Resize(w, h float64) {
	if v.canvasW > 0 {
		scale := v.bounds.RealRange() / v.canvasW
		v.bounds.MaxReal = v.bounds.MinReal + scale*w
	}
	v.bounds.MinImag = v.bounds.MaxImag - v.bounds.RealRange()*h/w

	v.canvasW = w
	v.canvasH = h
}

// enforceAspect corrects the imaginary range about its center so that
// RealRange/ImagRange equals canvasW/canvasH. The real range is never
// touched; horizontal extent is what pan and zoom establish.
func (v *Viewport) enforceAspect() {
	wantImagRange := v.bounds.RealRange() * v.canvasH / v.canvasW
	centerIm := (v.bounds.MinImag + v.bounds.MaxImag) / 2
	v.bounds.MinImag = centerIm - wantImagRange/2
	v.bounds.MaxImag = centerIm + wantImagRange/2
}
