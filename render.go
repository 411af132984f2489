package fractal

import (
	"fmt"
	"time"
)

// Renderer drives the pixel surface. The exact path recomputes every pixel
// through the compute backend and commits the frame in one blit; the
// approximate paths are raster-only translate/scale operations on the
// previous frame, used for immediate feedback while the authoritative
// render is debounced.
type Renderer struct {
	viewport *Viewport
	backend  ComputeBackend
	colors   *ColorMap
	surface  Surface
	opts     Options

	lastRenderTime time.Duration

	// OnRenderComplete, when set, receives the elapsed wall-clock time of
	// each exact render. Display purposes only.
	OnRenderComplete func(time.Duration)

	// Scratch buffers reused across exact renders.
	re, im []float64
	pix    []byte
}

// NewRenderer creates a renderer over the given collaborators. Zero-valued
// Options fields fall back to DefaultOptions.
func NewRenderer(viewport *Viewport, backend ComputeBackend, colors *ColorMap, surface Surface, opts Options) *Renderer {
	return &Renderer{
		viewport: viewport,
		backend:  backend,
		colors:   colors,
		surface:  surface,
		opts:     opts.withDefaults(),
	}
}

// Backend returns the active compute backend.
func (r *Renderer) Backend() ComputeBackend {
	return r.backend
}

// LastRenderTime returns the elapsed time of the most recent successful
// exact render, or zero if none has completed.
func (r *Renderer) LastRenderTime() time.Duration {
	return r.lastRenderTime
}

// SetSurface swaps the draw surface. The current frame is lost; the next
// exact render repaints the new surface fully.
func (r *Renderer) SetSurface(s Surface) {
	r.surface = s
}

// ExactRender recomputes every pixel: one batched backend call for the full
// coordinate grid, colors mapped per count, one frame commit. On failure
// nothing is committed and the previous frame stays visible; the error
// propagates to the caller.
func (r *Renderer) ExactRender() (time.Duration, error) {
	start := time.Now()

	w, h := r.surface.Size()
	n := w * h
	if cap(r.re) < n {
		r.re = make([]float64, n)
		r.im = make([]float64, n)
		r.pix = make([]byte, n*4)
	}
	r.re = r.re[:n]
	r.im = r.im[:n]
	r.pix = r.pix[:n*4]

	fw, fh := float64(w), float64(h)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.re[i], r.im[i] = r.viewport.CanvasToComplex(float64(x), float64(y), fw, fh)
			i++
		}
	}

	counts, err := r.backend.CalculateSet(r.re, r.im, r.opts.MaxIterations, r.opts.EscapeRadius)
	if err != nil {
		return 0, fmt.Errorf("compute backend: %w", err)
	}
	if len(counts) != n {
		return 0, fmt.Errorf("compute backend: got %d counts, want %d", len(counts), n)
	}

	for i, count := range counts {
		c := r.colors.At(count, r.opts.MaxIterations)
		p := i * 4
		r.pix[p] = c.R
		r.pix[p+1] = c.G
		r.pix[p+2] = c.B
		r.pix[p+3] = c.A
	}
	r.surface.SetPixels(r.pix)

	elapsed := time.Since(start)
	r.lastRenderTime = elapsed
	if r.OnRenderComplete != nil {
		r.OnRenderComplete(elapsed)
	}
	return elapsed, nil
}

// ApproximatePan redraws the current frame translated by (dx, dy) pixels.
// Raster-only; no computed data is touched.
func (r *Renderer) ApproximatePan(dx, dy float64) {
	snap := r.surface.Snapshot()
	r.surface.Clear()
	r.surface.DrawSnapshot(snap, dx, dy, 1, 1)
}

// ApproximateZoom redraws the current frame scaled by factor so that the
// pixel under (fx, fy) stays visually fixed.
func (r *Renderer) ApproximateZoom(factor, fx, fy float64) {
	snap := r.surface.Snapshot()
	r.surface.Clear()
	r.surface.DrawSnapshot(snap, fx-fx*factor, fy-fy*factor, factor, factor)
}

// ApproximateReproject redraws the current frame, which displayed prev, as
// if it displayed next. Pure pan and pure zoom-about-a-point are special
// cases; this generalization serves animated glides where both change per
// tick. Both regions must share the surface's aspect ratio.
func (r *Renderer) ApproximateReproject(prev, next Bounds) {
	w, h := r.surface.Size()
	fw, fh := float64(w), float64(h)

	scaleX := prev.RealRange() / next.RealRange()
	scaleY := prev.ImagRange() / next.ImagRange()
	offsetX := (prev.MinReal - next.MinReal) / next.RealRange() * fw
	offsetY := (next.MaxImag - prev.MaxImag) / next.ImagRange() * fh

	snap := r.surface.Snapshot()
	r.surface.Clear()
	r.surface.DrawSnapshot(snap, offsetX, offsetY, scaleX, scaleY)
}

// SetBackend swaps the active compute backend and immediately performs an
// exact render at the unchanged viewport, so two backends can be validated
// pixel-for-pixel at the same bounds.
func (r *Renderer) SetBackend(backend ComputeBackend) (time.Duration, error) {
	r.backend = backend
	return r.ExactRender()
}

func (r *Renderer) canvasSize() (w, h float64) {
	iw, ih := r.surface.Size()
	return float64(iw), float64(ih)
}
