package fractal

import (
	"image"
	"math"
)

// Surface is the canvas contract the renderer draws through: commit a full
// RGBA frame, snapshot the current pixels, and redraw a snapshot translated
// and scaled for the approximate render paths. Implementations wrap a real
// display canvas (EbitenSurface) or stay purely in memory (ImageSurface).
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// SetPixels commits a full frame. pix is RGBA, len w*h*4, and is copied;
	// the caller keeps ownership of the slice.
	SetPixels(pix []byte)
	// Snapshot returns a copy of the current pixels. Later draws do not
	// affect the returned image.
	Snapshot() *image.RGBA
	// Clear fills the surface with opaque black.
	Clear()
	// DrawSnapshot draws snap scaled by (scaleX, scaleY) with its top-left
	// corner at (offsetX, offsetY). Pixels outside snap's footprint are left
	// untouched.
	DrawSnapshot(snap *image.RGBA, offsetX, offsetY, scaleX, scaleY float64)
}

// ImageSurface is an in-memory Surface backed by an image.RGBA. It needs no
// display and is byte-comparable, which makes it the surface of choice for
// headless rendering and tests.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a cleared w×h in-memory surface.
func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	s.Clear()
	return s
}

// Image exposes the backing image. Treat it as read-only; mutate through
// the Surface methods.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Size implements Surface.
func (s *ImageSurface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetPixels implements Surface.
func (s *ImageSurface) SetPixels(pix []byte) {
	copy(s.img.Pix, pix)
}

// Snapshot implements Surface.
func (s *ImageSurface) Snapshot() *image.RGBA {
	snap := image.NewRGBA(s.img.Bounds())
	copy(snap.Pix, s.img.Pix)
	return snap
}

// Clear implements Surface.
func (s *ImageSurface) Clear() {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 0xff
	}
}

// DrawSnapshot implements Surface with a nearest-neighbour blit: each
// destination pixel samples the source pixel its center maps back to.
func (s *ImageSurface) DrawSnapshot(snap *image.RGBA, offsetX, offsetY, scaleX, scaleY float64) {
	if scaleX == 0 || scaleY == 0 {
		return
	}
	db := s.img.Bounds()
	sb := snap.Bounds()
	sw, sh := sb.Dx(), sb.Dy()

	for y := 0; y < db.Dy(); y++ {
		sy := int(math.Floor((float64(y) - offsetY) / scaleY))
		if sy < 0 || sy >= sh {
			continue
		}
		srcRow := snap.Pix[sy*snap.Stride:]
		dstRow := s.img.Pix[y*s.img.Stride:]
		for x := 0; x < db.Dx(); x++ {
			sx := int(math.Floor((float64(x) - offsetX) / scaleX))
			if sx < 0 || sx >= sw {
				continue
			}
			copy(dstRow[x*4:x*4+4], srcRow[sx*4:sx*4+4])
		}
	}
}
