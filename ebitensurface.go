package fractal

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface adapts an *ebiten.Image to the Surface contract so the
// renderer can drive a live window. Snapshot reads pixels back from the GPU,
// so the approximate paths cost a readback per call — cheap next to an exact
// render, which is the point of having them.
type EbitenSurface struct {
	img  *ebiten.Image
	w, h int
}

// NewEbitenSurface wraps an ebiten image. The image's size is fixed for the
// lifetime of the surface; on window resize create a fresh surface and hand
// it to the renderer.
func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	b := img.Bounds()
	return &EbitenSurface{img: img, w: b.Dx(), h: b.Dy()}
}

// Image returns the wrapped ebiten image for compositing onto the screen.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.img
}

// Size implements Surface.
func (s *EbitenSurface) Size() (w, h int) {
	return s.w, s.h
}

// SetPixels implements Surface.
func (s *EbitenSurface) SetPixels(pix []byte) {
	s.img.WritePixels(pix)
}

// Snapshot implements Surface.
func (s *EbitenSurface) Snapshot() *image.RGBA {
	snap := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	s.img.ReadPixels(snap.Pix)
	return snap
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() {
	s.img.Fill(color.Black)
}

// DrawSnapshot implements Surface.
func (s *EbitenSurface) DrawSnapshot(snap *image.RGBA, offsetX, offsetY, scaleX, scaleY float64) {
	src := ebiten.NewImageFromImage(snap)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(offsetX, offsetY)
	s.img.DrawImage(src, &op)
	src.Deallocate()
}
