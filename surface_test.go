package fractal

import (
	"bytes"
	"image/color"
	"testing"
)

// fillGradientPix returns a w×h RGBA buffer where every pixel encodes its
// own coordinates, so displaced pixels are easy to identify.
func fillGradientPix(w, h int) []byte {
	pix := make([]byte, w*h*4)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[i] = byte(x)
			pix[i+1] = byte(y)
			pix[i+2] = 0x7f
			pix[i+3] = 0xff
			i += 4
		}
	}
	return pix
}

func pixelAt(s *ImageSurface, x, y int) color.RGBA {
	return s.Image().RGBAAt(x, y)
}

func TestImageSurfaceSetPixelsCopies(t *testing.T) {
	s := NewImageSurface(8, 8)
	pix := fillGradientPix(8, 8)
	s.SetPixels(pix)

	// Mutating the caller's buffer must not reach the surface.
	pix[0] = 0xee
	if got := pixelAt(s, 0, 0); got.R == 0xee {
		t.Error("SetPixels aliased the caller's buffer")
	}
}

func TestImageSurfaceSnapshotIndependent(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.SetPixels(fillGradientPix(4, 4))

	snap := s.Snapshot()
	s.Clear()

	if snap.RGBAAt(2, 1) != (color.RGBA{R: 2, G: 1, B: 0x7f, A: 0xff}) {
		t.Errorf("snapshot changed after Clear: %v", snap.RGBAAt(2, 1))
	}
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.SetPixels(fillGradientPix(4, 4))
	s.Clear()
	want := color.RGBA{A: 0xff}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if pixelAt(s, x, y) != want {
				t.Fatalf("pixel (%d,%d) = %v after Clear", x, y, pixelAt(s, x, y))
			}
		}
	}
}

func TestDrawSnapshotTranslate(t *testing.T) {
	s := NewImageSurface(8, 8)
	s.SetPixels(fillGradientPix(8, 8))

	snap := s.Snapshot()
	s.Clear()
	s.DrawSnapshot(snap, 3, 2, 1, 1)

	// Pixel (5, 4) now shows source pixel (2, 2).
	if got := pixelAt(s, 5, 4); got.R != 2 || got.G != 2 {
		t.Errorf("translated pixel = %v, want source (2,2)", got)
	}
	// Vacated area stays cleared.
	if got := pixelAt(s, 0, 0); got.R != 0 || got.G != 0 {
		t.Errorf("vacated pixel = %v, want black", got)
	}
}

func TestDrawSnapshotScaleAboutOrigin(t *testing.T) {
	s := NewImageSurface(8, 8)
	s.SetPixels(fillGradientPix(8, 8))

	snap := s.Snapshot()
	s.Clear()
	s.DrawSnapshot(snap, 0, 0, 2, 2)

	// At 2x about the origin, destination (6, 4) samples source (3, 2).
	if got := pixelAt(s, 6, 4); got.R != 3 || got.G != 2 {
		t.Errorf("scaled pixel = %v, want source (3,2)", got)
	}
}

func TestDrawSnapshotZoomKeepsFocalPixel(t *testing.T) {
	const w, h = 16, 16
	s := NewImageSurface(w, h)
	s.SetPixels(fillGradientPix(w, h))

	// The approximate-zoom placement: offset (fx - fx·k, fy - fy·k).
	const fx, fy, k = 8.0, 6.0, 2.0
	snap := s.Snapshot()
	s.Clear()
	s.DrawSnapshot(snap, fx-fx*k, fy-fy*k, k, k)

	if got := pixelAt(s, int(fx), int(fy)); got.R != byte(fx) || got.G != byte(fy) {
		t.Errorf("focal pixel = %v, want source (%g,%g)", got, fx, fy)
	}
}

func TestDrawSnapshotZeroScaleIsNoOp(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.SetPixels(fillGradientPix(4, 4))
	before := append([]byte(nil), s.Image().Pix...)

	s.DrawSnapshot(s.Snapshot(), 0, 0, 0, 0)

	if !bytes.Equal(before, s.Image().Pix) {
		t.Error("zero scale modified the surface")
	}
}
