package fractal

import (
	"image/color"
	"testing"
)

func TestColorMapInterior(t *testing.T) {
	m := NewColorMap()
	got := m.At(256, 256)
	if got != m.Interior() {
		t.Errorf("At(max, max) = %v, want interior %v", got, m.Interior())
	}
	// Counts at or beyond the cap are all interior.
	if m.At(300, 256) != m.Interior() {
		t.Error("count past the cap should map to the interior color")
	}
}

func TestColorMapDeterministic(t *testing.T) {
	a := NewColorMap()
	b := NewColorMap()
	for count := uint32(0); count < 600; count++ {
		if a.At(count, 256) != b.At(count, 256) {
			t.Fatalf("At(%d, 256) differs between identical maps", count)
		}
	}
}

func TestColorMapCyclic(t *testing.T) {
	m := NewColorMap()
	// The palette has 256 entries; counts a cycle apart share a color as
	// long as neither hits the interior cap.
	if m.At(3, 100000) != m.At(3+256, 100000) {
		t.Error("palette should cycle with period 256")
	}
}

func TestColorMapEscapedNeverInterior(t *testing.T) {
	m := NewColorMap()
	for count := uint32(0); count < 256; count++ {
		if m.At(count, 256) == m.Interior() {
			t.Fatalf("escaped count %d mapped to the interior color", count)
		}
	}
}

func TestColorMapGradientStops(t *testing.T) {
	stops := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 0xff},
		{R: 200, G: 100, B: 50, A: 0xff},
	}
	m := NewColorMapGradient(stops, 100, color.RGBA{A: 0xff})

	if got := m.At(0, 1000); got != stops[0] {
		t.Errorf("palette[0] = %v, want first stop %v", got, stops[0])
	}
	// Entry 50 sits at the start of the second segment.
	if got := m.At(50, 1000); got != stops[1] {
		t.Errorf("palette[50] = %v, want second stop %v", got, stops[1])
	}
}

func TestColorMapSmoothInterior(t *testing.T) {
	m := NewColorMap()
	if m.AtSmooth(256, 256, 100) != m.Interior() {
		t.Error("smooth mapping must keep the fixed interior color")
	}
}

func TestColorMapSmoothNearbyCounts(t *testing.T) {
	m := NewColorMap()
	// With the same escape magnitude, adjacent counts land one palette
	// entry apart; the smooth color must stay between those entries rather
	// than jumping a band.
	a := m.AtSmooth(10, 256, 10)
	b := m.At(10, 256)
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(a.R, b.R) > 60 || diff(a.G, b.G) > 60 || diff(a.B, b.B) > 60 {
		t.Errorf("smooth color %v strays far from banded color %v", a, b)
	}
}
