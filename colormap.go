package fractal

import (
	"image/color"
	"math"
)

// ColorMap is a pure mapping from iteration counts to RGB colors. Points
// that never escape (count == maxIterations) get a fixed interior color;
// everything else cycles through a fixed-size gradient palette. The map
// holds no hidden state, so identical (count, maxIterations) inputs always
// produce identical colors regardless of which backend supplied the count.
type ColorMap struct {
	palette  []color.RGBA
	interior color.RGBA
}

// defaultStops is a deep-blue → white → amber gradient cycle.
var defaultStops = []color.RGBA{
	{R: 0x00, G: 0x07, B: 0x64, A: 0xff},
	{R: 0x20, G: 0x6b, B: 0xcb, A: 0xff},
	{R: 0xed, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	{R: 0x31, G: 0x02, B: 0x30, A: 0xff},
}

const defaultPaletteSize = 256

// NewColorMap returns the default color map: a 256-entry cyclic palette
// with a black interior.
func NewColorMap() *ColorMap {
	return NewColorMapGradient(defaultStops, defaultPaletteSize, color.RGBA{A: 0xff})
}

// NewColorMapGradient builds a cyclic palette of the given size by
// interpolating linearly between the gradient stops, wrapping the last stop
// back to the first so the cycle has no seam.
func NewColorMapGradient(stops []color.RGBA, size int, interior color.RGBA) *ColorMap {
	palette := make([]color.RGBA, size)
	segments := len(stops)
	for i := range palette {
		pos := float64(i) / float64(size) * float64(segments)
		seg := int(pos)
		frac := pos - float64(seg)
		from := stops[seg%segments]
		to := stops[(seg+1)%segments]
		palette[i] = color.RGBA{
			R: lerpUint8(from.R, to.R, frac),
			G: lerpUint8(from.G, to.G, frac),
			B: lerpUint8(from.B, to.B, frac),
			A: 0xff,
		}
	}
	return &ColorMap{palette: palette, interior: interior}
}

// At maps an iteration count to a palette color.
func (m *ColorMap) At(count, maxIterations uint32) color.RGBA {
	if count >= maxIterations {
		return m.interior
	}
	return m.palette[int(count)%len(m.palette)]
}

// AtSmooth maps an iteration count plus the orbit's escape magnitude |z| to
// a color, using the normalized iteration count
// v = count + 1 - log2(log|z|) to interpolate between adjacent palette
// entries and hide the discrete banding of At.
func (m *ColorMap) AtSmooth(count, maxIterations uint32, escapeMagnitude float64) color.RGBA {
	if count >= maxIterations {
		return m.interior
	}
	if escapeMagnitude <= 1 {
		return m.At(count, maxIterations)
	}
	v := float64(count) + 1 - math.Log2(math.Log(escapeMagnitude))
	if v < 0 {
		v = 0
	}
	size := len(m.palette)
	pos := math.Mod(v, float64(size))
	idx := int(pos)
	frac := pos - float64(idx)
	from := m.palette[idx]
	to := m.palette[(idx+1)%size]
	return color.RGBA{
		R: lerpUint8(from.R, to.R, frac),
		G: lerpUint8(from.G, to.G, frac),
		B: lerpUint8(from.B, to.B, frac),
		A: 0xff,
	}
}

// Interior returns the fixed color used for points that never escape.
func (m *ColorMap) Interior() color.RGBA {
	return m.interior
}

func lerpUint8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
