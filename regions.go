package fractal

// HomeView frames the whole Mandelbrot set with room to spare. The imaginary
// range is corrected to the canvas aspect at viewport construction.
var HomeView = Bounds{MinReal: -2.0, MaxReal: 1.0, MinImag: -1.0, MaxImag: 1.0}

// Classic landmarks worth gliding to.
var (
	// SeahorseValley — the cleft between the main cardioid and the
	// period-2 bulb, full of seahorse-shaped spirals.
	SeahorseValley = Bounds{
		MinReal: -0.80, MaxReal: -0.70,
		MinImag: 0.05, MaxImag: 0.15,
	}

	// ElephantValley — trunk-like tendrils east of the main cardioid.
	ElephantValley = Bounds{
		MinReal: 0.25, MaxReal: 0.35,
		MinImag: -0.05, MaxImag: 0.05,
	}

	// SpiralMinibrot — a small copy of the set wrapped in spiral arms.
	SpiralMinibrot = Bounds{
		MinReal: -0.7435, MaxReal: -0.7420,
		MinImag: 0.1310, MaxImag: 0.1325,
	}

	// NeedleTip — the far western antenna of the set.
	NeedleTip = Bounds{
		MinReal: -1.98, MaxReal: -1.94,
		MinImag: -0.02, MaxImag: 0.02,
	}
)
