package mandel

// Region is a rectangle in the complex plane, the user-facing way to say
// which part of the set to render.
type Region struct {
	MinReal, MaxReal float64
	MinImag, MaxImag float64
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Default viewport, a detailed area on the edge of the main cardioid
	Default = Region{
		MinReal: -0.77,
		MaxReal: -0.74,
		MinImag: 0.07,
		MaxImag: 0.11,
	}

	// FullSet – the whole set with some margin around it
	FullSet = Region{
		MinReal: -2.0,
		MaxReal: 1.0,
		MinImag: -1.0,
		MaxImag: 1.0,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		MinReal: -0.8,
		MaxReal: -0.7,
		MinImag: 0.05,
		MaxImag: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		MinReal: -1.85,
		MaxReal: -1.75,
		MinImag: -0.10,
		MaxImag: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		MinReal: -0.7435,
		MaxReal: -0.7420,
		MinImag: 0.1310,
		MaxImag: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		MinReal: -0.7480,
		MaxReal: -0.7450,
		MinImag: 0.0950,
		MaxImag: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		MinReal: -0.7400,
		MaxReal: -0.7350,
		MinImag: 0.1800,
		MaxImag: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		MinReal: -1.7390,
		MaxReal: -1.7375,
		MinImag: -0.0235,
		MaxImag: -0.0220,
	}
)

// Presets maps region names to the predefined landmarks, for lookup from
// command line flags.
var Presets = map[string]Region{
	"default":         Default,
	"full":            FullSet,
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"minibrot-spiral": MinibrotInMiniSpiral,
}
