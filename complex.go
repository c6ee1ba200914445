package mandel

// Complex is a point in the complex plane.
type Complex struct {
	Real, Imag float64
}

// Add returns the complex sum of c and other.
func (c Complex) Add(other Complex) Complex {
	return Complex{Real: c.Real + other.Real, Imag: c.Imag + other.Imag}
}

// Mul returns the complex product of c and other.
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		Real: c.Real*other.Real - c.Imag*other.Imag,
		Imag: c.Real*other.Imag + c.Imag*other.Real,
	}
}
