// Package colour turns escape iteration counts into colours: it builds
// piecewise-linear palettes through a list of colour vertices and averages
// oversampled sub-samples into final pixel colours.
package colour

// Black is the colour of in-set points.
var Black = Colour{}

// Colour is a 24-bit RGB colour.
type Colour struct {
	R, G, B uint8
}

// From24Bit unpacks a 0xRRGGBB literal into a Colour.
func From24Bit(c uint32) Colour {
	return Colour{
		R: uint8((c & 0xff0000) >> 16),
		G: uint8((c & 0x00ff00) >> 8),
		B: uint8(c & 0x0000ff),
	}
}

// FromVector converts a vector back to a Colour. Components are truncated
// toward zero, not rounded.
func FromVector(v Vector3) Colour {
	return Colour{R: uint8(v.X), G: uint8(v.Y), B: uint8(v.Z)}
}

// Vector returns the colour as a point in the RGB cube.
func (c Colour) Vector() Vector3 {
	return Vector3{X: float64(c.R), Y: float64(c.G), Z: float64(c.B)}
}
