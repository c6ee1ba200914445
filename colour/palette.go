package colour

import "fmt"

// Palette returns size colours forming a piecewise-linear path through the
// RGB cube that visits every vertex in order. The first and last output
// colours are exactly the first and last vertices, and every vertex appears
// verbatim at a leg boundary rather than approximately.
//
// There are len(vertices)-1 legs sharing size-1 gaps between consecutive
// output colours. Each leg gets the same number of gaps; when the gaps do
// not divide evenly the first (size-1)%legs legs take one extra.
func Palette(size int, vertices []Colour) ([]Colour, error) {
	if len(vertices) < 2 {
		return nil, fmt.Errorf("a palette is defined by two or more vertices, got %d", len(vertices))
	}
	if size < len(vertices) {
		return nil, fmt.Errorf("palette size %d is less than the %d vertices defining it", size, len(vertices))
	}

	gaps := size - 1
	legs := len(vertices) - 1
	gapsPerLeg := gaps / legs
	remainder := gaps % legs

	legGaps := make([]int, legs)
	for i := range legGaps {
		legGaps[i] = gapsPerLeg
	}
	for i := 0; i < remainder; i++ {
		legGaps[i]++
	}

	palette := make([]Colour, 0, size)
	palette = append(palette, vertices[0])

	for i := 0; i < legs; i++ {
		start := vertices[i].Vector()
		leg := vertices[i+1].Vector().Sub(start)
		// The step divides by the base gap count even on legs carrying a
		// remainder gap; the end vertex is appended verbatim and closes
		// whatever is left of the leg.
		step := leg.Div(float64(gapsPerLeg))

		for c := 1; c < legGaps[i]; c++ {
			palette = append(palette, FromVector(start.Add(step.Mul(float64(c)))))
		}
		palette = append(palette, vertices[i+1])
	}
	return palette, nil
}
