package mandel

// EscapeIterations returns the number of iterations of z ← z² + point
// (starting from z = point) it takes the magnitude of z to exceed the escape
// radius. Zero is returned if the point never escapes within maxIterations,
// meaning the point is considered part of the set.
//
// A point whose magnitude exceeds the radius on the very first check also
// reports zero and is therefore indistinguishable from an in-set point.
// Callers treat zero exclusively as "in set".
func EscapeIterations(point Complex, maxIterations int, escapeRadius float64) uint32 {
	escapeValue := escapeRadius * escapeRadius
	z := point

	for i := 0; i < maxIterations; i++ {
		// Working on the exploded real and imaginary parts means each
		// square is calculated once and the square root is avoided
		// altogether.
		zr2 := z.Real * z.Real
		zi2 := z.Imag * z.Imag
		zri := z.Real * z.Imag

		if zr2+zi2 > escapeValue {
			return uint32(i)
		}
		z = Complex{Real: zr2 - zi2 + point.Real, Imag: zri + zri + point.Imag}
	}
	return 0
}

// Calc evaluates every oversampled sub-sample of the definition and returns
// the escape iteration counts as a flat row-major buffer, bottom row first.
func (sd SetDefinition) Calc() SetData {
	data := make([]uint32, 0, sd.Samples())
	pxSize := sd.PxSize / float64(sd.Oversampling)

	for i := 0; i < sd.HeightPx*sd.Oversampling; i++ {
		for r := 0; r < sd.WidthPx*sd.Oversampling; r++ {
			point := sd.Origin.Add(Complex{Real: float64(r) * pxSize, Imag: float64(i) * pxSize})
			data = append(data, EscapeIterations(point, sd.MaxIterations, sd.EscapeRadius))
		}
	}
	return SetData{Def: sd, Data: data}
}
