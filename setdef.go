// Package mandel calculates escape iteration counts for regions of the
// Mandelbrot set. A region is described by a SetDefinition, evaluated either
// directly with Calc or in parallel with a Calculator, and the resulting
// SetData is rendered to an image by the render package.
package mandel

import "fmt"

// SetDefinition specifies how to calculate the Mandelbrot set for an area of
// the complex plane: the sampled rectangle, its resolution and the iteration
// parameters. Immutable once constructed.
type SetDefinition struct {
	// Origin is the bottom-left point of the sampled rectangle.
	Origin Complex
	// PxSize is the side length of one output pixel in plane units.
	// Pixels are square, so the requested imaginary extent is rounded to a
	// whole number of pixels and the effective height may differ slightly
	// from the requested one.
	PxSize  float64
	WidthPx int
	// HeightPx is derived from the region and PxSize, not user supplied.
	HeightPx int
	// Oversampling is the number of sub-samples per pixel in each
	// direction, so every pixel averages Oversampling² samples.
	Oversampling  int
	MaxIterations int
	EscapeRadius  float64
}

// NewSetDefinition derives a SetDefinition from a region and the sampling
// parameters. The pixel size comes from the real axis: the requested region
// height is converted to whole pixels of that size.
func NewSetDefinition(r Region, widthPx, oversampling, maxIterations int, escapeRadius float64) (SetDefinition, error) {
	if widthPx <= 0 {
		return SetDefinition{}, fmt.Errorf("width must be positive, got %d", widthPx)
	}
	if oversampling < 1 {
		return SetDefinition{}, fmt.Errorf("oversampling must be at least 1, got %d", oversampling)
	}
	if maxIterations < 1 {
		return SetDefinition{}, fmt.Errorf("max iterations must be at least 1, got %d", maxIterations)
	}
	if escapeRadius <= 0 {
		return SetDefinition{}, fmt.Errorf("escape radius must be positive, got %g", escapeRadius)
	}
	if r.MaxReal <= r.MinReal || r.MaxImag <= r.MinImag {
		return SetDefinition{}, fmt.Errorf("degenerate region %+v", r)
	}

	pxSize := (r.MaxReal - r.MinReal) / float64(widthPx)
	heightPx := int((r.MaxImag - r.MinImag) / pxSize)
	if heightPx < 1 {
		return SetDefinition{}, fmt.Errorf("region %+v is less than one pixel tall at width %d", r, widthPx)
	}

	return SetDefinition{
		Origin:        Complex{Real: r.MinReal, Imag: r.MinImag},
		PxSize:        pxSize,
		WidthPx:       widthPx,
		HeightPx:      heightPx,
		Oversampling:  oversampling,
		MaxIterations: maxIterations,
		EscapeRadius:  escapeRadius,
	}, nil
}

// Samples returns the total number of sub-samples the definition produces.
func (sd SetDefinition) Samples() int {
	return sd.WidthPx * sd.HeightPx * sd.Oversampling * sd.Oversampling
}

// Split partitions the definition into count horizontal strips covering the
// same area, so they can be calculated in parallel and reassembled in order.
// Strips are stacked bottom to top. Their heights sum exactly to HeightPx:
// each strip gets HeightPx/count rows and the first HeightPx%count strips
// get one extra row.
func (sd SetDefinition) Split(count int) []SetDefinition {
	if count <= 0 {
		panic("split count must be positive")
	}

	heights := make([]int, count)
	for i := range heights {
		heights[i] = sd.HeightPx / count
	}
	for i := 0; i < sd.HeightPx%count; i++ {
		heights[i]++
	}

	defs := make([]SetDefinition, 0, count)
	imag := sd.Origin.Imag
	for _, h := range heights {
		def := sd
		def.Origin = Complex{Real: sd.Origin.Real, Imag: imag}
		def.HeightPx = h
		defs = append(defs, def)
		imag += float64(h) * sd.PxSize
	}
	return defs
}
