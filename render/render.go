// Package render turns calculated set data into an image. It scans the
// iteration range, sizes a palette to it and resolves every output pixel by
// averaging its oversampled sub-samples.
package render

import (
	"fmt"
	"image"
	"image/color"

	mandel "github.com/cjhall/mandelbrot"
	"github.com/cjhall/mandelbrot/colour"
)

// DefaultVertices is the palette path used when a Renderer does not supply
// its own: dark blue through cyan and white to orange and dark red.
var DefaultVertices = []colour.Colour{
	colour.From24Bit(0x010d62),
	colour.From24Bit(0x63b8ec),
	colour.From24Bit(0xffffff),
	colour.From24Bit(0xffb700),
	colour.From24Bit(0x611012),
}

// Renderer maps set data to an image.
type Renderer struct {
	// Vertices are the palette vertices; nil means DefaultVertices.
	Vertices []colour.Colour
	// OnPaletteBuilt, when set, is called with the palette size once the
	// palette for a render has been generated.
	OnPaletteBuilt func(size int)
}

// Image renders the set data into an RGBA image with (0,0) at the top left.
// The palette is rebuilt from the buffer's iteration range on every call, so
// colours are consistent across the whole image but not across renders.
func (r Renderer) Image(set mandel.SetData) (*image.RGBA, error) {
	vertices := r.Vertices
	if vertices == nil {
		vertices = DefaultVertices
	}

	minIter, maxIter := set.IterRange()
	palette, err := colour.Palette(int(maxIter-minIter)+1, vertices)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	if r.OnPaletteBuilt != nil {
		r.OnPaletteBuilt(len(palette))
	}

	def := set.Def
	img := image.NewRGBA(image.Rect(0, 0, def.WidthPx, def.HeightPx))
	for y := 0; y < def.HeightPx; y++ {
		// The buffer is bottom row first, the image origin is top left.
		imagIdx := def.HeightPx - y - 1
		for x := 0; x < def.WidthPx; x++ {
			c := colour.PixelColour(set.Data, x, imagIdx, def.WidthPx, def.Oversampling, minIter, palette)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img, nil
}
