package colour

// PixelColour resolves one output pixel from the oversampled iteration
// counts in data. realIdx and imagIdx address the pixel in the buffer's own
// coordinates, so imagIdx counts up from the bottom row.
//
// Every one of the pixel's oversampling² sub-samples is mapped through the
// palette (the sentinel 0 maps to black), the colours are averaged as
// vectors and the average is truncated back to a Colour. minIter must be
// the smallest count in the whole buffer, the same value the palette was
// sized with.
func PixelColour(data []uint32, realIdx, imagIdx, widthPx, oversampling int, minIter uint32, palette []Colour) Colour {
	// index of the pixel's bottom-left sub-sample
	idxBase := widthPx*imagIdx*oversampling*oversampling + realIdx*oversampling

	var total Vector3
	for i := 0; i < oversampling; i++ {
		for r := 0; r < oversampling; r++ {
			idx := idxBase + i*widthPx*oversampling + r
			iters := data[idx]

			col := Black
			if iters != 0 {
				col = palette[iters-minIter]
			}
			total = total.Add(col.Vector())
		}
	}
	average := total.Div(float64(oversampling * oversampling))
	return FromVector(average)
}
