package mandel

// SetData holds the calculated escape iteration counts for a definition.
// Data is a flat row-major buffer of WidthPx*HeightPx*Oversampling² counts,
// bottom row first, one per oversampled sub-sample. The value 0 is reserved
// for sub-samples that never escaped (in-set points).
type SetData struct {
	Def  SetDefinition
	Data []uint32
}

// IterRange returns the smallest and largest iteration count in the buffer,
// found with a single linear scan. The range sizes the palette, so it has to
// cover the whole buffer, not just one pixel's samples.
func (sd SetData) IterRange() (min, max uint32) {
	min = sd.Data[0]
	max = sd.Data[0]

	for _, v := range sd.Data[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return min, max
}
