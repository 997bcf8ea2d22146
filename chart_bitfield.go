package viz

import (
	"math"
	"strconv"
)

// layoutBitfield draws an ordered row of on/off cells, one square per bit.
func layoutBitfield(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(BitsData)
	if !ok || len(d.Bits) == 0 {
		return emptyModel(size)
	}
	n := len(d.Bits)
	gap := spec.Gap.Or(1)
	cell := (size.Width - gap*float64(n-1)) / float64(n)
	if cell <= 0 {
		cell = 1
		gap = 0
	}
	cell = math.Min(cell, size.Height)
	y := (size.Height - cell) / 2
	color := spec.color()

	model := emptyModel(size)
	for i, bit := range d.Bits {
		fill := fadeColor(color, 0.15)
		if bit {
			fill = color
		}
		m := RectMark("bit-"+strconv.Itoa(i),
			float64(i)*(cell+gap), y, cell, cell).
			WithFill(fill)
		if spec.Rounded {
			m = m.WithRadius(cell/4, cell/4)
		}
		model.Marks = append(model.Marks, m)
	}
	return model
}
