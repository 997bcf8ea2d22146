package viz

import "strconv"

// layoutWaffle draws normalized segments as a row-major grid of cells, one
// cell per unit of the normalization total (a 10x10 grid for the default
// total of 100). Each cell takes the color of the segment that owns it.
func layoutWaffle(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(SegmentsData)
	if !ok {
		return emptyModel(size)
	}
	total := spec.total()
	segs := NormalizeSegments(d.Segments, total)
	if len(segs) == 0 {
		return emptyModel(size)
	}

	cols := spec.Columns
	if cols <= 0 {
		cols = 10
	}
	rows := (total + cols - 1) / cols
	gap := spec.Gap.Or(1)
	cellW := (size.Width - gap*float64(cols-1)) / float64(cols)
	cellH := (size.Height - gap*float64(rows-1)) / float64(rows)
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH, gap = 1, 1, 0
	}

	// cellColor[i] is the fill for the i-th cell in row-major order.
	colors := make([]string, 0, total)
	for i, seg := range segs {
		color := seg.Color
		if color == "" {
			color = spec.paletteColor(i)
		}
		for j := 0; j < seg.Pct && len(colors) < total; j++ {
			colors = append(colors, color)
		}
	}

	model := emptyModel(size)
	for i, color := range colors {
		row := i / cols
		col := i % cols
		m := RectMark("cell-"+strconv.Itoa(i),
			float64(col)*(cellW+gap), float64(row)*(cellH+gap), cellW, cellH).
			WithFill(color)
		if spec.Rounded {
			m = m.WithRadius(1, 1)
		}
		model.Marks = append(model.Marks, m)
	}
	return model
}
