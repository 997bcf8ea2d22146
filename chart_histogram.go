package viz

import "strconv"

// layoutHistogram draws one bar per series value, bottom-aligned, with
// optional per-bar fill opacities (parallel to the values).
func layoutHistogram(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(SeriesData)
	if !ok || len(d.Values) == 0 {
		return emptyModel(size)
	}
	_, maxV, ok := seriesExtent(d.Values)
	if !ok {
		return emptyModel(size)
	}

	n := len(d.Values)
	gap := spec.Gap.Or(1)
	barW := (size.Width - gap*float64(n-1)) / float64(n)
	if barW <= 0 {
		barW = 1
		gap = 0
	}
	color := spec.color()

	model := emptyModel(size)
	for i, v := range d.Values {
		h := 0.0
		if isFinite(v) && v > 0 && maxV > 0 {
			h = v / maxV * size.Height
		}
		if h < 1 {
			// Zero and tiny values keep a visible 1px stub so every
			// datum has a hit target.
			h = 1
		}
		m := RectMark("bar-"+strconv.Itoa(i),
			float64(i)*(barW+gap), size.Height-h, barW, h).
			WithFill(color)
		if i < len(d.Opacities) {
			m = m.WithFillOpacity(clamp01(d.Opacities[i]))
		}
		if spec.Rounded {
			r := barW / 2
			if r > 1.5 {
				r = 1.5
			}
			m = m.WithRadius(r, r)
		}
		model.Marks = append(model.Marks, m)
	}
	return model
}
