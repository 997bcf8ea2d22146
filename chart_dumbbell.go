package viz

import "math"

// layoutDumbbell relates a current value to a target: two dots joined by a
// connector line on a horizontal scale spanning the two values.
func layoutDumbbell(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(RangeData)
	if !ok || !isFinite(d.Current) || !isFinite(d.Target) {
		return emptyModel(size)
	}

	r := math.Min(size.Height/2-1, 4)
	if r < 1 {
		r = 1
	}
	lo := math.Min(d.Current, d.Target)
	hi := math.Max(d.Current, d.Target)
	cy := size.Height / 2

	// Map a value onto the padded x range; a degenerate span centers both.
	xFor := func(v float64) float64 {
		if hi == lo {
			return size.Width / 2
		}
		return r + (v-lo)/(hi-lo)*(size.Width-2*r)
	}

	color := spec.color()
	targetColor := spec.paletteColor(1)

	model := emptyModel(size)
	model.Marks = append(model.Marks,
		LineMark("dumbbell-line", xFor(d.Current), cy, xFor(d.Target), cy).
			WithStroke(fadeColor(color, 0.4), 2),
		CircleMark("dumbbell-target", xFor(d.Target), cy, r).
			WithFill(targetColor),
		CircleMark("dumbbell-current", xFor(d.Current), cy, r).
			WithFill(color))
	return model
}
