package viz

import "math"

// layoutRing draws a single progress ring: a faded full-circle track and a
// partial arc on top, both expressed as stroked circles. The progress arc
// uses a dash pattern sized to the circumference, the one place the model
// leans on dash semantics instead of flattened geometry. Circle strokes
// begin at twelve o'clock and wind clockwise, so a zero dash offset starts
// the arc at the top.
func layoutRing(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(PercentData)
	if !ok || !isFinite(d.Pct) {
		return emptyModel(size)
	}
	strokeW := math.Max(2, math.Min(size.Width, size.Height)*0.12)
	r := math.Min(size.Width, size.Height)/2 - strokeW/2 - 1
	if r <= 0 {
		return emptyModel(size)
	}
	cx, cy := size.Width/2, size.Height/2
	color := spec.color()

	model := emptyModel(size)
	model.Marks = append(model.Marks,
		CircleMark("ring-track", cx, cy, r).
			WithFill("none").
			WithStroke(fadeColor(color, 0.2), strokeW))

	frac := clamp01(d.Pct / 100)
	if frac > 0 {
		circumference := 2 * math.Pi * r
		value := CircleMark("ring-value", cx, cy, r).
			WithFill("none").
			WithStroke(color, strokeW).
			WithDash(0, frac*circumference, circumference)
		if spec.Rounded {
			value = value.WithLinecap("round")
		}
		model.Marks = append(model.Marks, value)
	}
	return model
}
