package viz

// layoutBulletDelta draws a bullet gauge comparing current to previous
// against a shared maximum: full-width track, a thick current bar, and a
// previous-value marker line crossing the track.
func layoutBulletDelta(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(DeltaData)
	if !ok || !isFinite(d.Current) || !isFinite(d.Previous) || !isFinite(d.Max) {
		return emptyModel(size)
	}
	color := spec.color()

	model := emptyModel(size)
	model.Marks = append(model.Marks,
		RectMark("bullet-track", 0, 0, size.Width, size.Height).
			WithFill(fadeColor(color, 0.15)))
	if d.Max <= 0 {
		return model
	}

	barH := size.Height * 0.5
	barY := (size.Height - barH) / 2
	if cur := clamp01(d.Current / d.Max); cur > 0 {
		model.Marks = append(model.Marks,
			RectMark("bullet-bar", 0, barY, cur*size.Width, barH).
				WithFill(color))
	}

	prevX := clamp01(d.Previous/d.Max) * size.Width
	model.Marks = append(model.Marks,
		LineMark("bullet-prev", prevX, 0, prevX, size.Height).
			WithStroke(fadeColor(color, 0.8), 1.5))
	return model
}
