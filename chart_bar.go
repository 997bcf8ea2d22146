package viz

// layoutBar draws a single horizontal gauge: a faded full-width track with
// the value's share filled on top of it.
func layoutBar(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(GaugeData)
	if !ok || !isFinite(d.Value) || !isFinite(d.Max) {
		return emptyModel(size)
	}
	color := spec.color()

	track := RectMark("bar-track", 0, 0, size.Width, size.Height).
		WithFill(fadeColor(color, 0.2))
	if spec.Rounded {
		track = track.WithRadius(size.Height/2, size.Height/2)
	}
	model := emptyModel(size)
	model.Marks = append(model.Marks, track)

	if d.Max > 0 && d.Value > 0 {
		frac := clamp01(d.Value / d.Max)
		value := RectMark("bar-value", 0, 0, frac*size.Width, size.Height).
			WithFill(color)
		if spec.Rounded {
			value = value.WithRadius(size.Height/2, size.Height/2)
		}
		model.Marks = append(model.Marks, value)
	}
	return model
}
