package viz

// layoutFallback renders the placeholder used when a payload could not be
// classified: a dashed frame with a centered label. It accepts any payload,
// including nil; the raw value itself is not drawn.
func layoutFallback(data Data, size Size, spec Spec) RenderModel {
	model := emptyModel(size)
	if raw, ok := data.(RawData); ok && raw.Value == nil {
		return model
	}
	if data == nil {
		return model
	}
	color := spec.color()

	label := spec.Label
	if label == "" {
		label = "no preview"
	}
	frame := RectMark("fallback-frame", 0.5, 0.5, size.Width-1, size.Height-1).
		WithFill("none").
		WithStroke(fadeColor(color, 0.5), 1).
		WithDash(0, 3, 2)
	text := TextMark("fallback-label", size.Width/2, size.Height/2, label).
		WithFill(fadeColor(color, 0.8))
	text.Anchor = "middle"
	text.Baseline = "middle"

	model.Marks = append(model.Marks, frame, text)
	return model
}
