package viz

import "math"

// waveSamples is the fixed sample count along the crest; fixed so equal
// input always flattens to identical geometry.
const waveSamples = 24

// layoutWave draws a fill-level indicator: a container frame and a wave
// polygon filled up to the percentage, clipped to the container by a
// clipRect def.
func layoutWave(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(PercentData)
	if !ok || !isFinite(d.Pct) {
		return emptyModel(size)
	}
	color := spec.color()

	model := emptyModel(size)
	clipID := NewIDAllocator(model).DefID("wave-clip")
	clip := ClipRect(clipID, 0, 0, size.Width, size.Height)
	if spec.Rounded {
		clip.ClipRect.RX = F(math.Min(size.Width, size.Height) * 0.15)
	}
	model.Defs = append(model.Defs, clip)

	frac := clamp01(d.Pct / 100)
	if frac > 0 {
		level := size.Height * (1 - frac)
		amp := math.Min(size.Height*0.06, 4) * waveDamp(frac)
		pts := make([]Point, 0, waveSamples+3)
		for i := 0; i <= waveSamples; i++ {
			t := float64(i) / waveSamples
			x := t * size.Width
			y := level + amp*math.Sin(t*2*math.Pi*1.5)
			pts = append(pts, Pt(x, y))
		}
		pts = append(pts, Pt(size.Width, size.Height), Pt(0, size.Height))
		model.Marks = append(model.Marks,
			PathMark("wave-fill", polygonPathData(pts, true)).
				WithFill(fadeColor(color, 0.7)).
				WithClip(clipID))
	}

	frame := RectMark("wave-frame", 0.5, 0.5, size.Width-1, size.Height-1).
		WithFill("none").
		WithStroke(color, 1)
	if spec.Rounded {
		r := math.Min(size.Width, size.Height) * 0.15
		frame = frame.WithRadius(r, r)
	}
	model.Marks = append(model.Marks, frame)
	return model
}

// waveDamp flattens the crest as the level approaches empty or full, so the
// wave never paints outside the meaningful band.
func waveDamp(frac float64) float64 {
	edge := math.Min(frac, 1-frac)
	return clamp01(edge * 8)
}
