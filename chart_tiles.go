package viz

import "strconv"

// layoutPatternTiles draws normalized segments as a horizontal stacked band
// where every segment gets a base rect plus a striped pattern overlay, so
// adjacent segments stay distinguishable without relying on color alone.
// Each segment owns one pattern def; ids come from the model's allocator.
func layoutPatternTiles(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(SegmentsData)
	if !ok {
		return emptyModel(size)
	}
	total := spec.total()
	segs := NormalizeSegments(d.Segments, total)
	if len(segs) == 0 {
		return emptyModel(size)
	}

	model := emptyModel(size)
	alloc := NewIDAllocator(model)
	x := 0.0
	for i, seg := range segs {
		w := float64(seg.Pct) / float64(total) * size.Width
		color := seg.Color
		if color == "" {
			color = spec.paletteColor(i)
		}

		patID := alloc.DefID("tiles-pat")
		stripe := LineMark("stripe", 0, tileCell, tileCell, 0).
			WithStroke("#ffffff", 1.5).
			WithStrokeOpacity(0.35)
		model.Defs = append(model.Defs, NewPatternDef(patID, tileCell, tileCell, stripe))

		base := RectMark("tile-"+strconv.Itoa(i), x, 0, w, size.Height).
			WithFill(color)
		overlay := RectMark("tile-"+strconv.Itoa(i)+"-pattern", x, 0, w, size.Height).
			WithFill("url(#" + patID + ")")
		model.Marks = append(model.Marks, base, overlay)
		x += w
	}
	return model
}

// tileCell is the pattern tile edge length in pattern space.
const tileCell = 6.0
