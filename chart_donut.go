package viz

import (
	"math"
	"strconv"
)

// donutArcStep is the maximum angle per flattening step. The path grammar
// has no arc command, so rings are emitted as polygons; the step is fixed so
// equal input always flattens identically.
const donutArcStep = math.Pi / 24

// layoutDonut draws normalized segments as annular sectors around the canvas
// center, starting at twelve o'clock and proceeding clockwise.
func layoutDonut(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(SegmentsData)
	if !ok {
		return emptyModel(size)
	}
	segs := NormalizeSegments(d.Segments, spec.total())
	if len(segs) == 0 {
		return emptyModel(size)
	}

	cx, cy := size.Width/2, size.Height/2
	outer := math.Min(size.Width, size.Height)/2 - 1
	if outer <= 0 {
		return emptyModel(size)
	}
	inner := outer * 0.6

	model := emptyModel(size)
	total := float64(spec.total())
	angle := -math.Pi / 2
	for i, seg := range segs {
		span := float64(seg.Pct) / total * 2 * math.Pi
		color := seg.Color
		if color == "" {
			color = spec.paletteColor(i)
		}
		model.Marks = append(model.Marks,
			PathMark("donut-seg-"+strconv.Itoa(i),
				annularSectorPath(cx, cy, inner, outer, angle, span)).
				WithFill(color))
		angle += span
	}
	return model
}

// annularSectorPath flattens an annular sector into M/L/Z path data. A span
// covering the full circle becomes two closed subpaths (outer and inner
// rings) so even-odd filling leaves the hole open.
func annularSectorPath(cx, cy, inner, outer, start, span float64) string {
	full := span >= 2*math.Pi-1e-9
	outerPts := arcPoints(cx, cy, outer, start, span)
	innerPts := arcPoints(cx, cy, inner, start, span)

	if full {
		ring := polygonPathData(outerPts, true)
		if inner > 0 {
			ring += " " + polygonPathData(innerPts, true)
		}
		return ring
	}

	pts := make([]Point, 0, len(outerPts)+len(innerPts))
	pts = append(pts, outerPts...)
	for i := len(innerPts) - 1; i >= 0; i-- {
		pts = append(pts, innerPts[i])
	}
	return polygonPathData(pts, true)
}

// arcPoints samples an arc at the fixed flattening step.
func arcPoints(cx, cy, r, start, span float64) []Point {
	steps := int(math.Ceil(span / donutArcStep))
	if steps < 2 {
		steps = 2
	}
	pts := make([]Point, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + span*float64(i)/float64(steps)
		pts[i] = Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return pts
}
