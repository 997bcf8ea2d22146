package viz

import (
	"strconv"
	"strings"
)

// sparkPad keeps the stroke inside the canvas at the extremes.
const sparkPad = 2.0

// layoutSparkline draws a numeric series as a polyline, optionally with a
// translucent area fill underneath and a dot on the last point.
func layoutSparkline(data Data, size Size, spec Spec) RenderModel {
	d, ok := data.(SeriesData)
	if !ok || len(d.Values) == 0 {
		return emptyModel(size)
	}
	minV, maxV, ok := seriesExtent(d.Values)
	if !ok {
		return emptyModel(size)
	}

	pts := seriesPoints(d.Values, size, minV, maxV)
	if len(pts) == 0 {
		return emptyModel(size)
	}
	color := spec.color()
	model := emptyModel(size)

	if spec.ShowArea && len(pts) >= 2 {
		area := make([]Point, 0, len(pts)+2)
		area = append(area, pts...)
		area = append(area,
			Pt(pts[len(pts)-1].X, size.Height-sparkPad),
			Pt(pts[0].X, size.Height-sparkPad))
		model.Marks = append(model.Marks,
			PathMark("spark-area", polygonPathData(area, true)).
				WithFill(fadeColor(color, 0.25)))
	}
	if len(pts) >= 2 {
		model.Marks = append(model.Marks,
			PathMark("spark-line", polygonPathData(pts, false)).
				WithStroke(color, 1.5).
				WithLinecap("round"))
	}
	last := pts[len(pts)-1]
	model.Marks = append(model.Marks,
		CircleMark("spark-dot", last.X, last.Y, 2).WithFill(color))
	return model
}

// seriesPoints maps series values onto the padded canvas, skipping
// non-finite entries while keeping x positions tied to the original index.
func seriesPoints(values []float64, size Size, minV, maxV float64) []Point {
	innerW := size.Width - 2*sparkPad
	innerH := size.Height - 2*sparkPad
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	span := maxV - minV
	step := 0.0
	if len(values) > 1 {
		step = innerW / float64(len(values)-1)
	}
	pts := make([]Point, 0, len(values))
	for i, v := range values {
		if !isFinite(v) {
			continue
		}
		t := 0.5
		if span > 0 {
			t = (v - minV) / span
		}
		x := sparkPad + float64(i)*step
		if len(values) == 1 {
			x = size.Width / 2
		}
		pts = append(pts, Pt(x, sparkPad+(1-t)*innerH))
	}
	return pts
}

// polygonPathData serializes points into the restricted M/L/Z grammar.
func polygonPathData(pts []Point, closed bool) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y))
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// formatCoord renders a coordinate with enough precision to round-trip
// through the path grammar without drift.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
