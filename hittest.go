package viz

import "math"

// HitResult identifies the topmost mark under a pointer.
type HitResult struct {
	MarkID   string   `json:"markId"`
	MarkType MarkType `json:"markType"`
}

// defaultStrokeSlop keeps pointer targets usable at very small chart sizes;
// charts are often under 40px tall.
const defaultStrokeSlop = 2.0

// HitOption configures a HitTest call.
type HitOption func(*hitOptions)

type hitOptions struct {
	slop    float64
	slopSet bool
	tester  PathTester
}

// WithStrokeSlop overrides the extra stroke tolerance in pixels (default 2).
// Negative values clamp to zero.
func WithStrokeSlop(px float64) HitOption {
	return func(o *hitOptions) {
		o.slop = px
		o.slopSet = true
	}
}

// WithPathTester overrides the stroke/fill strategy for this call only.
// See SetPathTester for the process-wide default.
func WithPathTester(t PathTester) HitOption {
	return func(o *hitOptions) {
		o.tester = t
	}
}

// HitTest returns the topmost mark whose visible geometry contains the
// point, or nil when nothing matches. Marks are tested in reverse order so
// later-drawn marks, which paint over earlier ones, win ties.
//
// Whether a mark's fill or stroke participates is derived from which paint
// attributes were explicitly set (see Paint); a mark styled entirely from
// outside the model has no wanted channels and is never matched. Text marks
// carry no testable geometry and are skipped.
func HitTest(model RenderModel, point Point, opts ...HitOption) *HitResult {
	if !point.IsFinite() {
		return nil
	}
	o := hitOptions{slop: defaultStrokeSlop}
	for _, opt := range opts {
		opt(&o)
	}
	if o.slopSet && o.slop < 0 {
		o.slop = 0
	}
	tester := o.tester
	if tester == nil {
		tester = currentPathTester()
	}

	for i := len(model.Marks) - 1; i >= 0; i-- {
		m := model.Marks[i]
		if hitMark(m, point, o.slop, tester) {
			return &HitResult{MarkID: m.ID, MarkType: m.Type}
		}
	}
	return nil
}

// hitMark tests one mark with the preferred tester, falling back to the
// analytic geometry when the tester cannot answer.
func hitMark(m Mark, p Point, slop float64, tester PathTester) bool {
	fill := fillWanted(m.Paint)
	stroke := strokeWanted(m.Paint)
	if !fill && !stroke {
		return false
	}
	tol := strokeTolerance(m.Paint, slop)

	switch m.Type {
	case MarkRect:
		return hitRect(m, p)
	case MarkCircle:
		if fill && m.R > 0 && p.DistanceSquared(Pt(m.CX, m.CY)) <= m.R*m.R {
			return true
		}
		if stroke {
			if hit, ok := tester.HitStroke(m, p, tol); ok {
				return hit
			}
			// Ring-distance approximation: ignores dash gaps and caps, a
			// deliberate accuracy/availability tradeoff.
			dist := p.Distance(Pt(m.CX, m.CY))
			return math.Abs(dist-m.R) <= tol
		}
		return false
	case MarkLine:
		if !stroke {
			return false
		}
		if hit, ok := tester.HitStroke(m, p, tol); ok {
			return hit
		}
		return segmentDistanceSquared(p, Pt(m.X1, m.Y1), Pt(m.X2, m.Y2)) <= tol*tol
	case MarkPath:
		return hitPath(m, p, fill, stroke, tol, tester)
	default:
		return false
	}
}

// hitRect is the inclusive axis-aligned containment test.
func hitRect(m Mark, p Point) bool {
	b := Rect{MinX: m.X, MinY: m.Y, MaxX: m.X + m.W, MaxY: m.Y + m.H}
	return b.Contains(p)
}

// hitPath tests a path mark. An exact tester, when available, is tried
// first and is not bound by the restricted grammar; the manual fallback
// parses M/L/Z data and skips the mark entirely when parsing fails.
func hitPath(m Mark, p Point, fill, stroke bool, tol float64, tester PathTester) bool {
	if fill {
		if hit, ok := tester.HitFill(m, p); ok {
			if hit {
				return true
			}
		} else if subpaths, parsed := ParseSimplePath(m.D); parsed {
			if pathFillContains(subpaths, p) {
				return true
			}
		}
	}
	if stroke {
		if hit, ok := tester.HitStroke(m, p, tol); ok {
			return hit
		}
		subpaths, parsed := ParseSimplePath(m.D)
		if !parsed {
			return false
		}
		return pathStrokeContains(subpaths, p, tol)
	}
	return false
}

// pathFillContains applies the even-odd rule across subpaths: the point is
// inside when it falls inside an odd number of them. Unclosed subpaths fill
// as if closed, matching SVG semantics.
func pathFillContains(subpaths []SubPath, p Point) bool {
	inside := false
	for _, sp := range subpaths {
		if pointInPolygon(p, sp.Points) {
			inside = !inside
		}
	}
	return inside
}

// pathStrokeContains tests the point against every edge of every subpath,
// including the closing edge of closed subpaths.
func pathStrokeContains(subpaths []SubPath, p Point, tol float64) bool {
	tolSq := tol * tol
	for _, sp := range subpaths {
		pts := sp.Points
		if len(pts) == 1 {
			if p.DistanceSquared(pts[0]) <= tolSq {
				return true
			}
			continue
		}
		for i := 0; i+1 < len(pts); i++ {
			if segmentDistanceSquared(p, pts[i], pts[i+1]) <= tolSq {
				return true
			}
		}
		if sp.Closed && len(pts) > 2 {
			if segmentDistanceSquared(p, pts[len(pts)-1], pts[0]) <= tolSq {
				return true
			}
		}
	}
	return false
}

// fillWanted reports whether the mark's fill participates in hit-testing:
// an explicitly set fill-related attribute, with fill not "none". A mark
// with no fill attributes at all is styled externally and is not treated as
// filled, even though that makes marks styled purely via CSS invisible to
// hit-testing.
func fillWanted(p Paint) bool {
	if p.Fill.State == PaintNone {
		return false
	}
	return p.Fill.State == PaintSet || p.FillOpacity.Set
}

// strokeWanted reports whether any stroke-related attribute was explicitly
// set, with stroke not "none".
func strokeWanted(p Paint) bool {
	if p.Stroke.State == PaintNone {
		return false
	}
	return p.Stroke.State == PaintSet ||
		p.StrokeOpacity.Set ||
		p.StrokeWidth.Set ||
		len(p.StrokeDasharray) > 0 ||
		p.StrokeDashoffset.Set ||
		p.StrokeLinecap != "" ||
		p.StrokeLinejoin != ""
}

// strokeTolerance is half the stroke width plus the slop, both floored at
// zero; an unset width defaults to 1.
func strokeTolerance(p Paint, slop float64) float64 {
	w := p.StrokeWidth.Or(1)
	if w < 0 {
		w = 0
	}
	if slop < 0 {
		slop = 0
	}
	return w/2 + slop
}
