package viz

import (
	"math"
	"sync/atomic"
)

// PathTester is the injectable hit-test strategy for stroke and fill
// containment. HitTest consults the tester first and falls back to its
// built-in analytic geometry whenever the tester reports ok=false, so a
// tester only needs to answer for geometry it understands.
//
// There are exactly two strategies: the built-in approximation (the nil
// tester) and OutlineTester, which flattens geometry and honors dash
// patterns and line caps. Select one per process with SetPathTester, or per
// call with WithPathTester.
type PathTester interface {
	// HitFill reports whether the point lies inside the mark's filled
	// geometry. ok=false defers to the caller's fallback.
	HitFill(m Mark, p Point) (hit, ok bool)

	// HitStroke reports whether the point lies within tolerance of the
	// mark's stroked geometry. ok=false defers to the caller's fallback.
	HitStroke(m Mark, p Point, tolerance float64) (hit, ok bool)
}

// approxTester is the always-available strategy: it answers nothing and
// lets HitTest use its manual math (ring-distance circles, per-edge path
// distance, dash patterns ignored).
type approxTester struct{}

func (approxTester) HitFill(Mark, Point) (bool, bool)            { return false, false }
func (approxTester) HitStroke(Mark, Point, float64) (bool, bool) { return false, false }

// testerPtr stores the process-wide strategy, resolved once rather than
// probed per call.
var testerPtr atomic.Pointer[PathTester]

// SetPathTester configures the process-wide hit-test strategy. Pass nil to
// restore the built-in approximation. Safe for concurrent use.
func SetPathTester(t PathTester) {
	if t == nil {
		t = approxTester{}
	}
	testerPtr.Store(&t)
}

// currentPathTester returns the configured strategy.
func currentPathTester() PathTester {
	if p := testerPtr.Load(); p != nil {
		return *p
	}
	return approxTester{}
}

// circleFlattenSteps is the segment count for flattened circles. Fixed so
// equal input always hits identically.
const circleFlattenSteps = 64

// OutlineTester is the exact strategy: it flattens circles and paths to
// polylines and tests the stroked outline with dash-pattern and line-cap
// awareness. The built-in approximation treats a dashed circle as a solid
// ring; OutlineTester correctly misses inside dash gaps.
//
// OutlineTester shares the model's restricted path grammar: a path mark
// whose data fails to parse is deferred (ok=false), and HitTest then skips
// the mark.
type OutlineTester struct{}

// HitFill flattens the mark and applies the even-odd rule.
func (OutlineTester) HitFill(m Mark, p Point) (bool, bool) {
	switch m.Type {
	case MarkCircle:
		if m.R <= 0 {
			return false, true
		}
		return p.DistanceSquared(Pt(m.CX, m.CY)) <= m.R*m.R, true
	case MarkPath:
		subpaths, ok := ParseSimplePath(m.D)
		if !ok {
			return false, false
		}
		return pathFillContains(subpaths, p), true
	default:
		return false, false
	}
}

// HitStroke flattens the mark's outline, applies the dash pattern along its
// arc length, and tests the point against the surviving pieces.
func (OutlineTester) HitStroke(m Mark, p Point, tolerance float64) (bool, bool) {
	var subpaths []SubPath
	switch m.Type {
	case MarkCircle:
		if m.R <= 0 {
			return false, true
		}
		subpaths = []SubPath{flattenCircle(m.CX, m.CY, m.R)}
	case MarkLine:
		subpaths = []SubPath{{Points: []Point{Pt(m.X1, m.Y1), Pt(m.X2, m.Y2)}}}
	case MarkPath:
		var ok bool
		subpaths, ok = ParseSimplePath(m.D)
		if !ok {
			return false, false
		}
	default:
		return false, false
	}

	roundCap := m.StrokeLinecap == "round"
	dash := normalizeDash(m.StrokeDasharray)
	offset := m.StrokeDashoffset.Or(0)

	for _, sp := range subpaths {
		edges := subpathEdges(sp)
		if len(dash) == 0 {
			if edgesHit(edges, p, tolerance, roundCap) {
				return true, true
			}
			continue
		}
		kept := applyDash(edges, dash, offset)
		// Dashed strokes always get round-ish treatment at piece ends
		// only when the cap says so; butt caps end pieces square.
		if edgesHit(kept, p, tolerance, roundCap) {
			return true, true
		}
	}
	return false, true
}

// flattenCircle samples a circle into a closed polygon, starting at twelve
// o'clock and winding clockwise to match how the ring layout orients its
// dash offset.
func flattenCircle(cx, cy, r float64) SubPath {
	pts := make([]Point, circleFlattenSteps)
	for i := 0; i < circleFlattenSteps; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/circleFlattenSteps
		pts[i] = Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return SubPath{Points: pts, Closed: true}
}

// edge is one straight piece of a flattened outline.
type edge struct {
	a, b Point
}

// subpathEdges lists a subpath's edges, including the closing edge.
func subpathEdges(sp SubPath) []edge {
	pts := sp.Points
	if len(pts) < 2 {
		return nil
	}
	edges := make([]edge, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		edges = append(edges, edge{pts[i], pts[i+1]})
	}
	if sp.Closed && len(pts) > 2 {
		edges = append(edges, edge{pts[len(pts)-1], pts[0]})
	}
	return edges
}

// edgesHit tests the point against each edge. Round caps admit the
// semicircular ends (plain segment distance); butt caps restrict the hit to
// the rectangular body of the edge.
func edgesHit(edges []edge, p Point, tol float64, roundCap bool) bool {
	tolSq := tol * tol
	for _, e := range edges {
		if roundCap {
			if segmentDistanceSquared(p, e.a, e.b) <= tolSq {
				return true
			}
			continue
		}
		if buttSegmentHit(p, e.a, e.b, tol) {
			return true
		}
	}
	return false
}

// buttSegmentHit tests the rectangle swept by a butt-capped stroke piece:
// the projection must land on the segment body and the perpendicular
// distance must be within tolerance.
func buttSegmentHit(p, a, b Point, tol float64) bool {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return false
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 || t > 1 {
		return false
	}
	perp := p.Sub(a.Lerp(b, t))
	return perp.LengthSquared() <= tol*tol
}

// normalizeDash cleans a dash array: absolute values, odd-length arrays
// doubled, and all-zero patterns treated as no dash.
func normalizeDash(lengths []float64) []float64 {
	if len(lengths) == 0 {
		return nil
	}
	nonZero := false
	out := make([]float64, 0, len(lengths)*2)
	for _, l := range lengths {
		l = math.Abs(l)
		if l > 0 {
			nonZero = true
		}
		out = append(out, l)
	}
	if !nonZero {
		return nil
	}
	if len(out)%2 == 1 {
		out = append(out, out...)
	}
	return out
}

// applyDash walks the edges by arc length and keeps only the pieces falling
// inside "on" intervals of the dash pattern, honoring the starting offset.
func applyDash(edges []edge, dash []float64, offset float64) []edge {
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if period <= 0 {
		return edges
	}
	// The offset is the distance into the pattern at which the outline
	// starts, matching SVG stroke-dashoffset.
	pos := math.Mod(offset, period)
	if pos < 0 {
		pos += period
	}

	var kept []edge
	for _, e := range edges {
		length := e.a.Distance(e.b)
		if length == 0 {
			continue
		}
		travel := 0.0
		for travel < length-1e-9 {
			idx, remain := dashInterval(dash, pos)
			on := idx%2 == 0
			step := math.Min(remain, length-travel)
			if step <= 1e-12 {
				break
			}
			if on {
				t0 := travel / length
				t1 := (travel + step) / length
				kept = append(kept, edge{e.a.Lerp(e.b, t0), e.a.Lerp(e.b, t1)})
			}
			travel += step
			pos = math.Mod(pos+step, period)
		}
	}
	return kept
}

// dashInterval locates pos within the dash pattern, returning the interval
// index and the distance remaining in it.
func dashInterval(dash []float64, pos float64) (int, float64) {
	acc := 0.0
	for i, d := range dash {
		if pos < acc+d {
			return i, acc + d - pos
		}
		acc += d
	}
	// pos == period boundary; wrap to the first interval.
	return 0, dash[0]
}
