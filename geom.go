package viz

import "math"

// Rect is an axis-aligned rectangle used for bounds computations.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyRect returns a rect that contains nothing; any Union fixes it up.
func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the rect contains no points.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Contains reports whether the point lies inside the rect, bounds inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Expand grows the rect by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// union extends r to cover p.
func (r Rect) union(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Intersects reports whether two rects overlap, bounds inclusive.
func (r Rect) Intersects(s Rect) bool {
	return r.MinX <= s.MaxX && s.MinX <= r.MaxX && r.MinY <= s.MaxY && s.MinY <= r.MaxY
}

// segmentDistanceSquared returns the squared distance from p to the line
// segment a-b. Degenerate segments (a == b) fall back to point distance.
func segmentDistanceSquared(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.DistanceSquared(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.DistanceSquared(a.Lerp(b, t))
}

// pointInPolygon tests p against the polygon using the even-odd ray-casting
// rule: cast a ray toward +X and count edge crossings. An edge crosses when
// its endpoints straddle p.Y and the x-intersection lies right of p.X.
func pointInPolygon(p Point, poly []Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xHit := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xHit {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// polygonBounds returns the bounding rect of a point list.
func polygonBounds(pts []Point) Rect {
	b := emptyRect()
	for _, p := range pts {
		b = b.union(p)
	}
	return b
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
