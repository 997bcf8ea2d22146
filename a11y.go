package viz

import (
	"strconv"
)

// A11y carries static descriptive metadata alongside the geometry, for
// renderers that expose charts to assistive technology.
type A11y struct {
	Label   string       `json:"label,omitempty"`
	Role    string       `json:"role,omitempty"`
	Summary *A11ySummary `json:"summary,omitempty"`
	Items   []A11yItem   `json:"items,omitempty"`
}

// A11ySummary describes the whole dataset. Kind discriminates which fields
// are meaningful: "series" carries count/min/max/last/trend, "segments"
// carries count and the largest segment.
type A11ySummary struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`

	// series
	Min   OptFloat `json:"min,omitzero"`
	Max   OptFloat `json:"max,omitzero"`
	Last  OptFloat `json:"last,omitzero"`
	Trend string   `json:"trend,omitempty"`

	// segments
	Largest    string `json:"largest,omitempty"`
	LargestPct int    `json:"largestPct,omitzero"`
}

// A11yItem describes one data point or segment.
type A11yItem struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Value     OptFloat `json:"value,omitzero"`
	ValueText string   `json:"valueText,omitempty"`
	Series    string   `json:"series,omitempty"`
	Rank      int      `json:"rank,omitzero"`
}

// defaultA11yItemCap bounds the items array for very large inputs. Callers
// detect truncation by comparing len(Items) against Summary.Count.
const defaultA11yItemCap = 100

// buildA11y derives deterministic accessibility metadata from the input.
// The result depends only on the data and spec, never on the layout output.
func buildA11y(data Data, spec Spec, itemCap int) *A11y {
	if itemCap <= 0 {
		itemCap = defaultA11yItemCap
	}
	label := spec.Label
	if label == "" {
		label = string(spec.Type) + " chart"
	}
	a := &A11y{Label: label, Role: "img"}

	switch d := data.(type) {
	case SeriesData:
		a.Summary, a.Items = seriesA11y(d.Values, itemCap)
	case BitsData:
		values := make([]float64, len(d.Bits))
		for i, b := range d.Bits {
			if b {
				values[i] = 1
			}
		}
		a.Summary, a.Items = seriesA11y(values, itemCap)
	case SegmentsData:
		a.Summary, a.Items = segmentsA11y(NormalizeSegments(d.Segments, spec.total()), itemCap)
	case GaugeData:
		a.Summary, a.Items = seriesA11y([]float64{d.Value}, itemCap)
	case DeltaData:
		a.Summary, a.Items = seriesA11y([]float64{d.Previous, d.Current}, itemCap)
	case RangeData:
		a.Summary, a.Items = seriesA11y([]float64{d.Current, d.Target}, itemCap)
	case PercentData:
		a.Summary, a.Items = seriesA11y([]float64{d.Pct}, itemCap)
	default:
		// Raw or nil payloads get the label and role only.
	}
	return a
}

// seriesA11y summarizes a numeric series and emits one item per point.
func seriesA11y(values []float64, itemCap int) (*A11ySummary, []A11yItem) {
	s := &A11ySummary{Kind: "series", Count: len(values)}
	if len(values) == 0 {
		return s, nil
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	s.Min = F(minV)
	s.Max = F(maxV)
	s.Last = F(values[len(values)-1])
	switch first, last := values[0], values[len(values)-1]; {
	case last > first:
		s.Trend = "rising"
	case last < first:
		s.Trend = "falling"
	default:
		s.Trend = "flat"
	}

	n := len(values)
	if n > itemCap {
		n = itemCap
	}
	items := make([]A11yItem, n)
	for i := 0; i < n; i++ {
		items[i] = A11yItem{
			ID:        "pt-" + strconv.Itoa(i),
			Label:     "point " + strconv.Itoa(i+1) + " of " + strconv.Itoa(len(values)),
			Value:     F(values[i]),
			ValueText: formatFloat(values[i]),
		}
	}
	return s, items
}

// segmentsA11y summarizes normalized segments, ranking by share.
func segmentsA11y(segs []Segment, itemCap int) (*A11ySummary, []A11yItem) {
	s := &A11ySummary{Kind: "segments", Count: len(segs)}
	if len(segs) == 0 {
		return s, nil
	}

	largest := 0
	for i, seg := range segs[1:] {
		if seg.Pct > segs[largest].Pct {
			largest = i + 1
		}
	}
	s.Largest = segmentLabel(segs[largest], largest)
	s.LargestPct = segs[largest].Pct

	// Rank is 1 for the largest share; ties resolve by input order.
	rank := make([]int, len(segs))
	for i := range segs {
		r := 1
		for j := range segs {
			if segs[j].Pct > segs[i].Pct || (segs[j].Pct == segs[i].Pct && j < i) {
				r++
			}
		}
		rank[i] = r
	}

	n := len(segs)
	if n > itemCap {
		n = itemCap
	}
	items := make([]A11yItem, n)
	for i := 0; i < n; i++ {
		items[i] = A11yItem{
			ID:        "seg-" + strconv.Itoa(i),
			Label:     segmentLabel(segs[i], i),
			Value:     F(float64(segs[i].Pct)),
			ValueText: strconv.Itoa(segs[i].Pct) + "%",
			Rank:      rank[i],
		}
	}
	return s, items
}

// segmentLabel names a segment, falling back to its position.
func segmentLabel(seg Segment, i int) string {
	if seg.Name != "" {
		return seg.Name
	}
	return "segment " + strconv.Itoa(i+1)
}

// formatFloat renders a value the way the a11y items speak it: integers
// without a decimal point, everything else with minimal digits.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
