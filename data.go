package viz

// ChartType identifies one visual pattern and selects its layout function.
type ChartType string

// The closed set of chart types. Unknown types are a programmer error
// surfaced by ComputeModel as ErrUnknownChartType.
const (
	ChartSparkline    ChartType = "sparkline"
	ChartHistogram    ChartType = "histogram"
	ChartBar          ChartType = "bar"
	ChartBulletDelta  ChartType = "bullet-delta"
	ChartDumbbell     ChartType = "dumbbell"
	ChartDonut        ChartType = "donut"
	ChartRing         ChartType = "ring"
	ChartBitfield     ChartType = "bitfield"
	ChartWaffle       ChartType = "waffle"
	ChartWave         ChartType = "wave"
	ChartPatternTiles ChartType = "pattern-tiles"
	ChartFallback     ChartType = "fallback"
)

// Data is the payload handed to a layout function. The set of payload shapes
// is closed; a layout receiving a payload it cannot use returns an empty
// well-formed model rather than failing.
type Data interface {
	isData()
}

// SeriesData is an ordered numeric series, optionally with per-point
// opacities (parallel to Values; extra entries ignored).
type SeriesData struct {
	Values    []float64
	Opacities []float64
}

func (SeriesData) isData() {}

// SegmentInput is one raw proportion-like record before normalization.
// Weight is any non-negative number; it need not be a percentage.
type SegmentInput struct {
	Name   string
	Weight float64
	Color  string
}

// SegmentsData is a collection of proportion records.
type SegmentsData struct {
	Segments []SegmentInput
}

func (SegmentsData) isData() {}

// GaugeData is a single value against a maximum.
type GaugeData struct {
	Value float64
	Max   float64
}

func (GaugeData) isData() {}

// DeltaData compares a current value to a previous one against a maximum.
type DeltaData struct {
	Current  float64
	Previous float64
	Max      float64
}

func (DeltaData) isData() {}

// RangeData relates a current value to a target.
type RangeData struct {
	Current float64
	Target  float64
}

func (RangeData) isData() {}

// BitsData is an ordered row of on/off flags.
type BitsData struct {
	Bits []bool
}

func (BitsData) isData() {}

// PercentData is a single proportion in [0, 100].
type PercentData struct {
	Pct float64
}

func (PercentData) isData() {}

// RawData wraps an unclassified payload for the fallback layout.
type RawData struct {
	Value any
}

func (RawData) isData() {}

// Spec declares which chart to lay out and its optional styling knobs.
// Zero values mean "use the chart's default".
type Spec struct {
	Type ChartType `json:"type"`

	// Color overrides the primary color; Colors overrides the palette used
	// for multi-element charts.
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`

	// Label overrides the generated accessibility label.
	Label string `json:"label,omitempty"`

	// Total is the normalization target for segment charts (default 100).
	Total int `json:"total,omitzero"`

	// Columns sets the grid width for waffle charts (default 10).
	Columns int `json:"columns,omitzero"`

	// ShowArea fills the area under a sparkline.
	ShowArea bool `json:"showArea,omitzero"`

	// Rounded rounds rect corners where the chart supports it.
	Rounded bool `json:"rounded,omitzero"`

	// Gap is the spacing between repeated elements, in pixels.
	Gap OptFloat `json:"gap,omitzero"`
}

// total returns the segment normalization target.
func (s Spec) total() int {
	if s.Total > 0 {
		return s.Total
	}
	return 100
}

// defaultPalette is the fallback color cycle for multi-element charts.
var defaultPalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
	"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
}

// color returns the primary color, preferring Color, then the first palette
// entry, then the package default.
func (s Spec) color() string {
	if s.Color != "" {
		return s.Color
	}
	if len(s.Colors) > 0 {
		return s.Colors[0]
	}
	return defaultPalette[0]
}

// paletteColor returns the i-th palette color, cycling as needed.
func (s Spec) paletteColor(i int) string {
	if len(s.Colors) > 0 {
		return s.Colors[i%len(s.Colors)]
	}
	return defaultPalette[i%len(defaultPalette)]
}

// ComputeInput is the (data, size, spec) triple ComputeModel consumes.
type ComputeInput struct {
	Data Data
	Size Size
	Spec Spec
}
