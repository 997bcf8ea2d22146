package viz

// layoutFunc is one chart type's pure layout algorithm. A layout never
// fails: for degenerate input it returns a well-formed model with no marks,
// because empty-state rendering is required behavior. For equal input a
// layout emits identical marks in identical order with identical ids; both
// visual stacking and hit-test precedence depend on that ordering.
type layoutFunc func(data Data, size Size, spec Spec) RenderModel

// layouts is the closed dispatch table from chart type to layout. There is
// no runtime registration: the set of chart types is part of the package
// API, and an unknown type is a programmer error, not an extension point.
var layouts = map[ChartType]layoutFunc{
	ChartSparkline:    layoutSparkline,
	ChartHistogram:    layoutHistogram,
	ChartBar:          layoutBar,
	ChartBulletDelta:  layoutBulletDelta,
	ChartDumbbell:     layoutDumbbell,
	ChartDonut:        layoutDonut,
	ChartRing:         layoutRing,
	ChartBitfield:     layoutBitfield,
	ChartWaffle:       layoutWaffle,
	ChartWave:         layoutWave,
	ChartPatternTiles: layoutPatternTiles,
	ChartFallback:     layoutFallback,
}

// emptyModel is the well-formed result for degenerate layout input.
func emptyModel(size Size) RenderModel {
	return RenderModel{Width: size.Width, Height: size.Height, Marks: []Mark{}}
}

// seriesExtent returns the min and max of a series, treating non-finite
// values as absent. ok is false when nothing finite remains.
func seriesExtent(values []float64) (minV, maxV float64, ok bool) {
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		if !ok {
			minV, maxV, ok = v, v, true
			continue
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV, ok
}
