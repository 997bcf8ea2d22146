// Package demo builds deterministic demo payloads for viz charts.
//
// Every builder is keyed by a string seed: equal seeds produce equal
// payloads, process to process, so demo charts are as cacheable and testable
// as real ones. The generator never touches the compute engine itself, which
// is deterministic on its own.
package demo

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/gogpu/viz"
)

// NewRand returns a pseudo-random generator keyed by the seed string. The
// seed is hashed with FNV-1a into a PCG source, so any string works and
// equal strings give equal streams.
func NewRand(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seed))
	s := h.Sum64()
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// palette is the demo color cycle.
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f", "#edc948",
}

// names label demo segments.
var names = []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}

// Series builds a bounded random walk of n points.
func Series(seed string, n int) viz.SeriesData {
	if n <= 0 {
		return viz.SeriesData{}
	}
	r := NewRand(seed)
	values := make([]float64, n)
	v := 50.0
	for i := range values {
		v += r.Float64()*20 - 10
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		values[i] = v
	}
	return viz.SeriesData{Values: values}
}

// Segments builds n weighted segments with palette colors.
func Segments(seed string, n int) viz.SegmentsData {
	if n <= 0 {
		return viz.SegmentsData{}
	}
	r := NewRand(seed)
	segs := make([]viz.SegmentInput, n)
	for i := range segs {
		segs[i] = viz.SegmentInput{
			Name:   names[i%len(names)],
			Weight: 1 + r.Float64()*9,
			Color:  palette[i%len(palette)],
		}
	}
	return viz.SegmentsData{Segments: segs}
}

// Bits builds n on/off flags, roughly two thirds on.
func Bits(seed string, n int) viz.BitsData {
	if n <= 0 {
		return viz.BitsData{}
	}
	r := NewRand(seed)
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.Float64() < 2.0/3
	}
	return viz.BitsData{Bits: bits}
}

// Percent builds a single proportion.
func Percent(seed string) viz.PercentData {
	return viz.PercentData{Pct: float64(NewRand(seed).IntN(101))}
}

// Gauge builds a value against a round maximum.
func Gauge(seed string) viz.GaugeData {
	r := NewRand(seed)
	return viz.GaugeData{Value: r.Float64() * 100, Max: 100}
}

// Delta builds a current/previous pair against a round maximum.
func Delta(seed string) viz.DeltaData {
	r := NewRand(seed)
	return viz.DeltaData{
		Current:  r.Float64() * 100,
		Previous: r.Float64() * 100,
		Max:      100,
	}
}

// Range builds a current/target pair.
func Range(seed string) viz.RangeData {
	r := NewRand(seed)
	return viz.RangeData{
		Current: r.Float64() * 100,
		Target:  r.Float64() * 100,
	}
}

// For builds a payload matching the chart type's expected shape.
func For(t viz.ChartType, seed string) viz.Data {
	switch t {
	case viz.ChartSparkline, viz.ChartHistogram:
		return Series(seed, 16)
	case viz.ChartDonut, viz.ChartWaffle, viz.ChartPatternTiles:
		return Segments(seed, 4)
	case viz.ChartBar:
		return Gauge(seed)
	case viz.ChartBulletDelta:
		return Delta(seed)
	case viz.ChartDumbbell:
		return Range(seed)
	case viz.ChartBitfield:
		return Bits(seed, 12)
	case viz.ChartRing, viz.ChartWave:
		return Percent(seed)
	default:
		return viz.RawData{Value: seed}
	}
}
