package viz

import (
	"strconv"
	"time"
)

// ValueType classifies a single raw value.
type ValueType string

// Value classifications, in tie-break priority order.
const (
	TypeQuantitative ValueType = "quantitative"
	TypeTemporal     ValueType = "temporal"
	TypeNominal      ValueType = "nominal"
	TypeUnknown      ValueType = "unknown"
)

// temporalLayouts are the calendar formats a string may parse as.
var temporalLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
}

// InferValueType classifies one raw value. Quantitative takes precedence
// over temporal for ambiguous strings (a bare year like "2024" is a number).
// Nil, empty strings, and NaN are unknown.
func InferValueType(v any) ValueType {
	switch x := v.(type) {
	case nil:
		return TypeUnknown
	case time.Time:
		return TypeTemporal
	case bool:
		return TypeNominal
	case string:
		if x == "" {
			return TypeUnknown
		}
		if f, err := strconv.ParseFloat(x, 64); err == nil && isFinite(f) {
			return TypeQuantitative
		}
		for _, layout := range temporalLayouts {
			if _, err := time.Parse(layout, x); err == nil {
				return TypeTemporal
			}
		}
		return TypeNominal
	default:
		if f, ok := asNumber(v); ok {
			if isFinite(f) {
				return TypeQuantitative
			}
			return TypeUnknown
		}
		return TypeUnknown
	}
}

// SeriesTypeInfo reports the majority classification of a value series along
// with per-kind counts, so callers can judge how clean the data is.
type SeriesTypeInfo struct {
	Kind          ValueType
	NumericCount  int
	TemporalCount int
	NominalCount  int
	UnknownCount  int
}

// InferSeriesType classifies every element and takes the majority non-unknown
// kind; ties break by fixed priority quantitative > temporal > nominal. An
// all-unknown (or empty) series is unknown.
func InferSeriesType(values []any) SeriesTypeInfo {
	info := SeriesTypeInfo{Kind: TypeUnknown}
	for _, v := range values {
		switch InferValueType(v) {
		case TypeQuantitative:
			info.NumericCount++
		case TypeTemporal:
			info.TemporalCount++
		case TypeNominal:
			info.NominalCount++
		default:
			info.UnknownCount++
		}
	}
	best := 0
	for _, c := range []struct {
		kind  ValueType
		count int
	}{
		{TypeQuantitative, info.NumericCount},
		{TypeTemporal, info.TemporalCount},
		{TypeNominal, info.NominalCount},
	} {
		if c.count > best {
			best = c.count
			info.Kind = c.kind
		}
	}
	return info
}

// Inferred is the result of shape inference: a spec, the payload converted to
// the matching typed Data, and the name of the matcher that fired.
type Inferred struct {
	Spec   Spec
	Data   Data
	Reason string
}

// InferOption configures InferSpec.
type InferOption func(*inferOptions)

type inferOptions struct {
	fallbackType ChartType
}

// WithFallbackType makes InferSpec wrap otherwise-unclassifiable payloads
// under the given chart type instead of returning nil.
func WithFallbackType(t ChartType) InferOption {
	return func(o *inferOptions) {
		o.fallbackType = t
	}
}

// InferSpec guesses the most likely chart spec for an un-annotated payload.
// Matchers run in a fixed order and the first hit wins; the order is part of
// the contract because some payloads satisfy several shapes (an object with
// both current/previous/max and series must resolve to bullet-delta).
//
// Returns nil when nothing matches and no fallback type was configured.
func InferSpec(data any, opts ...InferOption) *Inferred {
	var o inferOptions
	for _, opt := range opts {
		opt(&o)
	}

	if values, ok := asNumberSlice(data); ok {
		return &Inferred{
			Spec:   Spec{Type: ChartSparkline},
			Data:   SeriesData{Values: values},
			Reason: "number-array",
		}
	}
	if segs, ok := asSegmentSlice(data); ok {
		return &Inferred{
			Spec:   Spec{Type: ChartDonut},
			Data:   SegmentsData{Segments: segs},
			Reason: "slice-objects",
		}
	}
	if obj, ok := data.(map[string]any); ok {
		if raw, ok := obj["segments"]; ok {
			if segs, ok := asSegmentSlice(raw); ok {
				return &Inferred{
					Spec:   Spec{Type: ChartDonut},
					Data:   SegmentsData{Segments: segs},
					Reason: "segments-field",
				}
			}
		}
		if cur, okC := numberField(obj, "current"); okC {
			if prev, okP := numberField(obj, "previous"); okP {
				if max, okM := numberField(obj, "max"); okM {
					return &Inferred{
						Spec:   Spec{Type: ChartBulletDelta},
						Data:   DeltaData{Current: cur, Previous: prev, Max: max},
						Reason: "current-previous-max",
					}
				}
			}
			if target, okT := numberField(obj, "target"); okT {
				return &Inferred{
					Spec:   Spec{Type: ChartDumbbell},
					Data:   RangeData{Current: cur, Target: target},
					Reason: "current-target",
				}
			}
		}
		if max, okM := numberField(obj, "max"); okM {
			if value, okV := numberField(obj, "value"); okV {
				return &Inferred{
					Spec:   Spec{Type: ChartBar},
					Data:   GaugeData{Value: value, Max: max},
					Reason: "value-max",
				}
			}
		}
		if raw, ok := obj["series"]; ok {
			if values, ok := asNumberSlice(raw); ok {
				return &Inferred{
					Spec:   Spec{Type: ChartHistogram},
					Data:   SeriesData{Values: values, Opacities: nil},
					Reason: "series-field",
				}
			}
		}
	}

	if o.fallbackType != "" {
		return &Inferred{
			Spec:   Spec{Type: o.fallbackType},
			Data:   RawData{Value: data},
			Reason: "fallback",
		}
	}
	return nil
}

// asNumber converts the numeric types a raw payload may carry.
func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	default:
		return 0, false
	}
}

// asNumberSlice accepts []float64, []int, or []any of numbers.
func asNumberSlice(v any) ([]float64, bool) {
	switch x := v.(type) {
	case []float64:
		out := make([]float64, len(x))
		copy(out, x)
		return out, true
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		if len(x) == 0 {
			return nil, false
		}
		out := make([]float64, len(x))
		for i, e := range x {
			f, ok := asNumber(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}

// asSegmentSlice accepts a slice of objects that all carry a color and a
// proportion-like field (pct or weight), the donut shape.
func asSegmentSlice(v any) ([]SegmentInput, bool) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	out := make([]SegmentInput, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		color, ok := obj["color"].(string)
		if !ok {
			return nil, false
		}
		w, ok := numberField(obj, "pct")
		if !ok {
			if w, ok = numberField(obj, "weight"); !ok {
				return nil, false
			}
		}
		name, _ := obj["name"].(string)
		if name == "" {
			name, _ = obj["label"].(string)
		}
		out[i] = SegmentInput{Name: name, Weight: w, Color: color}
	}
	return out, true
}

// numberField reads a numeric field from a raw object.
func numberField(obj map[string]any, key string) (float64, bool) {
	v, ok := obj[key]
	if !ok {
		return 0, false
	}
	return asNumber(v)
}
