package viz

import (
	"testing"
	"time"
)

func TestInferValueType(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want ValueType
	}{
		{"int", 42, TypeQuantitative},
		{"float", 3.5, TypeQuantitative},
		{"numeric string", "3.5", TypeQuantitative},
		{"negative numeric string", "-17", TypeQuantitative},
		{"bare year is a number", "2024", TypeQuantitative},
		{"iso date", "2024-01-05", TypeTemporal},
		{"rfc3339", "2024-01-05T10:30:00Z", TypeTemporal},
		{"time.Time", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), TypeTemporal},
		{"word", "alpha", TypeNominal},
		{"bool", true, TypeNominal},
		{"nil", nil, TypeUnknown},
		{"empty string", "", TypeUnknown},
		{"NaN string", "NaN", TypeNominal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferValueType(tt.in); got != tt.want {
				t.Errorf("InferValueType(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInferSeriesType(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		wantKind ValueType
	}{
		{"mostly numbers", []any{1, 2, "x", 3}, TypeQuantitative},
		{"mostly dates", []any{"2024-01-05", "2024-01-06", "x"}, TypeTemporal},
		{"all words", []any{"a", "b"}, TypeNominal},
		{"all unknown", []any{nil, ""}, TypeUnknown},
		{"empty", nil, TypeUnknown},
		// A tie resolves by fixed priority: quantitative beats temporal.
		{"tie", []any{1, "2024-01-05"}, TypeQuantitative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := InferSeriesType(tt.values)
			if info.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", info.Kind, tt.wantKind)
			}
		})
	}
}

func TestInferSeriesTypeCounts(t *testing.T) {
	info := InferSeriesType([]any{1, 2.5, "alpha", "2024-01-05", nil})
	if info.NumericCount != 2 || info.NominalCount != 1 ||
		info.TemporalCount != 1 || info.UnknownCount != 1 {
		t.Errorf("counts = %+v, want 2/1/1/1", info)
	}
}

func TestInferSpecShapes(t *testing.T) {
	tests := []struct {
		name       string
		in         any
		wantType   ChartType
		wantReason string
	}{
		{
			"number array",
			[]any{1.0, 2.0, 3.0},
			ChartSparkline, "number-array",
		},
		{
			"slice objects",
			[]any{
				map[string]any{"color": "#111", "pct": 60.0},
				map[string]any{"color": "#222", "pct": 40.0},
			},
			ChartDonut, "slice-objects",
		},
		{
			"segments field",
			map[string]any{"segments": []any{
				map[string]any{"color": "#111", "pct": 100.0},
			}},
			ChartDonut, "segments-field",
		},
		{
			"current previous max",
			map[string]any{"current": 8.0, "previous": 4.0, "max": 10.0},
			ChartBulletDelta, "current-previous-max",
		},
		{
			"current target",
			map[string]any{"current": 8.0, "target": 10.0},
			ChartDumbbell, "current-target",
		},
		{
			"value max",
			map[string]any{"value": 3.0, "max": 10.0},
			ChartBar, "value-max",
		},
		{
			"series field",
			map[string]any{"series": []any{1.0, 2.0, 3.0}},
			ChartHistogram, "series-field",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferSpec(tt.in)
			if got == nil {
				t.Fatal("InferSpec returned nil")
			}
			if got.Spec.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Spec.Type, tt.wantType)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestInferSpecMatcherOrder(t *testing.T) {
	// An object satisfying both the bullet-delta and histogram shapes must
	// resolve to the earlier-checked bullet-delta.
	got := InferSpec(map[string]any{
		"current": 8.0, "previous": 4.0, "max": 10.0,
		"series": []any{1.0, 2.0, 3.0},
	})
	if got == nil {
		t.Fatal("InferSpec returned nil")
	}
	if got.Spec.Type != ChartBulletDelta {
		t.Errorf("type = %q, want %q", got.Spec.Type, ChartBulletDelta)
	}
	d, ok := got.Data.(DeltaData)
	if !ok {
		t.Fatalf("data = %T, want DeltaData", got.Data)
	}
	if d.Current != 8 || d.Previous != 4 || d.Max != 10 {
		t.Errorf("data = %+v, want 8/4/10", d)
	}
}

func TestInferSpecSeriesData(t *testing.T) {
	got := InferSpec(map[string]any{"series": []any{1.0, 2.0, 3.0}})
	if got == nil {
		t.Fatal("InferSpec returned nil")
	}
	d, ok := got.Data.(SeriesData)
	if !ok {
		t.Fatalf("data = %T, want SeriesData", got.Data)
	}
	if len(d.Values) != 3 || d.Values[0] != 1 || d.Values[2] != 3 {
		t.Errorf("values = %v, want [1 2 3]", d.Values)
	}
	if d.Opacities != nil {
		t.Errorf("opacities = %v, want nil", d.Opacities)
	}
}

func TestInferSpecFallback(t *testing.T) {
	if got := InferSpec("mystery"); got != nil {
		t.Errorf("without fallback: got %+v, want nil", got)
	}

	got := InferSpec("mystery", WithFallbackType(ChartFallback))
	if got == nil {
		t.Fatal("with fallback: InferSpec returned nil")
	}
	if got.Spec.Type != ChartFallback || got.Reason != "fallback" {
		t.Errorf("got type %q reason %q, want fallback/fallback", got.Spec.Type, got.Reason)
	}
	raw, ok := got.Data.(RawData)
	if !ok || raw.Value != "mystery" {
		t.Errorf("data = %+v, want RawData{mystery}", got.Data)
	}
}
