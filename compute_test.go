package viz

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func tilesInput() ComputeInput {
	return ComputeInput{
		Data: SegmentsData{Segments: []SegmentInput{
			{Name: "a", Weight: 40, Color: "#4e79a7"},
			{Name: "b", Weight: 30, Color: "#f28e2b"},
			{Name: "c", Weight: 20, Color: "#e15759"},
			{Name: "d", Weight: 10, Color: "#76b7b2"},
		}},
		Size: Size{Width: 120, Height: 16},
		Spec: Spec{Type: ChartPatternTiles},
	}
}

func TestComputeModelDeterminism(t *testing.T) {
	a, errA := ComputeModel(tilesInput())
	b, errB := ComputeModel(tilesInput())
	if errA != nil || errB != nil {
		t.Fatalf("errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("equal input produced different models")
	}
}

func TestComputeModelPatternTilesShape(t *testing.T) {
	model, err := ComputeModel(tilesInput())
	if err != nil {
		t.Fatal(err)
	}
	// Two marks per segment (base + pattern overlay), one def per segment.
	if len(model.Marks) != 8 {
		t.Errorf("marks = %d, want 8", len(model.Marks))
	}
	if len(model.Defs) != 4 {
		t.Errorf("defs = %d, want 4", len(model.Defs))
	}
	if model.Stats == nil {
		t.Fatal("stats missing")
	}
	if model.Stats.Warnings != nil {
		t.Errorf("warnings = %v, want none", model.Stats.Warnings)
	}
	if model.Stats.MarkCount != 8 || !model.Stats.HasDefs {
		t.Errorf("stats = %+v, want markCount 8, hasDefs", model.Stats)
	}
}

func TestComputeModelEmptyInputSafety(t *testing.T) {
	empties := map[ChartType]Data{
		ChartSparkline:    SeriesData{},
		ChartHistogram:    SeriesData{},
		ChartDonut:        SegmentsData{},
		ChartWaffle:       SegmentsData{},
		ChartPatternTiles: SegmentsData{},
		ChartBitfield:     BitsData{},
		ChartFallback:     RawData{},
	}
	for chartType, data := range empties {
		t.Run(string(chartType), func(t *testing.T) {
			model, err := ComputeModel(ComputeInput{
				Data: data,
				Size: Size{Width: 100, Height: 30},
				Spec: Spec{Type: chartType},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(model.Marks) != 0 {
				t.Errorf("marks = %d, want 0", len(model.Marks))
			}
			if !hasWarning(model, WarnEmptyData) {
				t.Error("missing EMPTY_DATA warning")
			}
		})
	}
}

func TestComputeModelNilData(t *testing.T) {
	model, err := ComputeModel(ComputeInput{
		Size: Size{Width: 100, Height: 30},
		Spec: Spec{Type: ChartSparkline},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.Marks) != 0 {
		t.Errorf("marks = %d, want 0", len(model.Marks))
	}
}

func TestComputeModelUnknownChartType(t *testing.T) {
	_, err := ComputeModel(ComputeInput{
		Data: SeriesData{Values: []float64{1}},
		Size: Size{Width: 100, Height: 30},
		Spec: Spec{Type: "treemap"},
	})
	if !errors.Is(err, ErrUnknownChartType) {
		t.Errorf("err = %v, want ErrUnknownChartType", err)
	}
}

func TestComputeModelInvalidSpec(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"negative total", Spec{Type: ChartDonut, Total: -1}},
		{"negative columns", Spec{Type: ChartWaffle, Columns: -2}},
		{"negative gap", Spec{Type: ChartHistogram, Gap: F(-3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeModel(ComputeInput{Size: Size{Width: 10, Height: 10}, Spec: tt.spec})
			if !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("err = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestComputeModelBlankRenderWarning(t *testing.T) {
	// A non-empty series of only non-finite values draws nothing.
	model, err := ComputeModel(ComputeInput{
		Data: SeriesData{Values: []float64{math.NaN(), math.Inf(1)}},
		Size: Size{Width: 100, Height: 30},
		Spec: Spec{Type: ChartSparkline},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(model.Marks) != 0 {
		t.Fatalf("marks = %d, want 0", len(model.Marks))
	}
	if !hasWarning(model, WarnBlankRender) {
		t.Error("missing BLANK_RENDER warning")
	}
	if hasWarning(model, WarnEmptyData) {
		t.Error("non-empty input must not warn EMPTY_DATA")
	}
}

func TestValidateModelNaNCoordinate(t *testing.T) {
	model := RenderModel{
		Width: 10, Height: 10,
		Marks: []Mark{RectMark("r", math.NaN(), 0, 5, 5).WithFill("#000")},
	}
	warnings := validateModel(model, false)
	if !warningsHave(warnings, WarnNaNCoordinate) {
		t.Errorf("warnings = %v, want NAN_COORDINATE", warnings)
	}
}

func TestValidateModelOutOfBounds(t *testing.T) {
	model := RenderModel{
		Width: 10, Height: 10,
		Marks: []Mark{
			RectMark("inside", 2, 2, 4, 4).WithFill("#000"),
			RectMark("outside", 50, 50, 4, 4).WithFill("#000"),
		},
	}
	warnings := validateModel(model, false)
	if !warningsHave(warnings, WarnMarkOutOfBounds) {
		t.Errorf("warnings = %v, want MARK_OUT_OF_BOUNDS", warnings)
	}

	// A mark straddling the edge is not "wholly outside".
	model.Marks = []Mark{RectMark("edge", 8, 8, 10, 10).WithFill("#000")}
	warnings = validateModel(model, false)
	if warningsHave(warnings, WarnMarkOutOfBounds) {
		t.Errorf("warnings = %v, straddling mark must not warn", warnings)
	}
}

func TestValidateModelMissingDef(t *testing.T) {
	model := RenderModel{
		Width: 10, Height: 10,
		Marks: []Mark{RectMark("r", 0, 0, 5, 5).WithFill("#000").WithClip("nope")},
	}
	warnings := validateModel(model, false)
	if !warningsHave(warnings, WarnMissingDef) {
		t.Errorf("warnings = %v, want MISSING_DEF", warnings)
	}

	// url(#id) paint references count too.
	model.Marks = []Mark{RectMark("r", 0, 0, 5, 5).WithFill("url(#ghost)")}
	warnings = validateModel(model, false)
	if !warningsHave(warnings, WarnMissingDef) {
		t.Errorf("warnings = %v, want MISSING_DEF for url ref", warnings)
	}
}

func TestComputeModelStats(t *testing.T) {
	model, err := ComputeModel(ComputeInput{
		Data: SeriesData{Values: []float64{1, 2, 3}},
		Size: Size{Width: 100, Height: 30},
		Spec: Spec{Type: ChartHistogram},
	})
	if err != nil {
		t.Fatal(err)
	}
	if model.Stats == nil {
		t.Fatal("stats missing")
	}
	if model.Stats.MarkCount != len(model.Marks) {
		t.Errorf("markCount = %d, want %d", model.Stats.MarkCount, len(model.Marks))
	}
	if model.Stats.HasDefs {
		t.Error("histogram has no defs")
	}
}

func hasWarning(model RenderModel, code WarningCode) bool {
	if model.Stats == nil {
		return false
	}
	return warningsHave(model.Stats.Warnings, code)
}

func warningsHave(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
