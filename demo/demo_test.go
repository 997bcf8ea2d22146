package demo

import (
	"reflect"
	"testing"

	"github.com/gogpu/viz"
)

func TestEqualSeedsEqualPayloads(t *testing.T) {
	if !reflect.DeepEqual(Series("s1", 16), Series("s1", 16)) {
		t.Error("equal seeds produced different series")
	}
	if !reflect.DeepEqual(Segments("s1", 4), Segments("s1", 4)) {
		t.Error("equal seeds produced different segments")
	}
	if !reflect.DeepEqual(Bits("s1", 12), Bits("s1", 12)) {
		t.Error("equal seeds produced different bits")
	}
	if Percent("s1") != Percent("s1") {
		t.Error("equal seeds produced different percents")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	if reflect.DeepEqual(Series("s1", 16), Series("s2", 16)) {
		t.Error("different seeds produced the same series")
	}
}

func TestSeriesStaysBounded(t *testing.T) {
	s := Series("walk", 200)
	if len(s.Values) != 200 {
		t.Fatalf("len = %d, want 200", len(s.Values))
	}
	for i, v := range s.Values {
		if v < 0 || v > 100 {
			t.Fatalf("value %d = %g outside [0,100]", i, v)
		}
	}
}

func TestSegmentsShape(t *testing.T) {
	s := Segments("seg", 4)
	if len(s.Segments) != 4 {
		t.Fatalf("len = %d, want 4", len(s.Segments))
	}
	for i, seg := range s.Segments {
		if seg.Name == "" || seg.Color == "" {
			t.Errorf("segment %d missing name or color: %+v", i, seg)
		}
		if seg.Weight < 1 || seg.Weight > 10 {
			t.Errorf("segment %d weight = %g outside [1,10]", i, seg.Weight)
		}
	}
}

func TestZeroCountBuilders(t *testing.T) {
	if got := Series("x", 0); got.Values != nil {
		t.Errorf("Series(0) = %+v, want empty", got)
	}
	if got := Segments("x", -1); got.Segments != nil {
		t.Errorf("Segments(-1) = %+v, want empty", got)
	}
	if got := Bits("x", 0); got.Bits != nil {
		t.Errorf("Bits(0) = %+v, want empty", got)
	}
}

func TestForRendersEveryChartType(t *testing.T) {
	types := []viz.ChartType{
		viz.ChartSparkline, viz.ChartHistogram, viz.ChartBar,
		viz.ChartBulletDelta, viz.ChartDumbbell, viz.ChartDonut,
		viz.ChartRing, viz.ChartBitfield, viz.ChartWaffle,
		viz.ChartWave, viz.ChartPatternTiles, viz.ChartFallback,
	}
	for _, chartType := range types {
		t.Run(string(chartType), func(t *testing.T) {
			model, err := viz.ComputeModel(viz.ComputeInput{
				Data: For(chartType, "demo"),
				Size: viz.Size{Width: 120, Height: 32},
				Spec: viz.Spec{Type: chartType},
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(model.Marks) == 0 {
				t.Error("demo payload rendered no marks")
			}
		})
	}
}
