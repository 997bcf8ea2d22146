package viz

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPaintValueThreeStates(t *testing.T) {
	var unset PaintValue
	if !unset.IsZero() || unset.State != PaintUnset {
		t.Errorf("zero value = %+v, want unset", unset)
	}
	if none := PaintColor("none"); none.State != PaintNone {
		t.Errorf("PaintColor(none) = %+v, want none state", none)
	}
	if set := PaintColor("#123456"); set.State != PaintSet || set.Value != "#123456" {
		t.Errorf("PaintColor(#123456) = %+v", set)
	}
}

func TestMarkJSONOmitsUnsetPaint(t *testing.T) {
	out, err := json.Marshal(RectMark("r", 1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	for _, field := range []string{"fill", "stroke", "strokeWidth", "fillOpacity"} {
		if strings.Contains(s, field) {
			t.Errorf("unset %s serialized: %s", field, s)
		}
	}
}

func TestMarkJSONRoundTrip(t *testing.T) {
	in := RectMark("r", 1, 2, 3, 4).
		WithFill("none").
		WithStroke("#abc", 2).
		WithFillOpacity(0).
		WithDash(1, 4, 2)
	out, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var back Mark
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Fill.State != PaintNone {
		t.Errorf("fill = %+v, want none", back.Fill)
	}
	if back.Stroke.State != PaintSet || back.Stroke.Value != "#abc" {
		t.Errorf("stroke = %+v", back.Stroke)
	}
	// Opacity zero is a set value, distinct from absent.
	if !back.FillOpacity.Set || back.FillOpacity.Value != 0 {
		t.Errorf("fillOpacity = %+v, want explicit 0", back.FillOpacity)
	}
	if len(back.StrokeDasharray) != 2 || !back.StrokeDashoffset.Set {
		t.Errorf("dash = %v offset %v", back.StrokeDasharray, back.StrokeDashoffset)
	}
}

func TestRenderModelJSONShape(t *testing.T) {
	model, err := ComputeModel(tilesInput())
	if err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(model)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if strings.Contains(s, "warnings") {
		t.Errorf("clean model serialized warnings: %s", s)
	}
	for _, want := range []string{`"marks"`, `"defs"`, `"stats"`, `"a11y"`, `"markCount":8`} {
		if !strings.Contains(s, want) {
			t.Errorf("serialized model missing %s", want)
		}
	}
}

func TestOptFloatOr(t *testing.T) {
	if got := (OptFloat{}).Or(7); got != 7 {
		t.Errorf("unset Or(7) = %g", got)
	}
	if got := F(0).Or(7); got != 0 {
		t.Errorf("set-zero Or(7) = %g, want 0", got)
	}
}
