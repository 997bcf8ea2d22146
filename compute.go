package viz

import (
	"errors"
	"fmt"
	"log/slog"
)

// Programmer errors returned by ComputeModel. Data-quality problems never
// surface here; they become warnings on the returned model's stats.
var (
	// ErrUnknownChartType reports a spec whose type has no layout.
	ErrUnknownChartType = errors.New("viz: unknown chart type")
	// ErrInvalidSpec reports a spec with out-of-range fields.
	ErrInvalidSpec = errors.New("viz: invalid spec")
)

// ComputeOption configures a ComputeModel call.
type ComputeOption func(*computeOptions)

type computeOptions struct {
	a11yItemCap int
}

// WithA11yItemCap overrides the cap on accessibility items (default 100).
func WithA11yItemCap(n int) ComputeOption {
	return func(o *computeOptions) {
		o.a11yItemCap = n
	}
}

// ComputeModel turns a (data, size, spec) triple into a RenderModel.
//
// The call is deterministic: structurally equal input produces a bit-for-bit
// identical model. Degenerate data (empty series, zero weights) still yields
// a valid model with zero marks and an EMPTY_DATA warning; only programmer
// errors (an unknown chart type or an invalid spec) return a non-nil error.
func ComputeModel(input ComputeInput, opts ...ComputeOption) (RenderModel, error) {
	var o computeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateSpec(input.Spec); err != nil {
		return RenderModel{}, err
	}
	layout, ok := layouts[input.Spec.Type]
	if !ok {
		return RenderModel{}, fmt.Errorf("%w: %q", ErrUnknownChartType, input.Spec.Type)
	}

	model := layout(input.Data, input.Size, input.Spec)
	model.Width = input.Size.Width
	model.Height = input.Size.Height
	if model.Marks == nil {
		model.Marks = []Mark{}
	}

	warnings := validateModel(model, dataIsEmpty(input.Data))
	model.Stats = &Stats{
		MarkCount: len(model.Marks),
		HasDefs:   len(model.Defs) > 0,
		Warnings:  warnings,
	}
	model.A11y = buildA11y(input.Data, input.Spec, o.a11yItemCap)

	if len(warnings) > 0 {
		log := Logger()
		for _, w := range warnings {
			log.Debug("viz: model warning",
				slog.String("chart", string(input.Spec.Type)),
				slog.String("code", string(w.Code)),
				slog.String("message", w.Message))
		}
	}
	return model, nil
}

// validateSpec rejects specs no layout could honor.
func validateSpec(spec Spec) error {
	if spec.Total < 0 {
		return fmt.Errorf("%w: negative total %d", ErrInvalidSpec, spec.Total)
	}
	if spec.Columns < 0 {
		return fmt.Errorf("%w: negative columns %d", ErrInvalidSpec, spec.Columns)
	}
	if spec.Gap.Set && (spec.Gap.Value < 0 || !isFinite(spec.Gap.Value)) {
		return fmt.Errorf("%w: bad gap %v", ErrInvalidSpec, spec.Gap.Value)
	}
	return nil
}

// dataIsEmpty reports whether the payload has nothing to draw. Scalar
// payloads (gauges, deltas, percentages) are never empty.
func dataIsEmpty(data Data) bool {
	switch d := data.(type) {
	case nil:
		return true
	case SeriesData:
		return len(d.Values) == 0
	case SegmentsData:
		return len(d.Segments) == 0
	case BitsData:
		return len(d.Bits) == 0
	case RawData:
		return d.Value == nil
	default:
		return false
	}
}

// validateModel runs the cheap structural validators, in a fixed order so
// the warning list is deterministic.
func validateModel(model RenderModel, emptyInput bool) []Warning {
	var warnings []Warning
	add := func(code WarningCode, format string, args ...any) {
		warnings = append(warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if emptyInput {
		add(WarnEmptyData, "input data was empty")
	} else if len(model.Marks) == 0 {
		add(WarnBlankRender, "non-empty data produced no marks")
	}

	if id, ok := firstNaNMark(model.Marks); ok {
		add(WarnNaNCoordinate, "mark %q has a non-finite coordinate", id)
	}
	if id, ok := firstOutOfBoundsMark(model); ok {
		add(WarnMarkOutOfBounds, "mark %q lies entirely outside the %gx%g canvas",
			id, model.Width, model.Height)
	}
	if markID, defID, ok := firstMissingDef(model); ok {
		add(WarnMissingDef, "mark %q references missing def %q", markID, defID)
	}
	return warnings
}

// firstNaNMark returns the first mark with a non-finite numeric field.
func firstNaNMark(marks []Mark) (string, bool) {
	for _, m := range marks {
		for _, v := range markNumbers(m) {
			if !isFinite(v) {
				return m.ID, true
			}
		}
	}
	return "", false
}

// markNumbers lists the numeric fields meaningful for the mark's type.
// Path coordinates are covered by markBounds via the parser.
func markNumbers(m Mark) []float64 {
	switch m.Type {
	case MarkRect:
		return []float64{m.X, m.Y, m.W, m.H}
	case MarkCircle:
		return []float64{m.CX, m.CY, m.R}
	case MarkLine:
		return []float64{m.X1, m.Y1, m.X2, m.Y2}
	case MarkPath:
		if subpaths, ok := ParseSimplePath(m.D); ok {
			var out []float64
			for _, sp := range subpaths {
				for _, p := range sp.Points {
					out = append(out, p.X, p.Y)
				}
			}
			return out
		}
		return nil
	case MarkText:
		return []float64{m.X, m.Y}
	default:
		return nil
	}
}

// firstOutOfBoundsMark returns the first mark whose bounds miss the canvas
// entirely. Marks with unknowable bounds (unparseable paths) are skipped.
func firstOutOfBoundsMark(model RenderModel) (string, bool) {
	canvas := Rect{MinX: 0, MinY: 0, MaxX: model.Width, MaxY: model.Height}
	for _, m := range model.Marks {
		b, ok := markBounds(m)
		if !ok || b.IsEmpty() {
			continue
		}
		finite := isFinite(b.MinX) && isFinite(b.MinY) && isFinite(b.MaxX) && isFinite(b.MaxY)
		if finite && !canvas.Intersects(b) {
			return m.ID, true
		}
	}
	return "", false
}

// markBounds computes a mark's bounding rect. ok is false when the geometry
// cannot be determined.
func markBounds(m Mark) (Rect, bool) {
	switch m.Type {
	case MarkRect:
		return Rect{MinX: m.X, MinY: m.Y, MaxX: m.X + m.W, MaxY: m.Y + m.H}, true
	case MarkCircle:
		return Rect{MinX: m.CX - m.R, MinY: m.CY - m.R, MaxX: m.CX + m.R, MaxY: m.CY + m.R}, true
	case MarkLine:
		b := emptyRect().union(Pt(m.X1, m.Y1)).union(Pt(m.X2, m.Y2))
		return b, true
	case MarkPath:
		subpaths, ok := ParseSimplePath(m.D)
		if !ok {
			return Rect{}, false
		}
		b := emptyRect()
		for _, sp := range subpaths {
			for _, p := range sp.Points {
				b = b.union(p)
			}
		}
		return b, true
	case MarkText:
		return Rect{MinX: m.X, MinY: m.Y, MaxX: m.X, MaxY: m.Y}, true
	default:
		return Rect{}, false
	}
}

// firstMissingDef returns the first dangling def reference.
func firstMissingDef(model RenderModel) (markID, defID string, ok bool) {
	if len(model.Marks) == 0 {
		return "", "", false
	}
	defined := make(map[string]bool, len(model.Defs))
	for _, d := range model.Defs {
		defined[d.ID] = true
	}
	for _, m := range model.Marks {
		refs := []string{m.ClipPath, m.Mask, m.Filter,
			urlRef(m.Fill), urlRef(m.Stroke)}
		for _, ref := range refs {
			if ref != "" && !defined[ref] {
				return m.ID, ref, true
			}
		}
	}
	return "", "", false
}

// urlRef extracts the def id from a url(#id) paint value, if any.
func urlRef(v PaintValue) string {
	if v.State != PaintSet {
		return ""
	}
	s := v.Value
	if len(s) > 6 && s[:5] == "url(#" && s[len(s)-1] == ')' {
		return s[5 : len(s)-1]
	}
	return ""
}
