package viz

import "encoding/json"

// Size is the pixel canvas a scene must fit within.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MarkType discriminates the drawable primitive a Mark carries.
type MarkType string

// Mark type identifiers. The set is closed; the hit-test and validation
// engines switch exhaustively over it.
const (
	MarkRect   MarkType = "rect"
	MarkCircle MarkType = "circle"
	MarkLine   MarkType = "line"
	MarkPath   MarkType = "path"
	MarkText   MarkType = "text"
)

// PaintState distinguishes an attribute that was never set from one
// explicitly set to "none" and from one carrying a value. The distinction is
// load-bearing for hit-testing: a mark whose fill was never set is painted by
// external styling and must not be treated as filled.
type PaintState uint8

const (
	// PaintUnset means the attribute was not specified at all.
	PaintUnset PaintState = iota
	// PaintNone means the attribute was explicitly set to "none".
	PaintNone
	// PaintSet means the attribute carries a concrete value.
	PaintSet
)

// PaintValue is a three-state paint channel: unset, none, or a value.
// The zero value is the unset state.
type PaintValue struct {
	State PaintState
	Value string
}

// PaintColor builds a PaintValue from a color string; "none" maps to the
// explicit none state.
func PaintColor(s string) PaintValue {
	if s == "none" {
		return PaintValue{State: PaintNone}
	}
	return PaintValue{State: PaintSet, Value: s}
}

// IsZero reports whether the channel is unset, for json omitzero.
func (v PaintValue) IsZero() bool { return v.State == PaintUnset }

// MarshalJSON encodes the channel as its attribute string.
func (v PaintValue) MarshalJSON() ([]byte, error) {
	if v.State == PaintNone {
		return json.Marshal("none")
	}
	return json.Marshal(v.Value)
}

// UnmarshalJSON decodes an attribute string into the set or none state.
func (v *PaintValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = PaintColor(s)
	return nil
}

// OptFloat is an explicitly optional float, so a meaningful zero (opacity 0,
// dash offset 0) is distinguishable from an absent attribute.
type OptFloat struct {
	Set   bool
	Value float64
}

// F wraps a float64 in a set OptFloat.
func F(v float64) OptFloat { return OptFloat{Set: true, Value: v} }

// Or returns the value if set, otherwise the fallback.
func (f OptFloat) Or(fallback float64) float64 {
	if f.Set {
		return f.Value
	}
	return fallback
}

// IsZero reports whether the value is absent, for json omitzero.
func (f OptFloat) IsZero() bool { return !f.Set }

// MarshalJSON encodes the value as a plain number.
func (f OptFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes a plain number into a set OptFloat.
func (f *OptFloat) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

// Paint holds the optional paint attributes shared by all mark types.
type Paint struct {
	Fill             PaintValue `json:"fill,omitzero"`
	FillOpacity      OptFloat   `json:"fillOpacity,omitzero"`
	Stroke           PaintValue `json:"stroke,omitzero"`
	StrokeOpacity    OptFloat   `json:"strokeOpacity,omitzero"`
	StrokeWidth      OptFloat   `json:"strokeWidth,omitzero"`
	StrokeDasharray  []float64  `json:"strokeDasharray,omitempty"`
	StrokeDashoffset OptFloat   `json:"strokeDashoffset,omitzero"`
	StrokeLinecap    string     `json:"strokeLinecap,omitempty"`
	StrokeLinejoin   string     `json:"strokeLinejoin,omitempty"`
}

// Mark is one drawable primitive. Type selects which geometry fields are
// meaningful; the rest stay at their zero values. Marks are ordered within a
// RenderModel: later marks paint over and hit-test before earlier ones.
type Mark struct {
	ID   string   `json:"id"`
	Type MarkType `json:"type"`

	// MarkRect geometry.
	X  float64  `json:"x,omitzero"`
	Y  float64  `json:"y,omitzero"`
	W  float64  `json:"w,omitzero"`
	H  float64  `json:"h,omitzero"`
	RX OptFloat `json:"rx,omitzero"`
	RY OptFloat `json:"ry,omitzero"`

	// MarkCircle geometry.
	CX float64 `json:"cx,omitzero"`
	CY float64 `json:"cy,omitzero"`
	R  float64 `json:"r,omitzero"`

	// MarkLine geometry.
	X1 float64 `json:"x1,omitzero"`
	Y1 float64 `json:"y1,omitzero"`
	X2 float64 `json:"x2,omitzero"`
	Y2 float64 `json:"y2,omitzero"`

	// MarkPath geometry: absolute M/L/Z commands only.
	D string `json:"d,omitempty"`

	// MarkText content. X, Y above position the anchor point.
	Text     string `json:"text,omitempty"`
	Anchor   string `json:"anchor,omitempty"`
	Baseline string `json:"baseline,omitempty"`

	Paint

	// Def references by id; resolved by renderers as url(#id).
	ClipPath string `json:"clipPath,omitempty"`
	Mask     string `json:"mask,omitempty"`
	Filter   string `json:"filter,omitempty"`
}

// RectMark creates a rect mark.
func RectMark(id string, x, y, w, h float64) Mark {
	return Mark{ID: id, Type: MarkRect, X: x, Y: y, W: w, H: h}
}

// CircleMark creates a circle mark.
func CircleMark(id string, cx, cy, r float64) Mark {
	return Mark{ID: id, Type: MarkCircle, CX: cx, CY: cy, R: r}
}

// LineMark creates a line mark.
func LineMark(id string, x1, y1, x2, y2 float64) Mark {
	return Mark{ID: id, Type: MarkLine, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// PathMark creates a path mark from restricted M/L/Z path data.
func PathMark(id, d string) Mark {
	return Mark{ID: id, Type: MarkPath, D: d}
}

// TextMark creates a text mark anchored at (x, y).
func TextMark(id string, x, y float64, text string) Mark {
	return Mark{ID: id, Type: MarkText, X: x, Y: y, Text: text}
}

// WithFill returns a copy of the mark with the fill color set.
func (m Mark) WithFill(color string) Mark {
	m.Fill = PaintColor(color)
	return m
}

// WithFillOpacity returns a copy of the mark with the fill opacity set.
func (m Mark) WithFillOpacity(o float64) Mark {
	m.FillOpacity = F(o)
	return m
}

// WithStroke returns a copy of the mark with stroke color and width set.
func (m Mark) WithStroke(color string, width float64) Mark {
	m.Stroke = PaintColor(color)
	m.StrokeWidth = F(width)
	return m
}

// WithStrokeOpacity returns a copy of the mark with the stroke opacity set.
func (m Mark) WithStrokeOpacity(o float64) Mark {
	m.StrokeOpacity = F(o)
	return m
}

// WithDash returns a copy of the mark with the dash pattern and offset set.
func (m Mark) WithDash(offset float64, lengths ...float64) Mark {
	m.StrokeDasharray = lengths
	m.StrokeDashoffset = F(offset)
	return m
}

// WithLinecap returns a copy of the mark with the stroke line cap set.
func (m Mark) WithLinecap(lineCap string) Mark {
	m.StrokeLinecap = lineCap
	return m
}

// WithRadius returns a copy of a rect mark with corner radii set.
func (m Mark) WithRadius(rx, ry float64) Mark {
	m.RX = F(rx)
	m.RY = F(ry)
	return m
}

// WithClip returns a copy of the mark clipped by the def id.
func (m Mark) WithClip(defID string) Mark {
	m.ClipPath = defID
	return m
}

// WithMask returns a copy of the mark masked by the def id.
func (m Mark) WithMask(defID string) Mark {
	m.Mask = defID
	return m
}

// WithFilter returns a copy of the mark filtered by the def id.
func (m Mark) WithFilter(defID string) Mark {
	m.Filter = defID
	return m
}

// Warnings attached to a model's stats carry stable machine-readable codes.
type WarningCode string

const (
	// WarnEmptyData: the input data was empty or zero-length.
	WarnEmptyData WarningCode = "EMPTY_DATA"
	// WarnBlankRender: non-empty data produced zero marks.
	WarnBlankRender WarningCode = "BLANK_RENDER"
	// WarnNaNCoordinate: a mark has a non-finite numeric field.
	WarnNaNCoordinate WarningCode = "NAN_COORDINATE"
	// WarnMarkOutOfBounds: a mark lies wholly outside the canvas.
	WarnMarkOutOfBounds WarningCode = "MARK_OUT_OF_BOUNDS"
	// WarnMissingDef: a mark references a def id the model does not define.
	WarnMissingDef WarningCode = "MISSING_DEF"
)

// Warning is a recovered data-quality condition. Warnings are diagnostics for
// downstream tooling; they never abort a compute call.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// Stats summarizes a computed model.
type Stats struct {
	MarkCount int       `json:"markCount"`
	HasDefs   bool      `json:"hasDefs"`
	Warnings  []Warning `json:"warnings,omitempty"`
}

// RenderModel is the deterministic geometric scene produced by ComputeModel:
// ordered marks, shared defs, accessibility metadata, and stats. It is a pure
// value; nothing in this package retains or mutates a returned model.
type RenderModel struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Marks  []Mark  `json:"marks"`
	Defs   []Def   `json:"defs,omitempty"`
	A11y   *A11y   `json:"a11y,omitempty"`
	Stats  *Stats  `json:"stats,omitempty"`
}
