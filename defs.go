package viz

import "strconv"

// DefType discriminates the reusable resource a Def carries.
type DefType string

// Def type identifiers.
const (
	DefLinearGradient DefType = "linearGradient"
	DefPattern        DefType = "pattern"
	DefMask           DefType = "mask"
	DefFilter         DefType = "filter"
	DefClipRect       DefType = "clipRect"
)

// GradientStop is one color at a position along a gradient, offset in [0, 1].
type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// LinearGradient defines a gradient along the line (x1,y1)-(x2,y2) in
// objectBoundingBox units, with ordered stops.
type LinearGradient struct {
	X1    float64        `json:"x1"`
	Y1    float64        `json:"y1"`
	X2    float64        `json:"x2"`
	Y2    float64        `json:"y2"`
	Stops []GradientStop `json:"stops"`
}

// PatternDef tiles nested marks over a Width×Height cell in pattern space.
type PatternDef struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Marks  []Mark  `json:"marks"`
}

// MaskDef renders nested marks as a luminance mask.
type MaskDef struct {
	Marks []Mark `json:"marks"`
}

// FilterKind discriminates a filter primitive.
type FilterKind string

// Filter primitive kinds.
const (
	FilterDropShadow      FilterKind = "dropShadow"
	FilterGaussianBlur    FilterKind = "gaussianBlur"
	FilterTurbulence      FilterKind = "turbulence"
	FilterDisplacementMap FilterKind = "displacementMap"
)

// FilterPrimitive is one step of a filter chain. Kind selects which fields
// are meaningful.
type FilterPrimitive struct {
	Kind FilterKind `json:"kind"`

	// dropShadow
	DX    float64 `json:"dx,omitzero"`
	DY    float64 `json:"dy,omitzero"`
	Color string  `json:"color,omitempty"`

	// dropShadow, gaussianBlur
	StdDev float64 `json:"stdDev,omitzero"`

	// turbulence
	BaseFrequency float64 `json:"baseFrequency,omitzero"`
	Octaves       int     `json:"octaves,omitzero"`
	Seed          int     `json:"seed,omitzero"`

	// displacementMap
	Scale float64 `json:"scale,omitzero"`
}

// FilterDef applies its primitives in order.
type FilterDef struct {
	Primitives []FilterPrimitive `json:"primitives"`
}

// ClipRectDef clips referencing marks to an axis-aligned rect.
type ClipRectDef struct {
	X  float64  `json:"x"`
	Y  float64  `json:"y"`
	W  float64  `json:"w"`
	H  float64  `json:"h"`
	RX OptFloat `json:"rx,omitzero"`
}

// Def is a reusable resource referenced by id from marks. Type selects which
// payload field is populated; def ids are unique within one RenderModel.
type Def struct {
	ID   string  `json:"id"`
	Type DefType `json:"type"`

	Gradient *LinearGradient `json:"gradient,omitempty"`
	Pattern  *PatternDef     `json:"pattern,omitempty"`
	Mask     *MaskDef        `json:"mask,omitempty"`
	Filter   *FilterDef      `json:"filter,omitempty"`
	ClipRect *ClipRectDef    `json:"clipRect,omitempty"`
}

// GradientDef creates a linear gradient def.
func GradientDef(id string, g LinearGradient) Def {
	return Def{ID: id, Type: DefLinearGradient, Gradient: &g}
}

// NewPatternDef creates a pattern def tiling the given marks.
func NewPatternDef(id string, w, h float64, marks ...Mark) Def {
	return Def{ID: id, Type: DefPattern, Pattern: &PatternDef{Width: w, Height: h, Marks: marks}}
}

// NewMaskDef creates a mask def from the given marks.
func NewMaskDef(id string, marks ...Mark) Def {
	return Def{ID: id, Type: DefMask, Mask: &MaskDef{Marks: marks}}
}

// NewFilterDef creates a filter def from ordered primitives.
func NewFilterDef(id string, primitives ...FilterPrimitive) Def {
	return Def{ID: id, Type: DefFilter, Filter: &FilterDef{Primitives: primitives}}
}

// ClipRect creates a rectangular clip def.
func ClipRect(id string, x, y, w, h float64) Def {
	return Def{ID: id, Type: DefClipRect, ClipRect: &ClipRectDef{X: x, Y: y, W: w, H: h}}
}

// IDAllocator hands out def ids that do not collide with ids already present
// in a model. It is a snapshot: allocate all ids before appending the new
// defs, or create a fresh allocator from the updated model.
type IDAllocator struct {
	used map[string]bool
}

// NewIDAllocator creates an allocator seeded with every def id in the model.
func NewIDAllocator(model RenderModel) *IDAllocator {
	used := make(map[string]bool, len(model.Defs))
	for _, d := range model.Defs {
		used[d.ID] = true
	}
	return &IDAllocator{used: used}
}

// DefID returns base if free, otherwise base-2, base-3, ... The returned id
// is recorded so repeated calls with the same base keep advancing.
func (a *IDAllocator) DefID(base string) string {
	id := base
	for n := 2; a.used[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	a.used[id] = true
	return id
}
