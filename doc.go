// Package viz computes renderer-agnostic scene graphs for microcharts.
//
// # Overview
//
// viz turns a declarative (data, size, spec) triple into a RenderModel: a
// small ordered list of drawable marks (rects, circles, lines, paths, text)
// plus reusable defs (gradients, patterns, masks, filters, clip rects). The
// model is a pure value; painting it is the job of external backends (Canvas,
// SVG, HTML). viz also answers pointer hit-test queries against a model.
//
// # Quick Start
//
//	import "github.com/gogpu/viz"
//
//	model, err := viz.ComputeModel(viz.ComputeInput{
//	    Data: viz.SeriesData{Values: []float64{3, 1, 4, 1, 5}},
//	    Size: viz.Size{Width: 120, Height: 32},
//	    Spec: viz.Spec{Type: viz.ChartSparkline},
//	})
//	if err != nil {
//	    // unknown chart type or malformed spec
//	}
//
//	hit := viz.HitTest(model, viz.Pt(40, 16))
//	if hit != nil {
//	    // hit.MarkID identifies the topmost mark under the pointer
//	}
//
// # Determinism
//
// ComputeModel is a pure function: for structurally equal input it returns a
// bit-for-bit identical RenderModel. There is no randomness, no wall-clock
// dependency, and no shared mutable state, so models can be cached by input
// and computed concurrently from multiple goroutines without locking.
//
// # Architecture
//
// The library is organized into:
//   - Data model: RenderModel, Mark, Def, Paint (model.go, defs.go)
//   - Layouts: one pure function per chart type (chart_*.go)
//   - Compute engine: dispatch, validation, stats, a11y (compute.go)
//   - Hit-test engine: topmost-first geometric queries (hittest.go)
//   - Inference and normalization helpers (infer.go, segment.go)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
package viz
