package viz

// MarksMode selects how a patch's marks combine with the existing marks.
type MarksMode string

const (
	// MarksReplace swaps the marks array wholesale.
	MarksReplace MarksMode = "replace"
	// MarksAppend concatenates the patch's marks after the existing ones,
	// so they paint and hit-test on top.
	MarksAppend MarksMode = "append"
)

// ModelPatch is a partial RenderModel update. Nil slices and pointers leave
// the corresponding model fields untouched; Defs always append (use
// NewIDAllocator to keep their ids collision-free).
type ModelPatch struct {
	Width  OptFloat
	Height OptFloat
	Marks  []Mark
	Defs   []Def
	A11y   *A11y
}

// PatchRenderModel merges a partial update into a model, returning a new
// value; the input model is never mutated. Mark stats are recomputed, and
// any warnings on the input model are preserved as-is; patching is overlay
// plumbing, not re-validation.
func PatchRenderModel(model RenderModel, patch ModelPatch, mode MarksMode) RenderModel {
	out := model
	out.Marks = copyMarks(model.Marks)
	out.Defs = append([]Def(nil), model.Defs...)

	if patch.Width.Set {
		out.Width = patch.Width.Value
	}
	if patch.Height.Set {
		out.Height = patch.Height.Value
	}
	if patch.Marks != nil {
		switch mode {
		case MarksAppend:
			out.Marks = append(out.Marks, patch.Marks...)
		default:
			out.Marks = copyMarks(patch.Marks)
		}
	}
	out.Defs = append(out.Defs, patch.Defs...)
	if patch.A11y != nil {
		a := *patch.A11y
		out.A11y = &a
	}

	if model.Stats != nil {
		stats := *model.Stats
		stats.MarkCount = len(out.Marks)
		stats.HasDefs = len(out.Defs) > 0
		stats.Warnings = append([]Warning(nil), model.Stats.Warnings...)
		out.Stats = &stats
	}
	return out
}

// copyMarks clones a mark slice so patched models share no backing arrays
// with their inputs.
func copyMarks(marks []Mark) []Mark {
	if marks == nil {
		return nil
	}
	out := make([]Mark, len(marks))
	copy(out, marks)
	return out
}
