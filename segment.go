package viz

import (
	"math"
	"sort"
)

// Segment is a normalized share of a whole. Within one normalized
// collection the Pct values are non-negative integers summing exactly to the
// requested total.
type Segment struct {
	Name  string `json:"name,omitempty"`
	Pct   int    `json:"pct"`
	Color string `json:"color"`
}

// NormalizeSegments converts raw weights into integer percentages that sum
// exactly to total, using largest-remainder rounding: each segment gets the
// floor of its ideal share, then the leftover units go to the segments with
// the largest fractional remainders (ties broken by input index, so the
// result is deterministic). Output preserves input order; segments that end
// up at zero are dropped, so the result may be shorter than the input.
//
// A zero or negative total, an empty input, or an all-zero weight sum yields
// an empty result. Negative weights are treated as zero.
func NormalizeSegments(raw []SegmentInput, total int) []Segment {
	if len(raw) == 0 || total <= 0 {
		return nil
	}

	sum := 0.0
	for _, r := range raw {
		if r.Weight > 0 && isFinite(r.Weight) {
			sum += r.Weight
		}
	}
	if sum == 0 {
		return nil
	}

	type share struct {
		index int
		floor int
		frac  float64
	}
	shares := make([]share, len(raw))
	used := 0
	for i, r := range raw {
		w := r.Weight
		if w < 0 || !isFinite(w) {
			w = 0
		}
		ideal := w / sum * float64(total)
		fl := int(math.Floor(ideal))
		shares[i] = share{index: i, floor: fl, frac: ideal - float64(fl)}
		used += fl
	}

	// Hand the remaining units to the largest fractional remainders.
	remainder := total - used
	order := make([]share, len(shares))
	copy(order, shares)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].frac > order[j].frac
	})
	pct := make([]int, len(raw))
	for _, s := range shares {
		pct[s.index] = s.floor
	}
	for i := 0; i < remainder && i < len(order); i++ {
		pct[order[i].index]++
	}

	out := make([]Segment, 0, len(raw))
	for i, r := range raw {
		if pct[i] == 0 {
			continue
		}
		out = append(out, Segment{Name: r.Name, Pct: pct[i], Color: r.Color})
	}
	return out
}
