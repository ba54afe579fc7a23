package lithology

import (
	"fmt"
	"math"
	"sort"

	"github.com/andareed/siftly-welllog/welllog"
)

// Palette colours automatically generated classes, in order.
var Palette = []string{
	"#f5d76e", "#7f8c8d", "#3498db", "#9b59b6",
	"#e67e22", "#2ecc71", "#e74c3c", "#1abc9c",
}

const edgeMargin = 0.5

// AutoRanges builds a range map from the observed values: each distinct
// rounded value owns the half-open interval between the midpoints to its
// neighbours, so every observed value falls in exactly one range.
func AutoRanges(values []welllog.Value) RangeMap {
	seen := map[float64]bool{}
	var distinct []float64
	for _, v := range values {
		if !v.Valid || math.IsNaN(v.V) {
			continue
		}
		r := math.Round(v.V)
		if !seen[r] {
			seen[r] = true
			distinct = append(distinct, r)
		}
	}
	sort.Float64s(distinct)

	out := make(RangeMap, 0, len(distinct))
	for i, v := range distinct {
		lo := v - edgeMargin
		hi := v + edgeMargin
		if i > 0 {
			lo = (distinct[i-1] + v) / 2
		}
		if i < len(distinct)-1 {
			hi = (v + distinct[i+1]) / 2
		}
		out = append(out, Range{
			Min:   lo,
			Max:   hi,
			Color: Palette[i%len(Palette)],
			Label: fmt.Sprintf("Class %g", v),
		})
	}
	return out
}
