package track

import (
	"math"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/welllog"
)

// Block is a run of adjacent samples sharing one rounded value.
type Block struct {
	Top    float64
	Bottom float64
	Value  float64
}

func (b Block) Contains(d float64) bool { return d >= b.Top && d < b.Bottom }

// Blocks compresses a depth-aligned series into contiguous blocks of equal
// rounded value. Each sample extends half the local spacing up and down;
// nulls end a block. Only blocks overlapping w are returned.
func Blocks(depth []float64, values []welllog.Value, w depthaxis.Window) []Block {
	n := len(depth)
	if len(values) < n {
		n = len(values)
	}
	var out []Block
	var cur *Block
	flush := func() {
		if cur != nil {
			if cur.Bottom > w.Start && cur.Top < w.End {
				out = append(out, *cur)
			}
			cur = nil
		}
	}

	for i := 0; i < n; i++ {
		v := values[i]
		if !v.Valid || math.IsNaN(v.V) {
			flush()
			continue
		}
		lo, hi := sampleEdges(depth, n, i)
		r := math.Round(v.V)
		if cur != nil && cur.Value == r {
			if lo < cur.Top {
				cur.Top = lo
			}
			if hi > cur.Bottom {
				cur.Bottom = hi
			}
			continue
		}
		flush()
		cur = &Block{Top: lo, Bottom: hi, Value: r}
	}
	flush()
	return out
}

// sampleEdges returns the depth interval sample i stands for: half the
// spacing to each neighbour, mirroring the one neighbour at the ends.
func sampleEdges(depth []float64, n, i int) (float64, float64) {
	d := depth[i]
	var before, after float64
	switch {
	case n == 1:
		return d, d
	case i == 0:
		after = (depth[1] - d) / 2
		before = after
	case i == n-1:
		before = (d - depth[i-1]) / 2
		after = before
	default:
		before = (d - depth[i-1]) / 2
		after = (depth[i+1] - d) / 2
	}
	lo, hi := d-before, d+after
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// BlockAt finds the block covering depth.
func BlockAt(blocks []Block, depth float64) (Block, bool) {
	for _, b := range blocks {
		if b.Contains(depth) {
			return b, true
		}
	}
	return Block{}, false
}
