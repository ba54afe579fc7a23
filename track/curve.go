package track

import (
	"math"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/welllog"
	"github.com/fogleman/gg"
)

// Rect is the drawing area of one track in the target context.
type Rect struct {
	X, Y, W, H float64
}

// Normalize maps v into [0,1] across the track domain. Inverted domains
// (Min > Max) flip the direction. On a log scale non-positive values have
// no position.
func Normalize(v float64, cfg welllog.TrackConfig) (float64, bool) {
	lo, hi := cfg.Min, cfg.Max
	if cfg.LogScale {
		if v <= 0 || lo <= 0 || hi <= 0 {
			return 0, false
		}
		v, lo, hi = math.Log10(v), math.Log10(lo), math.Log10(hi)
	}
	if hi == lo {
		return 0, false
	}
	return (v - lo) / (hi - lo), true
}

type point struct{ x, y float64 }

// curveSegments projects the samples into r. A null (or an unplottable log
// value) ends the current segment; segments are never joined across it.
// One sample either side of the window is kept so lines reach the edges.
func curveSegments(depth []float64, values []welllog.Value, cfg welllog.TrackConfig, w depthaxis.Window, r Rect) [][]point {
	n := len(depth)
	if len(values) < n {
		n = len(values)
	}
	var segs [][]point
	var cur []point
	end := func() {
		if len(cur) > 0 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	for i := 0; i < n; i++ {
		if !nearWindow(depth, n, i, w) {
			end()
			continue
		}
		v := values[i]
		if !v.Valid {
			end()
			continue
		}
		t, ok := Normalize(v.V, cfg)
		if !ok {
			end()
			continue
		}
		x := r.X + t*r.W
		y := depthaxis.DepthToPixel(depth[i], r.Y, r.Y+r.H, w)
		cur = append(cur, point{x, y})
	}
	end()
	return segs
}

func nearWindow(depth []float64, n, i int, w depthaxis.Window) bool {
	if w.Contains(depth[i]) {
		return true
	}
	if i > 0 && w.Contains(depth[i-1]) {
		return true
	}
	if i < n-1 && w.Contains(depth[i+1]) {
		return true
	}
	// window narrower than one sample step
	if i < n-1 {
		lo, hi := depth[i], depth[i+1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo <= w.Start && hi >= w.End {
			return true
		}
	}
	return false
}

// DrawCurve strokes the curve into dc, clipped to r. When fill is true and
// the config has a fill colour, the area between the left edge and the curve
// is shaded first.
func DrawCurve(dc *gg.Context, depth []float64, values []welllog.Value, cfg welllog.TrackConfig, w depthaxis.Window, r Rect, fill bool) {
	segs := curveSegments(depth, values, cfg, w, r)
	dc.Push()
	defer dc.Pop()
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Clip()

	if fill && cfg.FillColor != "" {
		dc.SetHexColor(cfg.FillColor)
		for _, seg := range segs {
			if len(seg) < 2 {
				continue
			}
			dc.MoveTo(r.X, seg[0].y)
			for _, p := range seg {
				dc.LineTo(p.x, p.y)
			}
			dc.LineTo(r.X, seg[len(seg)-1].y)
			dc.ClosePath()
			dc.Fill()
		}
	}

	dc.SetHexColor(colorOr(cfg.Color, "#ffffff"))
	dc.SetLineWidth(1)
	for _, seg := range segs {
		if len(seg) == 1 {
			dc.DrawPoint(seg[0].x, seg[0].y, 0.75)
			dc.Fill()
			continue
		}
		dc.MoveTo(seg[0].x, seg[0].y)
		for _, p := range seg[1:] {
			dc.LineTo(p.x, p.y)
		}
		dc.Stroke()
	}
	dc.ResetClip()
}

// DrawLithology paints each block as a filled rectangle in its class colour.
func DrawLithology(dc *gg.Context, blocks []Block, cfg lithology.Config, w depthaxis.Window, r Rect) {
	dc.Push()
	defer dc.Pop()
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Clip()
	for _, b := range blocks {
		top := depthaxis.DepthToPixel(b.Top, r.Y, r.Y+r.H, w)
		bottom := depthaxis.DepthToPixel(b.Bottom, r.Y, r.Y+r.H, w)
		if bottom < top {
			top, bottom = bottom, top
		}
		dc.SetHexColor(lithology.Resolve(b.Value, cfg).Color)
		dc.DrawRectangle(r.X, top, r.W, bottom-top)
		dc.Fill()
	}
	dc.ResetClip()
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}
