package depthaxis

import "fmt"

// minSpan keeps zoom-in from collapsing the window to nothing.
const minSpan = 0.5

// Window is the visible depth range, Start < End.
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (w Window) Span() float64 { return w.End - w.Start }

func (w Window) Center() float64 { return (w.Start + w.End) / 2 }

func (w Window) Contains(d float64) bool { return d >= w.Start && d <= w.End }

func (w Window) IsZero() bool { return w.Start == 0 && w.End == 0 }

func (w Window) String() string {
	return fmt.Sprintf("%.2f - %.2f", w.Start, w.End)
}

// Clamp fits w inside extent, keeping its span where possible.
func (w Window) Clamp(extent Window) Window {
	if w.Start > w.End {
		w.Start, w.End = w.End, w.Start
	}
	span := w.Span()
	if span >= extent.Span() {
		return extent
	}
	if w.Start < extent.Start {
		w.Start = extent.Start
		w.End = extent.Start + span
	}
	if w.End > extent.End {
		w.End = extent.End
		w.Start = extent.End - span
	}
	return w
}

// Zoom scales the window around anchor. factor < 1 zooms in.
func (w Window) Zoom(factor, anchor float64, extent Window) Window {
	if factor <= 0 {
		return w
	}
	if !w.Contains(anchor) {
		anchor = w.Center()
	}
	span := w.Span() * factor
	if span < minSpan {
		span = minSpan
	}
	ratio := 0.5
	if w.Span() > 0 {
		ratio = (anchor - w.Start) / w.Span()
	}
	next := Window{
		Start: anchor - span*ratio,
		End:   anchor - span*ratio + span,
	}
	return next.Clamp(extent)
}

// Pan shifts the window by delta depth units.
func (w Window) Pan(delta float64, extent Window) Window {
	return Window{Start: w.Start + delta, End: w.End + delta}.Clamp(extent)
}

// CenterOn moves the window so depth sits in the middle.
func (w Window) CenterOn(depth float64, extent Window) Window {
	half := w.Span() / 2
	return Window{Start: depth - half, End: depth + half}.Clamp(extent)
}
