// Package depthaxis holds the shared depth axis: the view window every
// track is drawn against, pixel/depth conversion and the ruler.
package depthaxis

// PixelToDepth maps a vertical position inside the plot area to a depth in
// the window. Positions outside [top, bottom] have no depth.
func PixelToDepth(y, top, bottom float64, w Window) (float64, bool) {
	if bottom <= top || y < top || y > bottom {
		return 0, false
	}
	return w.Start + (y-top)/(bottom-top)*(w.End-w.Start), true
}

// DepthToPixel is the inverse of PixelToDepth. The result is not clipped.
func DepthToPixel(depth, top, bottom float64, w Window) float64 {
	span := w.End - w.Start
	if span == 0 {
		return top
	}
	return top + (depth-w.Start)/span*(bottom-top)
}

// TickInterval picks a major tick spacing from the total depth span so
// labels stay readable at any zoom level.
func TickInterval(span float64) float64 {
	if span < 0 {
		span = -span
	}
	switch {
	case span < 50:
		return 5
	case span < 200:
		return 10
	case span < 1000:
		return 50
	case span < 5000:
		return 100
	default:
		return 500
	}
}
