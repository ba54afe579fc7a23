package depthaxis

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	ZoomInFactor  = 0.8
	ZoomOutFactor = 1.25
	minorPerMajor = 5
)

var (
	rulerMajorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0e0"))
	rulerMinorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6a6a6a"))
	rulerMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#f5c542"))
)

// Ruler draws the shared depth axis as a fixed-width column of rows.
type Ruler struct {
	Sync
	Extent Window
	Width  int
}

func NewRuler(width int) *Ruler {
	return &Ruler{Width: width}
}

// Wheel handles a scroll gesture on the ruler at the given row.
func (r *Ruler) Wheel(zoomIn bool, row, height int) {
	r.WheelZoom(zoomIn, row, height, r.Extent)
}

// Ticks returns the major tick depths inside w.
func Ticks(w Window) []float64 {
	interval := TickInterval(w.Span())
	var ticks []float64
	for d := math.Ceil(w.Start/interval) * interval; d <= w.End; d += interval {
		ticks = append(ticks, d)
	}
	return ticks
}

// View renders height rows. cursorRow < 0 hides the cursor marker.
func (r *Ruler) View(height, cursorRow int) string {
	if height <= 0 {
		return ""
	}
	w := r.Window()
	lines := make([]string, height)
	if w.Span() <= 0 {
		for i := range lines {
			lines[i] = strings.Repeat(" ", r.Width)
		}
		return strings.Join(lines, "\n")
	}

	major := TickInterval(w.Span())
	minor := major / minorPerMajor
	rowSpan := w.Span() / float64(height)

	for row := 0; row < height; row++ {
		top := w.Start + float64(row)*rowSpan
		bottom := top + rowSpan
		text := ""
		style := rulerMinorStyle
		if d, ok := tickIn(top, bottom, major); ok {
			text = fmt.Sprintf("%*.0f -", r.Width-2, d)
			style = rulerMajorStyle
		} else if _, ok := tickIn(top, bottom, minor); ok {
			text = strings.Repeat(" ", r.Width-1) + "-"
		}
		text = fitWidth(text, r.Width)
		if row == cursorRow {
			style = rulerMarkStyle
		}
		lines[row] = style.Render(text)
	}
	return strings.Join(lines, "\n")
}

// tickIn returns the first multiple of interval in [top, bottom).
func tickIn(top, bottom, interval float64) (float64, bool) {
	if interval <= 0 {
		return 0, false
	}
	d := math.Ceil(top/interval) * interval
	if d < bottom {
		return d, true
	}
	return 0, false
}

func fitWidth(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[len(r)-w:])
	}
	return s + strings.Repeat(" ", w-len(r))
}
