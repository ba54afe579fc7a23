package track

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/welllog"
	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
)

var (
	headerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0e0e0")).Background(lipgloss.Color("#303030"))
	headerFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#b7e4c7"))
	headerDragStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#f5c542"))
	scaleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
	noDataStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6a6a6a")).Italic(true)
	cursorBg           = lipgloss.Color("#3a3a3a")
	selectionBg        = lipgloss.Color("#1f4e79")
)

// Overlay carries the per-frame markers drawn on top of a pane. Negative
// rows mean "none".
type Overlay struct {
	CursorRow int
	SelTop    int
	SelBottom int
}

func NoOverlay() Overlay { return Overlay{CursorRow: -1, SelTop: -1, SelBottom: -1} }

func (o Overlay) selected(row int) bool {
	return o.SelTop >= 0 && row >= o.SelTop && row <= o.SelBottom
}

// Pane is one track column.
type Pane struct {
	depthaxis.Sync
	Name   string
	Config welllog.TrackConfig
	Litho  lithology.Config
	Extent depthaxis.Window
}

func NewPane(name string, cfg welllog.TrackConfig) *Pane {
	return &Pane{Name: name, Config: cfg}
}

func (p *Pane) Lithology() bool { return p.Config.Mode == welllog.ModeLithology }

// Wheel handles a scroll gesture over the pane body at row.
func (p *Pane) Wheel(zoomIn bool, row, height int) {
	p.WheelZoom(zoomIn, row, height, p.Extent)
}

// Header renders the two header rows: the name and the scale legend.
func (p *Pane) Header(width int, focused, dragging bool) string {
	style := headerStyle
	switch {
	case dragging:
		style = headerDragStyle
	case focused:
		style = headerFocusedStyle
	}
	name := p.Name
	if p.Config.Unit != "" {
		name += " (" + p.Config.Unit + ")"
	}
	title := style.Width(width).Render(truncate(name, width))

	var legend string
	if p.Lithology() {
		legend = "lithology"
	} else {
		lo, hi := fmtScale(p.Config.Min), fmtScale(p.Config.Max)
		gap := width - len(lo) - len(hi)
		if p.Config.LogScale {
			gap -= 3
			hi += " lg"
		}
		if gap < 1 {
			legend = lo + ".." + hi
		} else {
			legend = lo + strings.Repeat(" ", gap) + hi
		}
	}
	return title + "\n" + scaleStyle.Render(pad(truncate(legend, width), width))
}

// View renders height body rows of width cells for the current window.
func (p *Pane) View(ds *welllog.Dataset, width, height int, ov Overlay) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	w := p.Window()
	if !ds.Valid() || !ds.Has(p.Name) || w.Span() <= 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, noDataStyle.Render("no data"))
	}
	values := ds.Curves[p.Name]
	if p.Lithology() {
		return p.lithologyView(ds.Depth, values, width, height, ov)
	}
	return p.curveView(ds.Depth, values, width, height, ov)
}

func (p *Pane) curveView(depth []float64, values []welllog.Value, width, height int, ov Overlay) string {
	dc := gg.NewContext(width*dotsX, height*dotsY)
	r := Rect{X: 0, Y: 0, W: float64(width * dotsX), H: float64(height * dotsY)}
	DrawCurve(dc, depth, values, p.Config, p.Window(), r, false)
	cells := Braille(dc.Image(), width, height)

	var area [][]bool
	if p.Config.FillColor != "" {
		mask := gg.NewContext(width*dotsX, height*dotsY)
		DrawCurve(mask, depth, values, p.Config, p.Window(), r, true)
		area = Coverage(mask.Image(), width, height)
	}

	base := lipgloss.NewStyle().Foreground(lipgloss.Color(colorOr(p.Config.Color, "#ffffff")))
	lines := make([]string, height)
	for row, cell := range cells {
		s := base
		switch {
		case row == ov.CursorRow:
			s = s.Background(cursorBg)
		case ov.selected(row):
			s = s.Background(selectionBg)
		case area != nil:
			lines[row] = shadeRow([]rune(cell), area[row], s, lipgloss.Color(p.Config.FillColor))
			continue
		}
		lines[row] = s.Render(cell)
	}
	return strings.Join(lines, "\n")
}

// shadeRow renders cells in runs, giving the filled ones the fill background.
func shadeRow(cells []rune, filled []bool, s lipgloss.Style, fill lipgloss.Color) string {
	var sb strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && i < len(filled) && filled[i] == filled[start] {
			continue
		}
		run := s
		if start < len(filled) && filled[start] {
			run = run.Background(fill)
		}
		sb.WriteString(run.Render(string(cells[start:i])))
		start = i
	}
	return sb.String()
}

func (p *Pane) lithologyView(depth []float64, values []welllog.Value, width, height int, ov Overlay) string {
	w := p.Window()
	blocks := Blocks(depth, values, w)
	lines := make([]string, height)
	var last *Block
	for row := 0; row < height; row++ {
		d, _ := depthaxis.PixelToDepth(float64(row)+0.5, 0, float64(height), w)
		b, ok := BlockAt(blocks, d)
		text := strings.Repeat(" ", width)
		s := lipgloss.NewStyle()
		if ok {
			class := lithology.Resolve(b.Value, p.Litho)
			s = s.Background(lipgloss.Color(class.Color)).Foreground(lipgloss.Color("#000000"))
			if last == nil || *last != b {
				text = pad(truncate(class.Label, width), width)
			}
			bb := b
			last = &bb
		} else {
			last = nil
		}
		if row == ov.CursorRow {
			s = s.Reverse(true)
		} else if ov.selected(row) {
			s = s.Underline(true)
		}
		lines[row] = s.Render(text)
	}
	return strings.Join(lines, "\n")
}

// Hover is the readout for depth: the interpolated value, or the
// lithology class and its block's depth range in lithology mode.
func (p *Pane) Hover(ds *welllog.Dataset, depth float64) string {
	if !ds.Valid() || !ds.Has(p.Name) {
		return p.Name + ": no data"
	}
	if p.Lithology() {
		blocks := Blocks(ds.Depth, ds.Curves[p.Name], ds.Extent())
		b, ok := BlockAt(blocks, depth)
		if !ok {
			return p.Name + ": -"
		}
		class := lithology.Resolve(b.Value, p.Litho)
		return fmt.Sprintf("%s: %s (%g) %.2f-%.2f", p.Name, class.Label, b.Value, b.Top, b.Bottom)
	}
	v, ok := ds.ValueAt(p.Name, depth)
	if !ok {
		return p.Name + ": -"
	}
	if p.Config.Unit != "" {
		return fmt.Sprintf("%s: %.2f %s", p.Name, v, p.Config.Unit)
	}
	return fmt.Sprintf("%s: %.2f", p.Name, v)
}

// Reorder moves from to the index currently held by to. Unknown names or
// from == to leave the order unchanged. A new slice is always returned.
func Reorder(order []string, from, to string) []string {
	out := append([]string(nil), order...)
	if from == to {
		return out
	}
	fi, ti := indexOf(out, from), indexOf(out, to)
	if fi < 0 || ti < 0 {
		return out
	}
	out = append(out[:fi], out[fi+1:]...)
	out = append(out[:ti], append([]string{from}, out[ti:]...)...)
	return out
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func fmtScale(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}

func pad(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
