package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type DepthRangeConfirmedMsg struct{ Window depthaxis.Window }

// DepthRange edits the view window by hand.
type DepthRange struct {
	inputs  [2]textinput.Model
	focus   int
	extent  depthaxis.Window
	err     string
	visible bool
}

func NewDepthRangeDialog(current, extent depthaxis.Window) *DepthRange {
	d := &DepthRange{extent: extent, visible: true}
	for i, v := range []float64{current.Start, current.End} {
		ti := textinput.New()
		ti.Prompt = [2]string{"top:    ", "bottom: "}[i]
		ti.CharLimit = 24
		ti.Width = 20
		ti.SetValue(fmtDepth(v))
		d.inputs[i] = ti
	}
	d.inputs[0].Focus()
	return d
}

func (d DepthRange) Init() tea.Cmd { return textinput.Blink }

func (d *DepthRange) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "tab", "shift+tab", "up", "down":
			d.inputs[d.focus].Blur()
			d.focus = 1 - d.focus
			return d, d.inputs[d.focus].Focus()
		case "ctrl+r":
			ext := d.extent
			return d, func() tea.Msg { return DepthRangeConfirmedMsg{Window: ext} }
		case "enter":
			w, err := d.parse()
			if err != nil {
				d.err = err.Error()
				return d, nil
			}
			return d, func() tea.Msg { return DepthRangeConfirmedMsg{Window: w} }
		case "esc":
			return d, cancel
		}
	}
	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return d, cmd
}

func (d *DepthRange) parse() (depthaxis.Window, error) {
	var vals [2]float64
	for i, in := range d.inputs {
		v, err := strconv.ParseFloat(strings.TrimSpace(in.Value()), 64)
		if err != nil {
			return depthaxis.Window{}, fmt.Errorf("%s is not a depth", strings.TrimSpace(strings.TrimSuffix(in.Prompt, ": ")))
		}
		vals[i] = v
	}
	if vals[0] >= vals[1] {
		return depthaxis.Window{}, fmt.Errorf("top (%g) must be above bottom (%g)", vals[0], vals[1])
	}
	w := depthaxis.Window{Start: vals[0], End: vals[1]}
	if d.extent.Span() > 0 {
		if w.End <= d.extent.Start || w.Start >= d.extent.End {
			return depthaxis.Window{}, fmt.Errorf("range is outside the log (%s)", d.extent)
		}
		w = w.Clamp(d.extent)
	}
	return w, nil
}

func (d DepthRange) Err() string { return d.err }

func (d DepthRange) View() string {
	if !d.visible {
		return ""
	}
	body := d.inputs[0].View() + "\n" + d.inputs[1].View()
	if d.extent.Span() > 0 {
		body += "\n\n" + hintStyle.Render("log covers "+d.extent.String())
	}
	return frame(44, "Depth range", body, d.err, "tab switch • enter apply • ctrl+r full log • esc cancel")
}

func (d *DepthRange) Show() {
	d.visible = true
	d.inputs[d.focus].Focus()
}

func (d *DepthRange) Hide() {
	d.visible = false
	d.inputs[d.focus].Blur()
}

func (d *DepthRange) Focus() tea.Cmd { return d.inputs[d.focus].Focus() }
func (d *DepthRange) Blur()          { d.inputs[d.focus].Blur() }
func (d DepthRange) IsVisible() bool { return d.visible }
