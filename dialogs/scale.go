package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-welllog/welllog"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	ScaleConfirmedMsg struct {
		Track string
		Scale welllog.Scale
	}
	// ScaleResetMsg drops the user override for Track.
	ScaleResetMsg struct{ Track string }
)

// Scale edits a track's min/max. Min >= max is refused in the dialog.
type Scale struct {
	track   string
	inputs  [2]textinput.Model
	focus   int
	err     string
	visible bool
}

func NewScaleDialog(track string, current welllog.Scale) *Scale {
	d := &Scale{track: track, visible: true}
	for i, v := range []float64{current.Min, current.Max} {
		ti := textinput.New()
		ti.Prompt = [2]string{"min: ", "max: "}[i]
		ti.CharLimit = 24
		ti.Width = 20
		ti.SetValue(strconv.FormatFloat(v, 'g', -1, 64))
		d.inputs[i] = ti
	}
	d.inputs[0].Focus()
	return d
}

func (d Scale) Init() tea.Cmd { return textinput.Blink }

func (d *Scale) Update(msg tea.Msg) (Dialog, tea.Cmd) {
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
			track := d.track
			return d, func() tea.Msg { return ScaleResetMsg{Track: track} }
		case "enter":
			s, err := d.parse()
			if err != nil {
				d.err = err.Error()
				return d, nil
			}
			track := d.track
			return d, func() tea.Msg { return ScaleConfirmedMsg{Track: track, Scale: s} }
		case "esc":
			return d, cancel
		}
	}
	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return d, cmd
}

func (d *Scale) parse() (welllog.Scale, error) {
	var vals [2]float64
	for i, in := range d.inputs {
		v, err := strconv.ParseFloat(strings.TrimSpace(in.Value()), 64)
		if err != nil {
			return welllog.Scale{}, fmt.Errorf("%s is not a number", strings.TrimSuffix(in.Prompt, ": "))
		}
		vals[i] = v
	}
	s := welllog.Scale{Min: vals[0], Max: vals[1]}
	return s, s.Validate()
}

// Err is the inline validation message, empty when the input is accepted.
func (d Scale) Err() string { return d.err }

func (d Scale) View() string {
	if !d.visible {
		return ""
	}
	body := d.inputs[0].View() + "\n" + d.inputs[1].View()
	return frame(40, "Scale: "+d.track, body, d.err, "tab switch • enter apply • ctrl+r reset • esc cancel")
}

func (d *Scale) Show() {
	d.visible = true
	d.inputs[d.focus].Focus()
}

func (d *Scale) Hide() {
	d.visible = false
	d.inputs[d.focus].Blur()
}

func (d *Scale) Focus() tea.Cmd { return d.inputs[d.focus].Focus() }
func (d *Scale) Blur()          { d.inputs[d.focus].Blur() }
func (d Scale) IsVisible() bool { return d.visible }
