package dialogs

import (
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type LithologyConfirmedMsg struct {
	Track  string
	Config lithology.Config
}

// LithologyMap edits a track's class map as text, one class per line:
//
//	value color label
//	min max color label
type LithologyMap struct {
	track   string
	auto    lithology.Config
	area    textarea.Model
	err     string
	visible bool
}

// NewLithologyMapDialog opens the editor on current. auto is what ctrl+g
// regenerates from the data.
func NewLithologyMapDialog(track string, current, auto lithology.Config) *LithologyMap {
	ta := textarea.New()
	ta.Placeholder = "1 #ffd700 Sandstone\n0 25 #ffd700 Clean"
	ta.ShowLineNumbers = false
	ta.SetWidth(56)
	ta.SetHeight(12)
	ta.SetValue(lithology.Format(current))
	ta.Focus()
	return &LithologyMap{track: track, auto: auto, area: ta, visible: true}
}

func (d LithologyMap) Init() tea.Cmd { return textarea.Blink }

func (d *LithologyMap) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+s":
			cfg, err := lithology.Parse(d.area.Value())
			if err != nil {
				d.err = err.Error()
				return d, nil
			}
			track := d.track
			return d, func() tea.Msg { return LithologyConfirmedMsg{Track: track, Config: cfg} }
		case "ctrl+g":
			d.area.SetValue(lithology.Format(d.auto))
			d.err = ""
			return d, nil
		case "esc":
			return d, cancel
		}
	}
	var cmd tea.Cmd
	d.area, cmd = d.area.Update(msg)
	return d, cmd
}

func (d LithologyMap) Err() string { return d.err }

func (d LithologyMap) View() string {
	if !d.visible {
		return ""
	}
	return frame(62, "Lithology map: "+d.track, d.area.View(), d.err,
		"ctrl+s apply • ctrl+g regenerate from data • esc cancel\n# lines are comments; ranges are min ≤ v < max")
}

func (d *LithologyMap) Show() {
	d.visible = true
	d.area.Focus()
}

func (d *LithologyMap) Hide() {
	d.visible = false
	d.area.Blur()
}

func (d *LithologyMap) Focus() tea.Cmd { return d.area.Focus() }
func (d *LithologyMap) Blur()          { d.area.Blur() }
func (d LithologyMap) IsVisible() bool { return d.visible }
