package dialogs

import (
	"strings"

	"github.com/andareed/siftly-welllog/selection"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// NoteConfirmedMsg carries a finished pick and the user's focus note to the
// analysis request.
type NoteConfirmedMsg struct {
	Selection selection.Selection
	Note      string
}

// Note is the popup opened when a pick is finalized.
type Note struct {
	sel     selection.Selection
	area    textarea.Model
	visible bool
}

func NewNoteDialog(sel selection.Selection) *Note {
	ta := textarea.New()
	ta.Placeholder = "What should the analysis focus on? (optional)"
	ta.ShowLineNumbers = false
	ta.SetWidth(40)
	ta.SetHeight(3)
	ta.Focus()
	return &Note{sel: sel, area: ta, visible: true}
}

func (d Note) Init() tea.Cmd { return textarea.Blink }

// Selection is the pick this popup was opened for.
func (d Note) Selection() selection.Selection { return d.sel }

func (d *Note) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+s", "alt+enter":
			sel := d.sel
			note := strings.TrimSpace(d.area.Value())
			return d, func() tea.Msg { return NoteConfirmedMsg{Selection: sel, Note: note} }
		case "esc":
			return d, cancel
		}
	}
	var cmd tea.Cmd
	d.area, cmd = d.area.Update(msg)
	return d, cmd
}

func (d Note) View() string {
	if !d.visible {
		return ""
	}
	title := "Analyze " + d.sel.Kind.String() + " " + d.sel.String()
	return frame(46, title, d.area.View(), "", "ctrl+s analyze • esc discard")
}

func (d *Note) Show() {
	d.visible = true
	d.area.Focus()
}

func (d *Note) Hide() {
	d.visible = false
	d.area.Blur()
}

func (d *Note) Focus() tea.Cmd { return d.area.Focus() }
func (d *Note) Blur()          { d.area.Blur() }
func (d Note) IsVisible() bool { return d.visible }
