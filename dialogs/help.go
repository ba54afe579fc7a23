package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Help is a visible flag + a list of key bindings to show.
type Help struct {
	visible  bool
	bindings []key.Binding
	mouse    []string
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a help dialog listing bindings, then the mouse
// gestures as plain lines.
func NewHelpDialog(bindings []key.Binding, mouse []string) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
		mouse:    mouse,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, cancel
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	var lines []string
	for _, b := range d.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	if len(d.mouse) > 0 {
		lines = append(lines, "", titleStyle.Render("Mouse"))
		lines = append(lines, d.mouse...)
	}
	return frame(64, "Keys", strings.Join(lines, "\n"), "", "enter/esc to return")
}

func (d *Help) Show() {
	d.visible = true
}

func (d *Help) Hide() {
	d.visible = false
}

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
