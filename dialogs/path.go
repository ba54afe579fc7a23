package dialogs

import (
	"path/filepath"

	"github.com/andareed/siftly-welllog/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Purpose says what a confirmed path is for.
type Purpose int

const (
	PurposeSaveSession Purpose = iota
	PurposeOpenSession
	PurposeExportPNG
	PurposeOpenDataset
)

func (p Purpose) title() (string, string) {
	switch p {
	case PurposeOpenSession:
		return "Open session", "Open: "
	case PurposeExportPNG:
		return "Export view as PNG", "Export as: "
	case PurposeOpenDataset:
		return "Open log data (.json / .csv)", "Open: "
	default:
		return "Save session", "Save as: "
	}
}

type PathConfirmedMsg struct {
	Purpose Purpose
	Path    string
}

// Path is a single-line file path prompt.
type Path struct {
	purpose Purpose
	input   textinput.Model
	visible bool
	// relative names land here
	lastDir string
}

func (d Path) Init() tea.Cmd { return d.input.Focus() }

func NewPathDialog(purpose Purpose, defaultName, lastDir string) *Path {
	_, prompt := purpose.title()
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Path{purpose: purpose, input: ti, visible: true, lastDir: lastDir}
}

func (d *Path) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := d.input.Value()
			if val == "" {
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			path := val
			if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
				path = filepath.Join(d.lastDir, filepath.Base(path))
			}
			logging.Debugf("PathDialog: confirmed %q", path)
			purpose := d.purpose
			return d, func() tea.Msg { return PathConfirmedMsg{Purpose: purpose, Path: path} }
		case "esc":
			return d, cancel
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Path) View() string {
	if !d.visible {
		return ""
	}
	title, _ := d.purpose.title()
	return frame(60, title, d.input.View(), "", "enter to confirm • esc to cancel")
}

func (d *Path) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Path) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Path) Focus() tea.Cmd { return d.input.Focus() }
func (d *Path) Blur()          { d.input.Blur() }
func (d Path) IsVisible() bool { return d.visible }
