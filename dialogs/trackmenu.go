package dialogs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type TrackAction int

const (
	ActionHide TrackAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionToggleLithology
	ActionEditLithology
	ActionEditScale
)

var trackActionLabels = map[TrackAction]string{
	ActionHide:            "Hide track",
	ActionMoveLeft:        "Move left",
	ActionMoveRight:       "Move right",
	ActionToggleLithology: "Toggle lithology mode",
	ActionEditLithology:   "Edit lithology map…",
	ActionEditScale:       "Edit scale…",
}

func (a TrackAction) String() string { return trackActionLabels[a] }

type TrackMenuChosenMsg struct {
	Track  string
	Action TrackAction
}

var (
	menuItemStyle     = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	menuSelectedStyle = menuItemStyle.Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#b7e4c7"))
	menuUp            = key.NewBinding(key.WithKeys("up", "k"))
	menuDown          = key.NewBinding(key.WithKeys("down", "j"))
	menuPick          = key.NewBinding(key.WithKeys("enter", " "))
)

// TrackMenu is the per-track context menu.
type TrackMenu struct {
	track   string
	items   []TrackAction
	cursor  int
	visible bool
}

// NewTrackMenu lists the actions for track; the lithology editor entry only
// appears when the track is in lithology mode.
func NewTrackMenu(track string, lithologyMode bool) *TrackMenu {
	items := []TrackAction{ActionHide, ActionMoveLeft, ActionMoveRight, ActionToggleLithology}
	if lithologyMode {
		items = append(items, ActionEditLithology)
	} else {
		items = append(items, ActionEditScale)
	}
	return &TrackMenu{track: track, items: items, visible: true}
}

func (d TrackMenu) Init() tea.Cmd { return nil }

func (d TrackMenu) Items() []TrackAction { return d.items }

func (d *TrackMenu) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(m, menuUp):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(m, menuDown):
			if d.cursor < len(d.items)-1 {
				d.cursor++
			}
		case key.Matches(m, menuPick):
			return d, d.choose(d.cursor)
		case m.String() == "esc":
			return d, cancel
		}
	case ItemClickMsg:
		if m.Index >= 0 && m.Index < len(d.items) {
			return d, d.choose(m.Index)
		}
	}
	return d, nil
}

// ItemClickMsg selects a menu row by index (mouse click inside the menu).
type ItemClickMsg struct{ Index int }

func (d *TrackMenu) choose(i int) tea.Cmd {
	msg := TrackMenuChosenMsg{Track: d.track, Action: d.items[i]}
	return func() tea.Msg { return msg }
}

func (d TrackMenu) View() string {
	if !d.visible {
		return ""
	}
	lines := make([]string, 0, len(d.items)+1)
	lines = append(lines, titleStyle.Render(d.track))
	for i, it := range d.items {
		style := menuItemStyle
		if i == d.cursor {
			style = menuSelectedStyle
		}
		lines = append(lines, style.Width(26).Render(it.String()))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		Render(strings.Join(lines, "\n"))
}

func (d *TrackMenu) Show()          { d.visible = true }
func (d *TrackMenu) Hide()          { d.visible = false }
func (d *TrackMenu) Focus() tea.Cmd { return nil }
func (d *TrackMenu) Blur()          {}
func (d TrackMenu) IsVisible() bool { return d.visible }
