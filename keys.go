package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	CursorDown    key.Binding
	CursorUp      key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Top           key.Binding
	Bottom        key.Binding
	ZoomIn        key.Binding
	ZoomOut       key.Binding
	FullRange     key.Binding
	DepthRange    key.Binding
	Jump          key.Binding
	Find          key.Binding
	ScrollLeft    key.Binding
	ScrollRight   key.Binding
	FocusPrev     key.Binding
	FocusNext     key.Binding
	TrackMenu     key.Binding
	EditScale     key.Binding
	ToggleLith    key.Binding
	HideTrack     key.Binding
	ShowAll       key.Binding
	MoveLeft      key.Binding
	MoveRight     key.Binding
	GestureLatch  key.Binding
	Pick          key.Binding
	CopyReadout   key.Binding
	ShowResults   key.Binding
	SaveSession   key.Binding
	OpenSession   key.Binding
	OpenDataset   key.Binding
	Reload        key.Binding
	ExportPNG     key.Binding
	OpenHelp      key.Binding
	CancelGesture key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	CursorDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "cursor deeper"),
	),
	CursorUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "cursor shallower"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "pan up half a window"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "pan down half a window"),
	),
	Top: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "top of log"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "bottom of log"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in at cursor"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out at cursor"),
	),
	FullRange: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "show whole log"),
	),
	DepthRange: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "edit depth range"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to depth (:1200 or :1200-1300)"),
	),
	Find: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find track by name"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "scroll tracks left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "scroll tracks right"),
	),
	FocusPrev: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "focus previous track"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("l", "right", "tab"),
		key.WithHelp("l/→", "focus next track"),
	),
	TrackMenu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "track menu"),
	),
	EditScale: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit track scale"),
	),
	ToggleLith: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle lithology mode"),
	),
	HideTrack: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "hide track"),
	),
	ShowAll: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "show all tracks"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("<", ","),
		key.WithHelp("<", "move track left"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys(">", "."),
		key.WithHelp(">", "move track right"),
	),
	GestureLatch: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "latch pick gesture"),
	),
	Pick: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start / finish pick (latched)"),
	),
	CopyReadout: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy readout"),
	),
	ShowResults: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "last analysis"),
	),
	SaveSession: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save session"),
	),
	OpenSession: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open session"),
	),
	OpenDataset: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "open log data"),
	),
	Reload: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload log data"),
	),
	ExportPNG: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "export view as PNG"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	CancelGesture: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel pick"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.CursorDown,
		k.CursorUp,
		k.PageUp,
		k.PageDown,
		k.Top,
		k.Bottom,
		k.ZoomIn,
		k.ZoomOut,
		k.FullRange,
		k.DepthRange,
		k.Jump,
		k.Find,
		k.FocusPrev,
		k.FocusNext,
		k.ScrollLeft,
		k.ScrollRight,
		k.TrackMenu,
		k.EditScale,
		k.ToggleLith,
		k.HideTrack,
		k.ShowAll,
		k.MoveLeft,
		k.MoveRight,
		k.GestureLatch,
		k.Pick,
		k.CancelGesture,
		k.CopyReadout,
		k.ShowResults,
		k.SaveSession,
		k.OpenSession,
		k.OpenDataset,
		k.Reload,
		k.ExportPNG,
	}
}

func mouseLegend(g gestureKey) []string {
	return []string{
		"wheel          zoom at pointer (tracks or ruler)",
		g.String() + "+drag      pick a depth range",
		g.String() + "+click     pick a depth point",
		"drag header    reorder tracks",
		"double-click   edit scale or lithology (track), depth range (ruler)",
		"right-click    track menu",
	}
}
