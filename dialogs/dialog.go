// Package dialogs holds the modal editors. Dialogs never touch viewer state;
// they report results as messages through the returned tea.Cmd.
package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all dialogs (scale, depth range, path, etc.) implement.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
