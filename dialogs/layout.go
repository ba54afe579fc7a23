package dialogs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(lipgloss.Color("236")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

// CanceledMsg is sent by any dialog dismissed with esc.
type CanceledMsg struct{}

// cancel is a tea.Cmd.
func cancel() tea.Msg { return CanceledMsg{} }

// frame lays out a dialog body: title, content, optional error, key hint.
func frame(width int, title, body, errText, hint string) string {
	parts := []string{titleStyle.Render(title), "", body}
	if errText != "" {
		parts = append(parts, "", errorStyle.Render(errText))
	}
	if hint != "" {
		parts = append(parts, "", hintStyle.Render(hint))
	}
	return boxStyle.Width(width).Render(strings.Join(parts, "\n"))
}

func fmtDepth(f float64) string { return fmt.Sprintf("%.2f", f) }
