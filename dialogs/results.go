package dialogs

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-welllog/analysis"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	agentStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7fdbca"))
	finalStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c542"))
	decisionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#f5c542")).Padding(0, 1)
)

// Results shows an analysis response in a scrollable drawer.
type Results struct {
	title   string
	resp    *analysis.Response
	vp      viewport.Model
	width   int
	visible bool
}

func NewResultsDialog(title string, resp *analysis.Response, width, height int) *Results {
	if width < 30 {
		width = 30
	}
	if height < 6 {
		height = 6
	}
	d := &Results{title: title, resp: resp, width: width, visible: true}
	d.vp = viewport.New(width-6, height-8)
	d.vp.SetContent(d.render(width - 6))
	return d
}

func (d *Results) render(wrap int) string {
	if d.resp == nil || (len(d.resp.Messages) == 0 && d.resp.FinalDecision == nil) {
		return hintStyle.Render("The service returned no findings.")
	}
	var b strings.Builder
	if fd := d.resp.FinalDecision; fd != nil {
		b.WriteString(decisionStyle.Render(fmt.Sprintf("%s  %.0f%%  %s", fd.Decision, fd.Confidence*100, fd.DepthRange)))
		b.WriteString("\n\n")
	}
	for _, msg := range d.resp.Messages {
		head := agentStyle
		if msg.IsFinal {
			head = finalStyle
		}
		b.WriteString(head.Render(fmt.Sprintf("%s (%.2f)", msg.Agent, msg.Confidence)))
		b.WriteString("\n")
		b.WriteString(wordwrap.String(msg.Content, wrap))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d Results) Init() tea.Cmd { return nil }

func (d *Results) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "esc", "q", "enter":
			d.visible = false
			return d, cancel
		}
	}
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd
}

func (d Results) View() string {
	if !d.visible {
		return ""
	}
	hint := fmt.Sprintf("↑/↓ scroll • esc close • %3.0f%%", d.vp.ScrollPercent()*100)
	return frame(d.width, d.title, d.vp.View(), "", hint)
}

func (d *Results) Show()          { d.visible = true }
func (d *Results) Hide()          { d.visible = false }
func (d *Results) Focus() tea.Cmd { return nil }
func (d *Results) Blur()          {}
func (d Results) IsVisible() bool { return d.visible }
