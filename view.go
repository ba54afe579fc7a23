package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-welllog/dialogs"
	"github.com/andareed/siftly-welllog/logging"
	"github.com/andareed/siftly-welllog/track"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// geometry lays out the ruler and the visible track columns for the
// current terminal size.
func (m *model) geometry() geometry {
	g := geometry{
		width:      m.terminalWidth,
		height:     m.terminalHeight,
		bodyTop:    headerRows,
		bodyHeight: max(m.terminalHeight-headerRows-footerRows, 0),
	}
	vis := m.visibleTracks()
	if m.ui.trackOffset >= len(vis) {
		return g
	}
	cols := make([]trackColumn, 0, len(vis))
	for _, name := range vis[m.ui.trackOffset:] {
		role := RoleCurve
		if p, ok := m.panes[name]; ok {
			role = roleFor(p.Config.Mode)
		}
		cols = append(cols, trackColumn{
			Name:     name,
			Role:     role,
			MinWidth: defaultMinWidthForRole(role),
			Weight:   defaultWeightForRole(role),
		})
	}
	avail := m.terminalWidth - rulerWidth
	g.cols = layoutColumns(fitColumns(cols, avail), avail, rulerWidth)
	return g
}

// overlayFor maps the crosshair and the live or pending pick to body rows.
func (m *model) overlayFor(height int) track.Overlay {
	ov := track.NoOverlay()
	ov.CursorRow = m.cursorRow(height)

	top, bottom, ok := m.sel.Span()
	if !ok {
		if n, isNote := m.activeDialog.(*dialogs.Note); isNote && m.dialogOpen() {
			s := n.Selection()
			top, bottom, ok = s.Start, s.End, true
		}
	}
	if !ok {
		return ov
	}
	w := m.data.window
	if bottom < w.Start || top > w.End {
		return ov
	}
	ov.SelTop = max(m.depthRow(max(top, w.Start), height), 0)
	ov.SelBottom = m.depthRow(min(bottom, w.End), height)
	if ov.SelBottom < 0 {
		ov.SelBottom = height - 1
	}
	return ov
}

func (m *model) headerView(g geometry) string {
	parts := []string{rulerHeaderStyle.Render(padRight("DEPTH", rulerWidth) + "\n" + padRight(m.depthUnit(), rulerWidth))}
	sep := separatorStyle.Render(separator + "\n" + separator)
	focused := m.focusedTrack()
	for _, c := range g.cols {
		p := m.panes[c.Name]
		dragging := m.ui.drag != nil && (m.ui.drag.from == c.Name || m.ui.drag.over == c.Name)
		parts = append(parts, sep, p.Header(c.Width, c.Name == focused, dragging))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *model) depthUnit() string {
	if m.data.ds == nil {
		return ""
	}
	for _, name := range []string{"DEPT", "DEPTH", "MD"} {
		if u := m.data.ds.Unit(name); u != "" {
			return "(" + u + ")"
		}
	}
	return ""
}

func (m *model) bodyView(g geometry) string {
	h := g.bodyHeight
	if h <= 0 {
		return ""
	}
	ov := m.overlayFor(h)
	sep := separatorStyle.Render(strings.TrimSuffix(strings.Repeat(separator+"\n", h), "\n"))
	parts := []string{m.ruler.View(h, ov.CursorRow)}
	for _, c := range g.cols {
		parts = append(parts, sep, m.panes[c.Name].View(m.data.ds, c.Width, h, ov))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// readout is the crosshair depth followed by each drawn track's value.
func (m *model) readout() string {
	if !m.data.loaded() || m.sel.Cursor == nil {
		return ""
	}
	d := m.sel.Cursor.Depth
	parts := []string{fmt.Sprintf("%.2f", d)}
	for _, name := range m.visibleTracks() {
		parts = append(parts, m.panes[name].Hover(m.data.ds, d))
	}
	return strings.Join(parts, " · ")
}

func (m *model) pickLabel() string {
	switch {
	case m.sel.Armed():
		return "armed"
	case m.ui.gestureLatched:
		return "latched"
	default:
		return m.gesture.String()
	}
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	styles := DefaultFooterStyles()

	st := FooterState{
		Mode:     commandLabel(CmdNone),
		FileName: filepath.Base(m.data.path),
		Legend:   "(? help · wheel zoom · " + m.gesture.String() + "+drag pick · m menu)",
	}
	if m.data.path == "" {
		st.FileName = ""
	}
	if m.ui.mode == modeCommand {
		st.Mode = commandLabel(m.ui.command.cmd)
		st.ModeInput = m.activeCommandLine()
	} else if m.sel.Armed() || m.ui.gestureLatched {
		st.Mode = "PICK"
	}
	if m.data.loaded() {
		st.WindowLabel = m.data.window.String()
		st.PickLabel = m.pickLabel()
		if d, ok := m.cursorDepth(); ok {
			st.Depth = fmt.Sprintf("%.2f", d)
		}
	}
	switch {
	case m.ui.noticeMsg != "":
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	case m.ui.analysisBusy:
		st.StatusMessage = "analysis running…"
	default:
		st.StatusMessage = m.readout()
	}

	if logging.IsDebugMode() {
		g := m.geometry()
		debug := fmt.Sprintf(" dbg term=%dx%d body=%d cols=%d off=%d focus=%d sync=%d",
			m.terminalWidth, m.terminalHeight, g.bodyHeight, len(g.cols), m.ui.trackOffset, m.ui.focus, m.ruler.State())
		st.Legend = st.Legend + " |" + debug
	}

	return RenderFooter(width, st, styles)
}

func (m *model) emptyView(g geometry) string {
	text := "No log data loaded. Press O to open a .json or .csv file."
	switch {
	case m.data.loaded() && len(m.data.order) == 0:
		text = "No curves in " + filepath.Base(m.data.path) + "."
	case m.data.loaded():
		text = "All tracks are hidden. Press X to show them."
	}
	return lipgloss.Place(g.width, g.bodyTop+g.bodyHeight, lipgloss.Center, lipgloss.Center, emptyStyle.Render(text))
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	g := m.geometry()

	var screen string
	if !m.data.loaded() || len(g.cols) == 0 {
		screen = m.emptyView(g)
	} else {
		screen = lipgloss.JoinVertical(lipgloss.Left, m.headerView(g), m.bodyView(g))
	}
	screen = lipgloss.JoinVertical(lipgloss.Left, screen, m.footerView(g.width))

	if !m.dialogOpen() {
		return screen
	}
	if m.ui.anchored {
		return m.overlayPopup(screen, m.activeDialog.View())
	}
	return lipgloss.Place(
		m.terminalWidth, m.terminalHeight,
		lipgloss.Center, lipgloss.Center,
		m.activeDialog.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(dialogBackdropBG)),
	)
}

// popupOrigin places a popup at the anchor cell, shifted back inside the
// screen when it would overflow.
func (m *model) popupOrigin(popup string) (int, int) {
	w, h := lipgloss.Width(popup), lipgloss.Height(popup)
	x, y := m.ui.anchorX+1, m.ui.anchorY+1
	if x+w > m.terminalWidth {
		x = max(m.terminalWidth-w, 0)
	}
	if y+h > m.terminalHeight {
		y = max(m.terminalHeight-h, 0)
	}
	return x, y
}

func (m *model) overlayPopup(screen, popup string) string {
	x, y := m.popupOrigin(popup)
	bg := strings.Split(screen, "\n")
	overlayAt(bg, strings.Split(popup, "\n"), m.terminalWidth, x, y, lipgloss.Width(popup))
	return strings.Join(bg, "\n")
}

// overlayAt writes fgLines over bgLines at cell (x, y), keeping the
// background on either side.
func overlayAt(bgLines []string, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := xansi.Cut(bgLine, 0, x)
		if n := xansi.StringWidth(left); n < x {
			left += strings.Repeat(" ", x-n)
		}
		right := xansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}

		bgLines[y+i] = left + fgLine + right
	}
}
