package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// parseDepthTarget reads "1234.5" (a depth to centre on) or "1200-1300"
// (a window).
func parseDepthTarget(s string) (depth float64, w depthaxis.Window, isRange bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, w, false, fmt.Errorf("empty depth")
	}
	// skip a leading sign when looking for the range dash
	if i := strings.Index(s[1:], "-"); i >= 0 {
		a, errA := strconv.ParseFloat(strings.TrimSpace(s[:i+1]), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(s[i+2:]), 64)
		if errA != nil || errB != nil {
			return 0, w, false, fmt.Errorf("invalid range %q", s)
		}
		if a >= b {
			return 0, w, false, fmt.Errorf("range top must be above bottom")
		}
		return 0, depthaxis.Window{Start: a, End: b}, true, nil
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, w, false, fmt.Errorf("invalid depth %q", s)
	}
	return d, w, false, nil
}

func (m *model) jumpToDepthText(s string) tea.Cmd {
	if !m.data.loaded() {
		return m.startNotice("No log data loaded", "warn", noticeDuration)
	}
	d, w, isRange, err := parseDepthTarget(s)
	if err != nil {
		return m.startNotice(err.Error(), "warn", noticeDuration)
	}
	if isRange {
		m.setWindow(w)
		return nil
	}
	return m.jumpToDepth(d)
}

func (m *model) jumpToDepth(d float64) tea.Cmd {
	logging.Debugf("jumpToDepth %.2f", d)
	ext := m.data.extent
	if d < ext.Start || d > ext.End {
		return m.startNotice(fmt.Sprintf("Depth %.2f outside log (%s)", d, ext), "warn", noticeDuration)
	}
	m.setWindow(m.data.window.CenterOn(d, ext))
	m.setCursorDepth(d)
	return nil
}

func (m *model) jumpToTop() {
	m.setWindow(m.data.window.Pan(m.data.extent.Start-m.data.window.Start, m.data.extent))
}

func (m *model) jumpToBottom() {
	m.setWindow(m.data.window.Pan(m.data.extent.End-m.data.window.End, m.data.extent))
}
