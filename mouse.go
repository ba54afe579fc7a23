package main

import (
	"time"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/dialogs"
	"github.com/andareed/siftly-welllog/logging"
	"github.com/andareed/siftly-welllog/selection"
	tea "github.com/charmbracelet/bubbletea"
)

// doubleClickThreshold is the longest gap between two clicks on the same
// target that still counts as a double-click.
const doubleClickThreshold = 400 * time.Millisecond

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.dialogOpen() {
		return m.handleDialogMouse(msg)
	}
	if !m.data.loaded() {
		return nil
	}

	m.sel.SetModifier(m.ui.gestureLatched || m.gesture.held(msg))

	g := m.geometry()
	region, name := g.hit(msg.X, msg.Y)
	inPlot := region == regionBody || region == regionRuler
	row, _ := g.bodyRow(msg.Y)

	// Header drag in progress: motion tracks the target, release drops.
	if m.ui.drag != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			if region == regionHeader || region == regionBody {
				m.ui.drag.over = name
			}
		case tea.MouseActionRelease:
			d := m.ui.drag
			m.ui.drag = nil
			if d.over != "" && d.over != d.from {
				logging.Debugf("header drop %s onto %s", d.from, d.over)
				m.reorderTracks(d.from, d.over)
				m.ensureFocusVisible()
			}
		}
		return nil
	}

	if msg.Action == tea.MouseActionMotion {
		if !inPlot {
			m.sel.Leave()
			return nil
		}
		if p, ok := m.pointAt(msg.X, row, g.bodyHeight); ok {
			m.sel.Move(p)
		}
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		zoomIn := msg.Button == tea.MouseButtonWheelUp
		switch region {
		case regionRuler:
			m.ruler.Wheel(zoomIn, row, g.bodyHeight)
		case regionBody:
			if p, ok := m.panes[name]; ok {
				p.Wheel(zoomIn, row, g.bodyHeight)
			}
		}
		return nil

	case tea.MouseButtonLeft:
		switch region {
		case regionHeader:
			if msg.Action == tea.MouseActionPress {
				m.focusTrack(name)
				m.ui.drag = &headerDrag{from: name, over: name}
			}
			return nil
		case regionRuler, regionBody:
			return m.handlePlotButton(msg, region, name, row, g.bodyHeight)
		}

	case tea.MouseButtonRight:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		if region == regionHeader || region == regionBody {
			return m.openTrackMenu(name, msg.X, msg.Y)
		}

	case tea.MouseButtonNone:
		// some terminals report the left release without a button
		if msg.Action == tea.MouseActionRelease && inPlot {
			return m.handlePlotButton(msg, region, name, row, g.bodyHeight)
		}
	}
	return nil
}

func (m *model) handlePlotButton(msg tea.MouseMsg, region hitRegion, name string, row, height int) tea.Cmd {
	p, ok := m.pointAt(msg.X, row, height)
	if !ok {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if name != "" {
			m.focusTrack(name)
		}
		if m.sel.Press(p) {
			return nil
		}
		return m.registerClick(region, name)
	case tea.MouseActionRelease:
		if !m.sel.ModifierHeld {
			m.sel.Cancel()
			return nil
		}
		sel, ok := m.sel.Release(p)
		if !ok {
			return nil
		}
		return m.openNote(sel)
	}
	return nil
}

// registerClick opens the region's editor on the second click of a
// double-click.
func (m *model) registerClick(region hitRegion, name string) tea.Cmd {
	now := m.now()
	last := m.ui.lastClick
	m.ui.lastClick = click{at: now, region: region, track: name}
	if last.region != region || last.track != name || now.Sub(last.at) > doubleClickThreshold {
		return nil
	}
	// no triple-click
	m.ui.lastClick = click{}
	if region == regionRuler {
		return m.openDepthRangeDialog()
	}
	if m.data.lithoTracks[name] {
		return m.openLithologyDialog(name)
	}
	return m.openScaleDialog(name)
}

// pointAt converts a body row to a selection point.
func (m *model) pointAt(x, row, height int) (selection.Point, bool) {
	d, ok := depthaxis.PixelToDepth(float64(row)+0.5, 0, float64(height), m.data.window)
	if !ok {
		return selection.Point{}, false
	}
	return selection.Point{Col: x, Row: row, Depth: d}, true
}

// handleDialogMouse routes clicks to the track menu; a click elsewhere
// closes an anchored popup that is not holding typed text.
func (m *model) handleDialogMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	menu, ok := m.activeDialog.(*dialogs.TrackMenu)
	if !ok {
		return nil
	}
	if !m.ui.menuBox.contains(msg.X, msg.Y) {
		m.closeDialog()
		return nil
	}
	// border and title rows sit above the first item
	idx := msg.Y - m.ui.menuBox.y - 2
	var cmd tea.Cmd
	m.activeDialog, cmd = menu.Update(dialogs.ItemClickMsg{Index: idx})
	return cmd
}
