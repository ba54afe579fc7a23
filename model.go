package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/andareed/siftly-welllog/analysis"
	"github.com/andareed/siftly-welllog/clipboard"
	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/dialogs"
	"github.com/andareed/siftly-welllog/logging"
	"github.com/andareed/siftly-welllog/selection"
	"github.com/andareed/siftly-welllog/session"
	"github.com/andareed/siftly-welllog/track"
	"github.com/andareed/siftly-welllog/welllog"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	data dataState
	ui   uiState
	cfg  Config
	keys Keymap

	ruler         *depthaxis.Ruler
	panes         map[string]*track.Pane
	sel           *selection.Machine
	gesture       gestureKey
	trackDefaults map[string]welllog.TrackConfig

	analyzer      analysis.Requester
	store         session.Store
	lastAnalysis  *analysis.Response
	lastSelection selection.Selection

	activeDialog dialogs.Dialog

	// InitialPath is the dataset given on the command line.
	InitialPath string
	sessionPath string

	terminalWidth  int
	terminalHeight int
	ready          bool
	now            func() time.Time
}

type (
	datasetLoadedMsg struct {
		ds   *welllog.Dataset
		path string
		err  error
	}
	analysisDoneMsg struct {
		sel  selection.Selection
		resp *analysis.Response
		err  error
	}
	clipboardDoneMsg struct {
		what string
		err  error
	}
)

func newModel(cfg Config, analyzer analysis.Requester, store session.Store) *model {
	g, _ := parseGestureKey(cfg.GestureKey)
	if analyzer == nil {
		analyzer = analysis.Nop{}
	}
	m := &model{
		data:          newDataState(),
		cfg:           cfg,
		keys:          Keys,
		ruler:         depthaxis.NewRuler(rulerWidth),
		panes:         map[string]*track.Pane{},
		sel:           selection.New(cfg.PointThreshold),
		gesture:       g,
		trackDefaults: cfg.trackDefaults(),
		analyzer:      analyzer,
		store:         store,
		now:           time.Now,
	}
	m.ruler.OnZoom = m.onZoom
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("%s: initialised", appName)
	var cmds []tea.Cmd
	if m.InitialPath != "" {
		cmds = append(cmds, loadDatasetCmd(m.InitialPath))
	}
	if m.sessionPath != "" {
		cmds = append(cmds, loadSessionCmd(session.FileStore{Path: m.sessionPath}))
	}
	return tea.Batch(cmds...)
}

func loadDatasetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := welllog.LoadFile(path)
		return datasetLoadedMsg{ds: ds, path: path, err: err}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.ensureFocusVisible()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case datasetLoadedMsg:
		return m, m.handleDatasetLoaded(msg)

	case dialogs.CanceledMsg:
		m.closeDialog()
		return m, nil

	case dialogs.ScaleConfirmedMsg:
		m.closeDialog()
		m.setScale(msg.Track, msg.Scale)
		return m, m.startNotice(fmt.Sprintf("%s scale %g … %g", msg.Track, msg.Scale.Min, msg.Scale.Max), "success", noticeDuration)

	case dialogs.ScaleResetMsg:
		m.closeDialog()
		m.resetScale(msg.Track)
		return m, m.startNotice(msg.Track+" scale reset", "info", noticeDuration)

	case dialogs.DepthRangeConfirmedMsg:
		m.closeDialog()
		m.setWindow(msg.Window)
		return m, nil

	case dialogs.LithologyConfirmedMsg:
		m.closeDialog()
		m.setLithologyConfig(msg.Track, msg.Config)
		return m, m.startNotice(msg.Track+" lithology map updated", "success", noticeDuration)

	case dialogs.NoteConfirmedMsg:
		m.closeDialog()
		return m, m.analyzeCmd(msg.Selection, msg.Note)

	case dialogs.TrackMenuChosenMsg:
		m.closeDialog()
		return m, m.handleTrackAction(msg.Track, msg.Action)

	case dialogs.PathConfirmedMsg:
		m.closeDialog()
		return m, m.handlePathConfirmed(msg)

	case analysisDoneMsg:
		return m, m.handleAnalysisDone(msg)

	case sessionSavedMsg:
		return m, m.handleSessionSaved(msg)

	case sessionLoadedMsg:
		return m, m.handleSessionLoaded(msg)

	case exportDoneMsg:
		return m, m.handleExportDone(msg)

	case clipboardDoneMsg:
		if msg.err != nil {
			return m, m.startNotice("Copy failed: "+msg.err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("Copied "+msg.what, "success", noticeDuration)

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	}

	// cursor blink and friends
	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleDatasetLoaded(msg datasetLoadedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("load %s: %v", msg.path, msg.err)
		return m.startNotice(fmt.Sprintf("Load failed: %v", msg.err), "error", noticeDuration)
	}
	m.setDataset(msg.ds, msg.path)
	if !msg.ds.Valid() {
		return m.startNotice(filepath.Base(msg.path)+": no usable log data", "warn", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Loaded %s (%d curves)", filepath.Base(msg.path), len(msg.ds.Names)), "success", noticeDuration)
}

// region Dialogs

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	m.ui.anchored = false
	d.Show()
	return tea.Batch(d.Init(), d.Focus())
}

// openAnchored shows d as a popup at terminal cell (x, y).
func (m *model) openAnchored(d dialogs.Dialog, x, y int) tea.Cmd {
	cmd := m.openDialog(d)
	m.ui.anchored = true
	m.ui.anchorX, m.ui.anchorY = x, y
	view := d.View()
	px, py := m.popupOrigin(view)
	m.ui.menuBox = box{x: px, y: py, w: lipgloss.Width(view), h: lipgloss.Height(view)}
	return cmd
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Blur()
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.anchored = false
	m.ui.menuBox = box{}
}

func (m *model) dialogOpen() bool {
	return m.activeDialog != nil && m.activeDialog.IsVisible()
}

func (m *model) openScaleDialog(name string) tea.Cmd {
	if name == "" {
		return nil
	}
	return m.openDialog(dialogs.NewScaleDialog(name, m.effectiveScale(name)))
}

func (m *model) openDepthRangeDialog() tea.Cmd {
	if !m.data.loaded() {
		return m.startNotice("No log data loaded", "warn", noticeDuration)
	}
	return m.openDialog(dialogs.NewDepthRangeDialog(m.data.window, m.data.extent))
}

func (m *model) openTrackMenu(name string, x, y int) tea.Cmd {
	if name == "" {
		return nil
	}
	m.focusTrack(name)
	return m.openAnchored(dialogs.NewTrackMenu(name, m.data.lithoTracks[name]), x, y)
}

func (m *model) openLithologyDialog(name string) tea.Cmd {
	return m.openDialog(dialogs.NewLithologyMapDialog(name, m.data.lithoConfigs[name], m.autoLithology(name)))
}

// openNote shows the focus-note popup for a finished pick near the pointer.
func (m *model) openNote(sel selection.Selection) tea.Cmd {
	logging.Debugf("pick finalized: %s %s", sel.Kind, sel)
	m.lastSelection = sel
	x, y := sel.At.Col, sel.At.Row+headerRows
	if x < 0 {
		x = rulerWidth + 1
	}
	return m.openAnchored(dialogs.NewNoteDialog(sel), x, y)
}

func (m *model) handleTrackAction(name string, action dialogs.TrackAction) tea.Cmd {
	switch action {
	case dialogs.ActionHide:
		if err := m.hideTrack(name); err != nil {
			return m.startNotice(err.Error(), "warn", noticeDuration)
		}
		return m.startNotice(name+" hidden (X shows all)", "info", noticeDuration)
	case dialogs.ActionMoveLeft:
		m.moveTrack(name, -1)
	case dialogs.ActionMoveRight:
		m.moveTrack(name, 1)
	case dialogs.ActionToggleLithology:
		if m.toggleLithology(name) {
			return m.startNotice(name+" shown as lithology", "info", noticeDuration)
		}
		return m.startNotice(name+" shown as curve", "info", noticeDuration)
	case dialogs.ActionEditLithology:
		return m.openLithologyDialog(name)
	case dialogs.ActionEditScale:
		return m.openScaleDialog(name)
	}
	m.ensureFocusVisible()
	return nil
}

func (m *model) handlePathConfirmed(msg dialogs.PathConfirmedMsg) tea.Cmd {
	switch msg.Purpose {
	case dialogs.PurposeSaveSession:
		m.sessionPath = msg.Path
		m.store = session.FileStore{Path: msg.Path}
		return saveSessionCmd(m.store, m.snapshot())
	case dialogs.PurposeOpenSession:
		m.sessionPath = msg.Path
		return loadSessionCmd(session.FileStore{Path: msg.Path})
	case dialogs.PurposeOpenDataset:
		return loadDatasetCmd(msg.Path)
	case dialogs.PurposeExportPNG:
		return exportPNGCmd(m.exportJob(msg.Path))
	}
	return nil
}

// endregion

// region Analysis

func (m *model) analyzeCmd(sel selection.Selection, note string) tea.Cmd {
	req := analysis.Request{
		StartDepth: sel.Start,
		EndDepth:   sel.End,
		FocusNote:  strings.TrimSpace(note),
		SessionID:  m.sessionID(),
	}
	requester := m.analyzer
	m.ui.analysisBusy = true
	logging.Infof("analysis requested for %s", sel)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), analysis.DefaultTimeout)
		defer cancel()
		resp, err := requester.Analyze(ctx, req)
		return analysisDoneMsg{sel: sel, resp: resp, err: err}
	}
}

func (m *model) sessionID() string {
	if m.data.path == "" {
		return ""
	}
	base := filepath.Base(m.data.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (m *model) handleAnalysisDone(msg analysisDoneMsg) tea.Cmd {
	m.ui.analysisBusy = false
	if msg.err != nil {
		logging.Errorf("analysis %s: %v", msg.sel, msg.err)
		return m.startNotice(fmt.Sprintf("Analysis failed: %v", msg.err), "error", noticeDuration)
	}
	m.lastAnalysis = msg.resp
	m.lastSelection = msg.sel
	summary := msg.resp.Summary()
	if summary == "" || len(msg.resp.Messages) == 0 {
		return m.startNotice("Analysis sent for "+msg.sel.String(), "success", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("%s: %s (a for details)", msg.sel, summary), "success", 2*noticeDuration)
}

func (m *model) showResults() tea.Cmd {
	if m.lastAnalysis == nil {
		return m.startNotice("No analysis yet", "info", noticeDuration)
	}
	title := "Analysis " + m.lastSelection.String()
	return m.openDialog(dialogs.NewResultsDialog(title, m.lastAnalysis, m.terminalWidth-8, m.terminalHeight-6))
}

// endregion

// region Keys

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialogOpen() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(k.Legend(), mouseLegend(m.gesture)))
	case key.Matches(msg, k.OpenDataset):
		return m, m.openDialog(dialogs.NewPathDialog(dialogs.PurposeOpenDataset, m.data.path, ""))
	case key.Matches(msg, k.Reload):
		if m.data.path == "" {
			return m, m.startNotice("Nothing to reload", "warn", noticeDuration)
		}
		return m, loadDatasetCmd(m.data.path)
	case key.Matches(msg, k.OpenSession):
		if _, ok := m.store.(session.ClipboardStore); ok {
			return m, loadSessionCmd(m.store)
		}
		return m, m.openDialog(dialogs.NewPathDialog(dialogs.PurposeOpenSession, m.sessionPath, m.dataDir()))
	case key.Matches(msg, k.SaveSession):
		return m, m.saveSession()
	}

	if !m.data.loaded() {
		return m, nil
	}

	switch {
	case key.Matches(msg, k.Jump):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, k.Find):
		m.enterCommandMode(CmdFind)
	case key.Matches(msg, k.CursorDown):
		m.moveCursor(1)
	case key.Matches(msg, k.CursorUp):
		m.moveCursor(-1)
	case key.Matches(msg, k.PageDown):
		m.pan(0.5)
	case key.Matches(msg, k.PageUp):
		m.pan(-0.5)
	case key.Matches(msg, k.Top):
		m.jumpToTop()
	case key.Matches(msg, k.Bottom):
		m.jumpToBottom()
	case key.Matches(msg, k.ZoomIn):
		m.zoomAtCursor(depthaxis.ZoomInFactor)
	case key.Matches(msg, k.ZoomOut):
		m.zoomAtCursor(depthaxis.ZoomOutFactor)
	case key.Matches(msg, k.FullRange):
		m.setWindow(m.data.extent)
	case key.Matches(msg, k.DepthRange):
		return m, m.openDepthRangeDialog()
	case key.Matches(msg, k.FocusPrev):
		m.moveFocus(-1)
	case key.Matches(msg, k.FocusNext):
		m.moveFocus(1)
	case key.Matches(msg, k.ScrollLeft):
		m.scrollTracks(-1)
	case key.Matches(msg, k.ScrollRight):
		m.scrollTracks(1)
	case key.Matches(msg, k.TrackMenu):
		return m, m.openTrackMenuForFocus()
	case key.Matches(msg, k.EditScale):
		name := m.focusedTrack()
		if m.data.lithoTracks[name] {
			return m, m.openLithologyDialog(name)
		}
		return m, m.openScaleDialog(name)
	case key.Matches(msg, k.ToggleLith):
		return m, m.handleTrackAction(m.focusedTrack(), dialogs.ActionToggleLithology)
	case key.Matches(msg, k.HideTrack):
		return m, m.handleTrackAction(m.focusedTrack(), dialogs.ActionHide)
	case key.Matches(msg, k.ShowAll):
		if n := m.showAllTracks(); n > 0 {
			return m, m.startNotice(fmt.Sprintf("%d tracks shown", n), "info", noticeDuration)
		}
	case key.Matches(msg, k.MoveLeft):
		m.moveTrack(m.focusedTrack(), -1)
		m.ensureFocusVisible()
	case key.Matches(msg, k.MoveRight):
		m.moveTrack(m.focusedTrack(), 1)
		m.ensureFocusVisible()
	case key.Matches(msg, k.GestureLatch):
		m.toggleLatch()
	case key.Matches(msg, k.Pick):
		return m, m.keyboardPick()
	case key.Matches(msg, k.CancelGesture):
		m.sel.Cancel()
		if m.ui.gestureLatched {
			m.toggleLatch()
		}
	case key.Matches(msg, k.CopyReadout):
		return m, m.copyReadout()
	case key.Matches(msg, k.ShowResults):
		return m, m.showResults()
	case key.Matches(msg, k.ExportPNG):
		return m, m.openDialog(dialogs.NewPathDialog(dialogs.PurposeExportPNG, m.sessionID()+".png", m.dataDir()))
	}
	return m, nil
}

func (m *model) dataDir() string {
	if m.data.path == "" {
		return ""
	}
	return filepath.Dir(m.data.path)
}

func (m *model) saveSession() tea.Cmd {
	if !m.data.loaded() {
		return m.startNotice("No log data loaded", "warn", noticeDuration)
	}
	if _, ok := m.store.(session.ClipboardStore); ok {
		return saveSessionCmd(m.store, m.snapshot())
	}
	name := m.sessionPath
	if name == "" {
		name = m.sessionID() + ".sfwell.json"
	}
	return m.openDialog(dialogs.NewPathDialog(dialogs.PurposeSaveSession, name, m.dataDir()))
}

func (m *model) openTrackMenuForFocus() tea.Cmd {
	name := m.focusedTrack()
	g := m.geometry()
	c, ok := g.column(name)
	if !ok {
		return nil
	}
	return m.openTrackMenu(name, c.X, g.bodyTop)
}

func (m *model) toggleLatch() {
	m.ui.gestureLatched = !m.ui.gestureLatched
	m.sel.SetModifier(m.ui.gestureLatched)
	if m.ui.gestureLatched && m.sel.Cursor == nil {
		m.setCursorDepth(m.data.window.Center())
	}
}

// keyboardPick is space while latched: the first press arms at the cursor,
// the second finishes the pick there.
func (m *model) keyboardPick() tea.Cmd {
	if !m.ui.gestureLatched {
		return m.startNotice("Press g to latch the pick gesture first", "info", noticeDuration)
	}
	if m.sel.Cursor == nil {
		m.setCursorDepth(m.data.window.Center())
	}
	p := *m.sel.Cursor
	if !m.sel.Armed() {
		m.sel.Press(p)
		return nil
	}
	sel, ok := m.sel.Release(p)
	if !ok {
		return nil
	}
	return m.openNote(sel)
}

func (m *model) copyReadout() tea.Cmd {
	text := m.readout()
	if text == "" {
		return m.startNotice("Nothing under the cursor", "info", noticeDuration)
	}
	return func() tea.Msg {
		return clipboardDoneMsg{what: "readout", err: clipboard.Copy(text)}
	}
}

// endregion

// region Cursor and window

// cursorDepth is the crosshair depth, or the window centre when there is
// no crosshair.
func (m *model) cursorDepth() (float64, bool) {
	if m.sel.Cursor == nil {
		return m.data.window.Center(), false
	}
	return m.sel.Cursor.Depth, true
}

// cursorRow maps the crosshair onto the body, -1 when off screen.
func (m *model) cursorRow(height int) int {
	d, ok := m.cursorDepth()
	if !ok {
		return -1
	}
	return m.depthRow(d, height)
}

func (m *model) depthRow(d float64, height int) int {
	w := m.data.window
	if height <= 0 || w.Span() <= 0 || !w.Contains(d) {
		return -1
	}
	row := int(depthaxis.DepthToPixel(d, 0, float64(height), w))
	if row >= height {
		row = height - 1
	}
	return row
}

// setCursorDepth places the crosshair at d without a mouse position.
func (m *model) setCursorDepth(d float64) {
	g := m.geometry()
	col := -1
	if c, ok := g.column(m.focusedTrack()); ok {
		col = c.X + c.Width/2
	}
	m.sel.Move(selection.Point{Col: col, Row: max(m.depthRow(d, g.bodyHeight), 0), Depth: d})
}

// moveCursor steps the crosshair by rows body rows, panning to keep it in
// view.
func (m *model) moveCursor(rows int) {
	g := m.geometry()
	if g.bodyHeight <= 0 {
		return
	}
	w := m.data.window
	// one row, but never finer than one sample
	step := max(w.Span()/float64(g.bodyHeight), m.data.ds.Step())
	d, ok := m.cursorDepth()
	if ok {
		d += float64(rows) * step
	}
	ext := m.data.extent
	if d < ext.Start {
		d = ext.Start
	}
	if d > ext.End {
		d = ext.End
	}
	switch {
	case d < w.Start:
		m.setWindow(w.Pan(d-w.Start, ext))
	case d > w.End:
		m.setWindow(w.Pan(d-w.End, ext))
	}
	m.setCursorDepth(d)
}

func (m *model) pan(fraction float64) {
	w := m.data.window
	m.setWindow(w.Pan(w.Span()*fraction, m.data.extent))
}

func (m *model) zoomAtCursor(factor float64) {
	d, _ := m.cursorDepth()
	if !m.data.window.Contains(d) {
		d = m.data.window.Center()
	}
	m.setWindow(m.data.window.Zoom(factor, d, m.data.extent))
}

// endregion

// region Focus

func (m *model) moveFocus(delta int) {
	n := len(m.visibleTracks())
	if n == 0 {
		return
	}
	m.ui.focus = (m.ui.focus + delta + n) % n
	m.ensureFocusVisible()
}

func (m *model) scrollTracks(delta int) {
	n := len(m.visibleTracks())
	m.ui.trackOffset = clamp(m.ui.trackOffset+delta, 0, max(n-1, 0))
	g := m.geometry()
	if len(g.cols) > 0 {
		if _, ok := g.column(m.focusedTrack()); !ok {
			m.focusTrack(g.cols[0].Name)
		}
	}
}

// ensureFocusVisible scrolls the track strip so the focused track is drawn.
func (m *model) ensureFocusVisible() {
	m.clampFocus()
	if m.ui.focus < m.ui.trackOffset {
		m.ui.trackOffset = m.ui.focus
		return
	}
	for m.ui.trackOffset < m.ui.focus {
		if _, ok := m.geometry().column(m.focusedTrack()); ok {
			return
		}
		m.ui.trackOffset++
	}
}

// endregion
