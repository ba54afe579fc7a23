package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andareed/siftly-welllog/analysis"
	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/dialogs"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/selection"
	"github.com/andareed/siftly-welllog/session"
	"github.com/andareed/siftly-welllog/welllog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	reqs []analysis.Request
	resp *analysis.Response
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req analysis.Request) (*analysis.Response, error) {
	f.reqs = append(f.reqs, req)
	return f.resp, nil
}

func testDataset(names ...string) *welllog.Dataset {
	if len(names) == 0 {
		names = []string{"GR", "RT", "LITH"}
	}
	depth := make([]float64, 101)
	curves := map[string][]welllog.Value{}
	for i := range depth {
		depth[i] = 1000 + float64(i)
	}
	for _, n := range names {
		vals := make([]welllog.Value, len(depth))
		for i := range vals {
			switch n {
			case "LITH":
				vals[i] = welllog.Some(float64(1 + i/34))
			case "RT":
				vals[i] = welllog.Some(1 + float64(i))
			default:
				vals[i] = welllog.Some(float64(i % 150))
			}
		}
		curves[n] = vals
	}
	return welllog.NewDataset(depth, append([]string{"DEPT"}, names...), curves)
}

func newTestModel(t *testing.T) (*model, *fakeAnalyzer) {
	t.Helper()
	fa := &fakeAnalyzer{resp: &analysis.Response{Success: true}}
	m := newModel(Config{}, fa, session.FileStore{Path: filepath.Join(t.TempDir(), "s.json")})
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, fa
}

func loadedModel(t *testing.T) (*model, *fakeAnalyzer) {
	t.Helper()
	m, fa := newTestModel(t)
	m.Update(datasetLoadedMsg{ds: testDataset(), path: "testdata/well.json"})
	require.True(t, m.data.loaded())
	return m, fa
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeKeys(m *model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// send delivers msg and feeds back whatever single message its command
// produces, one level deep.
func send(m *model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		if _, isBatch := next.(tea.BatchMsg); !isBatch {
			m.Update(next)
		}
	}
}

func bodyPoint(t *testing.T, m *model, track string, row int) (int, int) {
	t.Helper()
	g := m.geometry()
	c, ok := g.column(track)
	require.True(t, ok, "track %s not laid out", track)
	return c.X + 1, g.bodyTop + row
}

func assertAligned(t *testing.T, m *model) {
	t.Helper()
	for i, w := range m.alignedWindows() {
		assert.Equal(t, m.data.window, w, "window %d out of step", i)
	}
	assert.Equal(t, depthaxis.SyncIdle, m.ruler.State())
	for _, p := range m.panes {
		assert.Equal(t, depthaxis.SyncIdle, p.State())
	}
}

func TestDatasetLoadShowsWholeExtent(t *testing.T) {
	m, _ := loadedModel(t)
	assert.Equal(t, []string{"GR", "RT", "LITH"}, m.data.order)
	assert.Equal(t, depthaxis.Window{Start: 1000, End: 1100}, m.data.window)
	assertAligned(t, m)
	assert.Contains(t, m.View(), "GR (API)")
}

func TestWheelOnPaneKeepsEveryWindowAligned(t *testing.T) {
	m, _ := loadedModel(t)
	x, y := bodyPoint(t, m, "RT", 5)
	m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})

	assert.Less(t, m.data.window.Span(), 100.0)
	assertAligned(t, m)

	// the depth under the pointer stays put
	anchor := 1000 + 5.5/36*100
	assert.InDelta(t, anchor-0.8*(anchor-1000), m.data.window.Start, 1e-9)
}

func TestWheelOnRulerKeepsEveryWindowAligned(t *testing.T) {
	m, _ := loadedModel(t)
	m.Update(tea.MouseMsg{X: 2, Y: headerRows + 18, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{X: 2, Y: headerRows + 18, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.InDelta(t, 64, m.data.window.Span(), 1e-9)
	assertAligned(t, m)

	m.Update(tea.MouseMsg{X: 2, Y: headerRows + 18, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.InDelta(t, 80, m.data.window.Span(), 1e-9)
	assertAligned(t, m)
}

func TestKeyboardZoomPanAndJumpStayAligned(t *testing.T) {
	m, _ := loadedModel(t)
	typeKeys(m, "+++")
	assert.InDelta(t, 51.2, m.data.window.Span(), 1e-9)
	assertAligned(t, m)

	typeKeys(m, "d")
	assertAligned(t, m)
	assert.LessOrEqual(t, m.data.window.End, 1100.0)

	typeKeys(m, ":1060")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.InDelta(t, 1060, m.data.window.Center(), 1e-9)
	assertAligned(t, m)

	typeKeys(m, ":1010-1030")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, depthaxis.Window{Start: 1010, End: 1030}, m.data.window)
	assertAligned(t, m)

	typeKeys(m, "0")
	assert.Equal(t, m.data.extent, m.data.window)
}

func TestJumpRejectsBadInput(t *testing.T) {
	m, _ := loadedModel(t)
	typeKeys(m, ":abc")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.ui.noticeMsg, "invalid depth")
	assert.Equal(t, modeView, m.ui.mode)

	typeKeys(m, ":5000")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.ui.noticeMsg, "outside log")
}

func TestParseDepthTarget(t *testing.T) {
	d, _, isRange, err := parseDepthTarget("1234.5")
	require.NoError(t, err)
	assert.False(t, isRange)
	assert.Equal(t, 1234.5, d)

	_, w, isRange, err := parseDepthTarget(" 1200 - 1300 ")
	require.NoError(t, err)
	assert.True(t, isRange)
	assert.Equal(t, depthaxis.Window{Start: 1200, End: 1300}, w)

	_, _, _, err = parseDepthTarget("1300-1200")
	assert.Error(t, err)
}

func TestModifierDragOpensNoteAndSendsAnalysis(t *testing.T) {
	m, fa := loadedModel(t)
	fa.resp = &analysis.Response{Success: true, Messages: []analysis.Message{{Agent: "geo", Content: "Clean sand", IsFinal: true}}}

	x, y0 := bodyPoint(t, m, "GR", 10)
	_, y1 := bodyPoint(t, m, "GR", 30)
	m.Update(tea.MouseMsg{X: x, Y: y0, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.True(t, m.sel.Armed())
	m.Update(tea.MouseMsg{X: x, Y: y1, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: x, Y: y1, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	note, ok := m.activeDialog.(*dialogs.Note)
	require.True(t, ok, "note popup should open")
	assert.True(t, m.ui.anchored)
	sel := note.Selection()
	assert.Equal(t, selection.KindRange, sel.Kind)
	assert.Less(t, sel.Start, sel.End)
	assert.Contains(t, m.View(), "Analyze range")

	typeKeys(m, "sand")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	confirmed := cmd()
	require.IsType(t, dialogs.NoteConfirmedMsg{}, confirmed)
	send(m, confirmed)

	require.Len(t, fa.reqs, 1)
	req := fa.reqs[0]
	assert.InDelta(t, 1000+10.5/36*100, req.StartDepth, 1e-9)
	assert.InDelta(t, 1000+30.5/36*100, req.EndDepth, 1e-9)
	assert.Equal(t, "sand", req.FocusNote)
	assert.Equal(t, "well", req.SessionID)
	assert.Nil(t, m.activeDialog)
	assert.False(t, m.ui.analysisBusy)
	require.NotNil(t, m.lastAnalysis)
	assert.Contains(t, m.ui.noticeMsg, "Clean sand")
}

func TestModifierClickGivesPointSelection(t *testing.T) {
	m, _ := loadedModel(t)
	x, y := bodyPoint(t, m, "GR", 12)
	m.Update(tea.MouseMsg{X: x, Y: y, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{X: x, Y: y, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	note, ok := m.activeDialog.(*dialogs.Note)
	require.True(t, ok)
	sel := note.Selection()
	assert.Equal(t, selection.KindPoint, sel.Kind)
	assert.Equal(t, sel.Start, sel.End)

	// esc discards without calling the analyzer
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.activeDialog)
}

func TestDragWithoutModifierSelectsNothing(t *testing.T) {
	m, fa := loadedModel(t)
	x, y0 := bodyPoint(t, m, "GR", 10)
	_, y1 := bodyPoint(t, m, "GR", 20)
	m.Update(tea.MouseMsg{X: x, Y: y0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{X: x, Y: y1, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: x, Y: y1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Nil(t, m.activeDialog)
	assert.False(t, m.sel.Armed())
	assert.Empty(t, fa.reqs)
}

func TestLeavingPlotCancelsArmedDrag(t *testing.T) {
	m, _ := loadedModel(t)
	x, y := bodyPoint(t, m, "GR", 10)
	m.Update(tea.MouseMsg{X: x, Y: y, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.True(t, m.sel.Armed())
	m.Update(tea.MouseMsg{X: x, Y: 39, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	assert.False(t, m.sel.Armed())
	assert.Nil(t, m.sel.Cursor)
}

func TestLatchedKeyboardPick(t *testing.T) {
	m, _ := loadedModel(t)
	typeKeys(m, "g")
	require.True(t, m.ui.gestureLatched)
	require.NotNil(t, m.sel.Cursor)
	start := m.sel.Cursor.Depth

	m.Update(space)
	require.True(t, m.sel.Armed())
	typeKeys(m, "jjjjj")
	m.Update(space)

	note, ok := m.activeDialog.(*dialogs.Note)
	require.True(t, ok)
	sel := note.Selection()
	assert.Equal(t, selection.KindRange, sel.Kind)
	assert.InDelta(t, start, sel.Start, 1e-9)
	assert.InDelta(t, start+5*100.0/36, sel.End, 1e-9)
}

func TestCursorStepsAtLeastOneSample(t *testing.T) {
	m, _ := loadedModel(t)
	typeKeys(m, ":1040-1050")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.setCursorDepth(1045)
	typeKeys(m, "j")
	d, ok := m.cursorDepth()
	require.True(t, ok)
	assert.InDelta(t, 1046, d, 1e-9)
}

func TestDoubleClickBodyOpensScaleDialog(t *testing.T) {
	m, _ := loadedModel(t)
	x, y := bodyPoint(t, m, "GR", 3)
	click := func() {
		m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
		m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	}
	click()
	assert.Nil(t, m.activeDialog)
	click()
	_, ok := m.activeDialog.(*dialogs.Scale)
	require.True(t, ok)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.activeDialog)
	assert.Equal(t, welllog.Scale{Min: 0, Max: 150}, m.data.scales["GR"])
}

func TestDoubleClickRulerOpensDepthRange(t *testing.T) {
	m, _ := loadedModel(t)
	for i := 0; i < 2; i++ {
		m.Update(tea.MouseMsg{X: 1, Y: headerRows + 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	}
	_, ok := m.activeDialog.(*dialogs.DepthRange)
	require.True(t, ok)

	m.Update(dialogs.DepthRangeConfirmedMsg{Window: depthaxis.Window{Start: 1020, End: 1040}})
	assert.Nil(t, m.activeDialog)
	assert.Equal(t, depthaxis.Window{Start: 1020, End: 1040}, m.data.window)
	assertAligned(t, m)
}

func TestScaleConfirmAndReset(t *testing.T) {
	m, _ := loadedModel(t)
	m.Update(dialogs.ScaleConfirmedMsg{Track: "gr", Scale: welllog.Scale{Min: 10, Max: 120}})
	assert.Equal(t, 10.0, m.panes["GR"].Config.Min, "override keys are case-insensitive")
	assert.Equal(t, 120.0, m.panes["GR"].Config.Max)
	assert.Equal(t, welllog.Scale{Min: 10, Max: 120}, m.effectiveScale("GR"))

	m.Update(dialogs.ScaleResetMsg{Track: "GR"})
	assert.Equal(t, 150.0, m.panes["GR"].Config.Max)
	assert.Empty(t, m.data.scales)
}

func TestHideAndMoveTracks(t *testing.T) {
	m, _ := loadedModel(t)
	m.Update(dialogs.TrackMenuChosenMsg{Track: "GR", Action: dialogs.ActionMoveRight})
	assert.Equal(t, []string{"RT", "GR", "LITH"}, m.data.order)

	m.Update(dialogs.TrackMenuChosenMsg{Track: "RT", Action: dialogs.ActionHide})
	m.Update(dialogs.TrackMenuChosenMsg{Track: "GR", Action: dialogs.ActionHide})
	assert.Equal(t, []string{"LITH"}, m.visibleTracks())

	m.Update(dialogs.TrackMenuChosenMsg{Track: "LITH", Action: dialogs.ActionHide})
	assert.Equal(t, []string{"LITH"}, m.visibleTracks(), "last visible track stays")
	assert.Contains(t, m.ui.noticeMsg, "last visible")

	typeKeys(m, "X")
	assert.Len(t, m.visibleTracks(), 3)
}

func TestHeaderDragReorders(t *testing.T) {
	m, _ := loadedModel(t)
	g := m.geometry()
	gr, _ := g.column("GR")
	lith, _ := g.column("LITH")
	m.Update(tea.MouseMsg{X: gr.X + 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{X: lith.X + 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: lith.X + 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Equal(t, []string{"RT", "LITH", "GR"}, m.data.order)
	assert.Nil(t, m.ui.drag)
	assert.Equal(t, "GR", m.focusedTrack())
}

func TestRightClickMenuItemClick(t *testing.T) {
	m, _ := loadedModel(t)
	x, y := bodyPoint(t, m, "RT", 6)
	m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	_, ok := m.activeDialog.(*dialogs.TrackMenu)
	require.True(t, ok)
	require.NotZero(t, m.ui.menuBox.w)

	// first item is "Hide track"
	send(m, tea.MouseMsg{X: m.ui.menuBox.x + 2, Y: m.ui.menuBox.y + 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Nil(t, m.activeDialog)
	assert.True(t, m.data.hidden["RT"])
}

func TestToggleLithologyGeneratesMap(t *testing.T) {
	m, _ := loadedModel(t)
	m.focusTrack("LITH")
	typeKeys(m, "t")
	assert.True(t, m.data.lithoTracks["LITH"])
	require.Len(t, m.data.lithoConfigs["LITH"].Ranges, 3)
	assert.Equal(t, welllog.ModeLithology, m.panes["LITH"].Config.Mode)
	assert.Contains(t, m.View(), "Class 1")

	typeKeys(m, "e")
	_, ok := m.activeDialog.(*dialogs.LithologyMap)
	assert.True(t, ok, "edit key opens the map editor in lithology mode")
}

func TestRestoreConfigsOnlyKeepsLithologyTracksMapped(t *testing.T) {
	m, _ := loadedModel(t)
	m.focusTrack("LITH")
	typeKeys(m, "t")
	require.True(t, m.data.lithoTracks["LITH"])

	m.restore(session.State{LithologyConfigs: map[string]lithology.Config{}})
	assert.True(t, m.data.lithoTracks["LITH"])
	cfg := m.data.lithoConfigs["LITH"]
	require.False(t, cfg.IsEmpty())
	assert.Equal(t, "Class 1", lithology.Resolve(1, cfg).Label)
	assert.Equal(t, cfg, m.panes["LITH"].Litho)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	m, _ := loadedModel(t)
	m.Update(dialogs.TrackMenuChosenMsg{Track: "GR", Action: dialogs.ActionMoveRight})
	m.Update(dialogs.TrackMenuChosenMsg{Track: "RT", Action: dialogs.ActionHide})
	m.Update(dialogs.ScaleConfirmedMsg{Track: "GR", Scale: welllog.Scale{Min: 0, Max: 200}})
	m.Update(dialogs.TrackMenuChosenMsg{Track: "LITH", Action: dialogs.ActionToggleLithology})
	m.setWindow(depthaxis.Window{Start: 1020, End: 1060})
	want := m.snapshot()

	other, _ := loadedModel(t)
	other.restore(want)
	assert.Equal(t, want, other.snapshot())
	assertAligned(t, other)
	assert.Equal(t, 200.0, other.panes["GR"].Config.Max)
	assert.Equal(t, welllog.ModeLithology, other.panes["LITH"].Config.Mode)
}

func TestRestoreWaitsForDataset(t *testing.T) {
	m, _ := loadedModel(t)
	m.Update(dialogs.TrackMenuChosenMsg{Track: "LITH", Action: dialogs.ActionMoveLeft})
	m.setWindow(depthaxis.Window{Start: 1050, End: 1070})
	want := m.snapshot()

	other, _ := newTestModel(t)
	other.Update(sessionLoadedMsg{state: want, from: "s.json"})
	require.NotNil(t, other.data.pendingRestore)
	assert.Contains(t, other.ui.noticeMsg, "when log data loads")

	other.Update(datasetLoadedMsg{ds: testDataset(), path: "testdata/well.json"})
	assert.Nil(t, other.data.pendingRestore)
	assert.Equal(t, want, other.snapshot())
}

func TestRestoreDropsUnknownNamesAndNeverHidesEverything(t *testing.T) {
	m, _ := loadedModel(t)
	m.restore(session.State{
		TrackOrder:   []string{"NOPE", "LITH"},
		HiddenTracks: []string{"NOPE"},
		CustomScales: map[string]welllog.Scale{"NOPE": {Min: 0, Max: 1}, "RT": {Min: 5, Max: 1}},
		ViewRange:    windowPtr(depthaxis.Window{Start: 900, End: 950}),
	})
	assert.Equal(t, []string{"LITH", "GR", "RT"}, m.data.order)
	assert.Empty(t, m.data.hidden)
	assert.Empty(t, m.data.scales, "unknown and invalid scales are dropped")
	assert.Equal(t, depthaxis.Window{Start: 1000, End: 1050}, m.data.window, "window clamps into the extent")

	m.restore(session.State{HiddenTracks: []string{"GR", "RT", "LITH"}})
	assert.Len(t, m.visibleTracks(), 3)
}

func TestSessionSaveAndOpenThroughFiles(t *testing.T) {
	m, _ := loadedModel(t)
	m.Update(dialogs.TrackMenuChosenMsg{Track: "GR", Action: dialogs.ActionHide})
	path := filepath.Join(t.TempDir(), "well.sfwell.json")
	send(m, dialogs.PathConfirmedMsg{Purpose: dialogs.PurposeSaveSession, Path: path})
	assert.Contains(t, m.ui.noticeMsg, "Session saved")

	other, _ := loadedModel(t)
	send(other, dialogs.PathConfirmedMsg{Purpose: dialogs.PurposeOpenSession, Path: path})
	assert.True(t, other.data.hidden["GR"])
	assert.Equal(t, m.snapshot(), other.snapshot())
}

func TestClipboardSessionSaveAndOpen(t *testing.T) {
	var copied string
	store := session.ClipboardStore{
		Copy:  func(s string) error { copied = s; return nil },
		Paste: func() (string, error) { return copied, nil },
	}
	m, _ := loadedModel(t)
	m.store = store
	m.Update(dialogs.TrackMenuChosenMsg{Track: "RT", Action: dialogs.ActionHide})
	send(m, runes("s"))
	assert.Nil(t, m.activeDialog, "clipboard store saves without a path prompt")
	assert.Contains(t, m.ui.noticeMsg, "Session saved to clipboard")
	require.NotEmpty(t, copied)

	other, _ := loadedModel(t)
	other.store = store
	send(other, runes("o"))
	assert.True(t, other.data.hidden["RT"])
}

func TestFindFocusesTrackByPrefix(t *testing.T) {
	m, _ := loadedModel(t)
	typeKeys(m, "/li")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "LITH", m.focusedTrack())

	typeKeys(m, "/zz")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "LITH", m.focusedTrack())
	assert.Contains(t, m.ui.noticeMsg, "No visible track matches")
}

func TestReloadKeepsOrder(t *testing.T) {
	m, _ := loadedModel(t)
	m.Update(dialogs.TrackMenuChosenMsg{Track: "GR", Action: dialogs.ActionMoveRight})
	m.Update(datasetLoadedMsg{ds: testDataset("GR", "RT", "NPHI"), path: "testdata/well.json"})
	assert.Equal(t, []string{"RT", "GR", "NPHI"}, m.data.order)
	assert.NotContains(t, m.panes, "LITH")
}

func TestMergeOrder(t *testing.T) {
	assert.Equal(t, []string{"RT", "GR", "NEW"}, mergeOrder([]string{"RT", "GR", "OLD"}, []string{"GR", "RT", "NEW"}))
	assert.Equal(t, []string{"A", "B"}, mergeOrder(nil, []string{"A", "B"}))
}

func TestInvalidDatasetShowsNoData(t *testing.T) {
	m, _ := newTestModel(t)
	bad := welllog.NewDataset([]float64{1, 2, 3}, []string{"GR"}, map[string][]welllog.Value{"GR": welllog.Values(1, 2)})
	m.Update(datasetLoadedMsg{ds: bad, path: "bad.csv"})
	assert.Contains(t, m.View(), "no data")
	assert.Contains(t, m.ui.noticeMsg, "no usable log data")
}

func TestViewWithoutDataset(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No log data loaded")
}

func TestReadoutListsVisibleTracks(t *testing.T) {
	m, _ := loadedModel(t)
	m.setCursorDepth(1010)
	out := m.readout()
	assert.True(t, strings.HasPrefix(out, "1010.00"))
	assert.Contains(t, out, "GR: 10.00 API")
	assert.Contains(t, out, "RT: 11.00")
}

func TestOverlayAt(t *testing.T) {
	bg := []string{"aaaaaaaa", "bbbbbbbb", "cccccccc"}
	overlayAt(bg, []string{"XY", "ZW"}, 8, 3, 1, 2)
	assert.Equal(t, []string{"aaaaaaaa", "bbbXYbbb", "cccZWccc"}, bg)
}
