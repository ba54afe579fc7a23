package main

import (
	"fmt"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/logging"
	"github.com/andareed/siftly-welllog/session"
	"github.com/andareed/siftly-welllog/welllog"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	sessionSavedMsg struct {
		where string
		err   error
	}
	sessionLoadedMsg struct {
		state session.State
		from  string
		err   error
	}
)

// snapshot captures the six persisted fields as they are now.
func (m *model) snapshot() session.State {
	st := session.State{
		TrackOrder:          append([]string{}, m.data.order...),
		HiddenTracks:        session.Set(m.data.hidden),
		CustomScales:        make(map[string]welllog.Scale, len(m.data.scales)),
		LithologyModeTracks: session.Set(m.data.lithoTracks),
		LithologyConfigs:    make(map[string]lithology.Config, len(m.data.lithoConfigs)),
	}
	for k, v := range m.data.scales {
		st.CustomScales[k] = v
	}
	for k, v := range m.data.lithoConfigs {
		st.LithologyConfigs[k] = v
	}
	if m.data.window.Span() > 0 {
		w := m.data.window
		st.ViewRange = &w
	}
	return st
}

// restore applies each present field of st on its own. Names the dataset
// does not have are dropped; dataset curves missing from the saved order
// are appended. Without a dataset the restore waits for the next load.
func (m *model) restore(st session.State) {
	if !m.data.loaded() {
		logging.Infof("session restore deferred until a dataset is loaded")
		m.data.pendingRestore = &st
		return
	}
	ds := m.data.ds

	if st.TrackOrder != nil {
		m.data.order = mergeOrder(st.TrackOrder, ds.Names)
	}
	if st.HiddenTracks != nil {
		m.data.hidden = session.Members(known(ds, st.HiddenTracks))
		if len(m.visibleTracks()) == 0 {
			logging.Warnf("session hides every track; showing all")
			m.data.hidden = map[string]bool{}
		}
	}
	if st.CustomScales != nil {
		m.data.scales = map[string]welllog.Scale{}
		keys := map[string]bool{}
		for _, n := range ds.Names {
			keys[scaleKey(n)] = true
		}
		for k, s := range st.CustomScales {
			if !keys[scaleKey(k)] {
				continue
			}
			if err := s.Validate(); err != nil {
				logging.Warnf("session scale %s dropped: %v", k, err)
				continue
			}
			m.data.scales[scaleKey(k)] = s
		}
	}
	if st.LithologyConfigs != nil {
		m.data.lithoConfigs = map[string]lithology.Config{}
		for k, cfg := range st.LithologyConfigs {
			if ds.Has(k) && !cfg.IsEmpty() {
				m.data.lithoConfigs[k] = cfg
			}
		}
	}
	if st.LithologyModeTracks != nil {
		m.data.lithoTracks = session.Members(known(ds, st.LithologyModeTracks))
	}
	// every lithology track needs a map, whichever field replaced it
	for name := range m.data.lithoTracks {
		if _, ok := m.data.lithoConfigs[name]; !ok {
			m.data.lithoConfigs[name] = m.autoLithology(name)
		}
	}
	for _, name := range m.data.order {
		m.refreshTrack(name)
	}
	if st.ViewRange != nil && st.ViewRange.Span() > 0 {
		m.setWindow(*st.ViewRange)
	}
	m.clampFocus()
}

func known(ds *welllog.Dataset, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if ds.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func saveSessionCmd(store session.Store, st session.State) tea.Cmd {
	return func() tea.Msg {
		err := store.Save(st)
		return sessionSavedMsg{where: store.String(), err: err}
	}
}

func loadSessionCmd(store session.Store) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Load()
		return sessionLoadedMsg{state: st, from: store.String(), err: err}
	}
}

func (m *model) handleSessionSaved(msg sessionSavedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("save session: %v", msg.err)
		return m.startNotice(fmt.Sprintf("Save failed: %v", msg.err), "error", noticeDuration)
	}
	return m.startNotice("Session saved to "+msg.where, "success", noticeDuration)
}

func (m *model) handleSessionLoaded(msg sessionLoadedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("load session: %v", msg.err)
		return m.startNotice(fmt.Sprintf("Open failed: %v", msg.err), "error", noticeDuration)
	}
	m.restore(msg.state)
	if m.data.pendingRestore != nil {
		return m.startNotice("Session will apply when log data loads", "info", noticeDuration)
	}
	return m.startNotice("Session restored from "+msg.from, "success", noticeDuration)
}

func windowPtr(w depthaxis.Window) *depthaxis.Window { return &w }
