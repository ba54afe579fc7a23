package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/logging"
	"github.com/andareed/siftly-welllog/track"
	"github.com/andareed/siftly-welllog/welllog"
)

// mergeOrder keeps the names of existing that are still in names, in their
// old order, then appends the rest of names in dataset order.
func mergeOrder(existing, names []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range existing {
		if present[n] && !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	for _, n := range names {
		if !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	return out
}

// setDataset installs a freshly loaded dataset. Track order survives a
// reload; a pending session restore is applied once the data is in.
func (m *model) setDataset(ds *welllog.Dataset, path string) {
	prev := m.data.window
	m.data.ds = ds
	m.data.path = path
	m.data.order = mergeOrder(m.data.order, ds.Names)
	m.data.extent = ds.Extent()
	m.pruneToDataset()
	m.rebuildPanes()

	w := m.data.extent
	if prev.Span() > 0 && prev.End > w.Start && prev.Start < w.End {
		w = prev
	}
	m.setWindow(w)
	m.sel.Leave()
	m.clampFocus()
	logging.Infof("dataset %s: %d curves, %d samples, %s", path, len(ds.Names), len(ds.Depth), m.data.extent)

	if st := m.data.pendingRestore; st != nil {
		m.data.pendingRestore = nil
		m.restore(*st)
	}
}

// pruneToDataset forgets per-track state for curves the dataset lacks.
func (m *model) pruneToDataset() {
	for name := range m.data.hidden {
		if !m.data.ds.Has(name) {
			delete(m.data.hidden, name)
		}
	}
	for name := range m.data.lithoTracks {
		if !m.data.ds.Has(name) {
			delete(m.data.lithoTracks, name)
		}
	}
	for name := range m.data.lithoConfigs {
		if !m.data.ds.Has(name) {
			delete(m.data.lithoConfigs, name)
		}
	}
}

func (m *model) rebuildPanes() {
	m.panes = make(map[string]*track.Pane, len(m.data.order))
	for _, name := range m.data.order {
		p := track.NewPane(name, m.effectiveConfig(name))
		p.Litho = m.data.lithoConfigs[name]
		p.Extent = m.data.extent
		p.OnZoom = m.onZoom
		m.panes[name] = p
	}
	m.ruler.Extent = m.data.extent
	m.ruler.OnZoom = m.onZoom
}

func (m *model) effectiveConfig(name string) welllog.TrackConfig {
	var values []welllog.Value
	if m.data.ds != nil {
		values = m.data.ds.Curves[name]
	}
	cfg := welllog.Resolve(name, values, m.trackDefaults, m.data.scales)
	if cfg.Unit == "" {
		cfg.Unit = m.data.ds.Unit(name)
	}
	if m.data.lithoTracks[name] {
		cfg.Mode = welllog.ModeLithology
	}
	return cfg
}

func (m *model) refreshTrack(name string) {
	p, ok := m.panes[name]
	if !ok {
		return
	}
	p.Config = m.effectiveConfig(name)
	p.Litho = m.data.lithoConfigs[name]
}

// onZoom is the single entry point for user-originated window changes
// coming up from the ruler or a pane.
func (m *model) onZoom(w depthaxis.Window) {
	m.setWindow(w)
}

// setWindow updates the shared window once and pushes it to the ruler and
// every pane.
func (m *model) setWindow(w depthaxis.Window) {
	if m.data.extent.Span() > 0 {
		w = w.Clamp(m.data.extent)
	}
	m.data.window = w
	m.ruler.ApplyExternalView(w)
	for _, p := range m.panes {
		p.ApplyExternalView(w)
	}
}

// alignedWindows lists the window every display component currently holds,
// ruler first.
func (m *model) alignedWindows() []depthaxis.Window {
	out := []depthaxis.Window{m.ruler.Window()}
	for _, name := range m.data.order {
		out = append(out, m.panes[name].Window())
	}
	return out
}

func (m *model) visibleTracks() []string {
	out := make([]string, 0, len(m.data.order))
	for _, name := range m.data.order {
		if !m.data.hidden[name] {
			out = append(out, name)
		}
	}
	return out
}

func (m *model) focusedTrack() string {
	vis := m.visibleTracks()
	if m.ui.focus < 0 || m.ui.focus >= len(vis) {
		return ""
	}
	return vis[m.ui.focus]
}

func (m *model) focusTrack(name string) {
	for i, n := range m.visibleTracks() {
		if n == name {
			m.ui.focus = i
			return
		}
	}
}

func (m *model) clampFocus() {
	n := len(m.visibleTracks())
	if m.ui.focus >= n {
		m.ui.focus = n - 1
	}
	if m.ui.focus < 0 {
		m.ui.focus = 0
	}
	if m.ui.trackOffset >= n {
		m.ui.trackOffset = max(n-1, 0)
	}
}

func (m *model) hideTrack(name string) error {
	if len(m.visibleTracks()) <= 1 {
		return fmt.Errorf("cannot hide the last visible track")
	}
	m.data.hidden[name] = true
	m.clampFocus()
	return nil
}

func (m *model) showAllTracks() int {
	n := len(m.data.hidden)
	m.data.hidden = map[string]bool{}
	return n
}

func (m *model) reorderTracks(from, to string) {
	m.data.order = track.Reorder(m.data.order, from, to)
	m.focusTrack(from)
}

// moveTrack swaps name with its visible neighbour in direction dir (-1/+1).
func (m *model) moveTrack(name string, dir int) bool {
	vis := m.visibleTracks()
	i := indexOf(vis, name)
	j := i + dir
	if i < 0 || j < 0 || j >= len(vis) {
		return false
	}
	m.reorderTracks(name, vis[j])
	return true
}

// toggleLithology flips name between curve and lithology mode. Entering
// lithology mode without a map generates one from the data.
func (m *model) toggleLithology(name string) bool {
	if m.data.lithoTracks[name] {
		delete(m.data.lithoTracks, name)
		m.refreshTrack(name)
		return false
	}
	m.data.lithoTracks[name] = true
	if _, ok := m.data.lithoConfigs[name]; !ok {
		m.data.lithoConfigs[name] = m.autoLithology(name)
	}
	m.refreshTrack(name)
	return true
}

func (m *model) autoLithology(name string) lithology.Config {
	var values []welllog.Value
	if m.data.ds != nil {
		values = m.data.ds.Curves[name]
	}
	return lithology.Config{Ranges: lithology.AutoRanges(values)}
}

func (m *model) setLithologyConfig(name string, cfg lithology.Config) {
	m.data.lithoConfigs[name] = cfg
	m.refreshTrack(name)
}

func scaleKey(name string) string { return strings.ToUpper(name) }

func (m *model) setScale(name string, s welllog.Scale) {
	m.data.scales[scaleKey(name)] = s
	m.refreshScaled(name)
}

func (m *model) resetScale(name string) {
	delete(m.data.scales, scaleKey(name))
	m.refreshScaled(name)
}

// refreshScaled refreshes every track sharing name's scale key.
func (m *model) refreshScaled(name string) {
	for _, n := range m.data.order {
		if scaleKey(n) == scaleKey(name) {
			m.refreshTrack(n)
		}
	}
}

// effectiveScale is what the scale dialog is seeded with.
func (m *model) effectiveScale(name string) welllog.Scale {
	if p, ok := m.panes[name]; ok {
		return welllog.Scale{Min: p.Config.Min, Max: p.Config.Max}
	}
	return welllog.Scale{}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
