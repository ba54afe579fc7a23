package depthaxis

// SyncState tells a window holder whether a window change came from the user
// or was pushed down by the owner of the shared window.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncApplyingExternalView
)

// Sync is embedded by every component that displays the shared window.
// User gestures go through Set, which reports the new window via OnZoom.
// The owner pushes windows down through ApplyExternalView, which never
// reports back.
type Sync struct {
	window Window
	state  SyncState
	OnZoom func(Window)
}

func (s *Sync) Window() Window { return s.window }

func (s *Sync) State() SyncState { return s.state }

// Set records a user-originated window change.
func (s *Sync) Set(w Window) {
	s.window = w
	if s.state == SyncIdle && s.OnZoom != nil {
		s.OnZoom(w)
	}
}

// ApplyExternalView installs a window decided elsewhere. The flag lives for
// the duration of the call only.
func (s *Sync) ApplyExternalView(w Window) {
	s.state = SyncApplyingExternalView
	defer func() { s.state = SyncIdle }()
	s.Set(w)
}

// WheelZoom turns a scroll gesture at row (of height rows) into a
// user-originated zoom around the depth under the pointer.
func (s *Sync) WheelZoom(zoomIn bool, row, height int, extent Window) {
	factor := ZoomOutFactor
	if zoomIn {
		factor = ZoomInFactor
	}
	w := s.window
	anchor, ok := PixelToDepth(float64(row)+0.5, 0, float64(height), w)
	if !ok {
		anchor = w.Center()
	}
	s.Set(w.Zoom(factor, anchor, extent))
}
