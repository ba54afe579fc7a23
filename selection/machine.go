// Package selection turns modifier-gated pointer gestures into depth point
// and range selections.
package selection

import (
	"fmt"
	"math"
)

// PointThreshold is the depth distance below which a drag collapses into a
// point selection at its start.
const PointThreshold = 0.05

// Point is a pointer position: the terminal cell and the depth under it.
type Point struct {
	Col   int
	Row   int
	Depth float64
}

type Kind int

const (
	KindPoint Kind = iota
	KindRange
)

func (k Kind) String() string {
	if k == KindRange {
		return "range"
	}
	return "point"
}

// Selection is a finalized gesture. Points have Start == End. At is the last
// pointer cell, where the note popup is anchored.
type Selection struct {
	Kind  Kind
	Start float64
	End   float64
	At    Point
}

func (s Selection) String() string {
	if s.Kind == KindPoint {
		return fmt.Sprintf("%.2f", s.Start)
	}
	return fmt.Sprintf("%.2f - %.2f", s.Start, s.End)
}

// State is the transient gesture state. Nil pointers mean "not set".
type State struct {
	Cursor       *Point
	Anchor       *Point
	End          *Point
	ModifierHeld bool
}

// Machine interprets pointer events. The modifier is injected by the input
// layer through SetModifier.
type Machine struct {
	State
	Threshold float64
}

func New(threshold float64) *Machine {
	if threshold <= 0 {
		threshold = PointThreshold
	}
	return &Machine{Threshold: threshold}
}

func (m *Machine) Armed() bool { return m.Anchor != nil }

// SetModifier records the gesture key state. Letting go while a drag is
// armed cancels it.
func (m *Machine) SetModifier(held bool) {
	if m.ModifierHeld && !held && m.Armed() {
		m.Cancel()
	}
	m.ModifierHeld = held
}

// Move updates the crosshair and, while armed, the live drag end.
func (m *Machine) Move(p Point) {
	m.Cursor = &p
	if m.Armed() {
		end := p
		m.End = &end
	}
}

// Leave is called when the pointer exits the plot area.
func (m *Machine) Leave() {
	m.Cursor = nil
	if m.Armed() {
		m.Cancel()
	}
}

// Press arms a drag at p when the modifier is held.
func (m *Machine) Press(p Point) bool {
	m.Cursor = &p
	if !m.ModifierHeld {
		return false
	}
	anchor, end := p, p
	m.Anchor, m.End = &anchor, &end
	return true
}

// Release finishes a gesture. Without the modifier nothing is selected.
func (m *Machine) Release(p Point) (Selection, bool) {
	m.Cursor = &p
	if !m.ModifierHeld {
		m.Cancel()
		return Selection{}, false
	}
	if !m.Armed() {
		return Selection{Kind: KindPoint, Start: p.Depth, End: p.Depth, At: p}, true
	}
	start := m.Anchor.Depth
	end := p.Depth
	m.Cancel()
	return finalize(start, end, m.Threshold, p), true
}

// Cancel drops an armed drag.
func (m *Machine) Cancel() {
	m.Anchor = nil
	m.End = nil
}

// Span returns the live drag interval, ordered, while armed.
func (m *Machine) Span() (float64, float64, bool) {
	if !m.Armed() || m.End == nil {
		return 0, 0, false
	}
	return math.Min(m.Anchor.Depth, m.End.Depth), math.Max(m.Anchor.Depth, m.End.Depth), true
}

func finalize(start, end, threshold float64, at Point) Selection {
	if math.Abs(end-start) < threshold {
		return Selection{Kind: KindPoint, Start: start, End: start, At: at}
	}
	return Selection{Kind: KindRange, Start: math.Min(start, end), End: math.Max(start, end), At: at}
}
