package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(d float64) Point { return Point{Col: 10, Row: 5, Depth: d} }

func TestMoveWithoutModifierOnlyTracksCursor(t *testing.T) {
	m := New(0)
	m.Move(at(1200))
	assert.False(t, m.Press(at(1200)))
	assert.False(t, m.Armed())
	_, ok := m.Release(at(1210))
	assert.False(t, ok)
	require.NotNil(t, m.Cursor)
	assert.Equal(t, 1210.0, m.Cursor.Depth)
}

func TestSmallDragFinalizesAsPointAtStart(t *testing.T) {
	m := New(0)
	m.SetModifier(true)
	require.True(t, m.Press(at(1000.00)))
	m.Move(at(1000.02))
	sel, ok := m.Release(at(1000.02))
	require.True(t, ok)
	assert.Equal(t, KindPoint, sel.Kind)
	assert.Equal(t, 1000.00, sel.Start)
	assert.Equal(t, sel.Start, sel.End)
	assert.False(t, m.Armed())
}

func TestDragFinalizesOrderedRange(t *testing.T) {
	m := New(0)
	m.SetModifier(true)
	m.Press(at(1500))
	m.Move(at(1480))
	lo, hi, ok := m.Span()
	require.True(t, ok)
	assert.Equal(t, 1480.0, lo)
	assert.Equal(t, 1500.0, hi)

	sel, ok := m.Release(at(1450))
	require.True(t, ok)
	assert.Equal(t, KindRange, sel.Kind)
	assert.Equal(t, 1450.0, sel.Start)
	assert.Equal(t, 1500.0, sel.End)
	assert.Equal(t, "1450.00 - 1500.00", sel.String())
}

func TestReleaseWithoutPressIsPointAtCursor(t *testing.T) {
	m := New(0)
	m.Move(at(1300))
	m.SetModifier(true)
	sel, ok := m.Release(at(1300))
	require.True(t, ok)
	assert.Equal(t, Selection{Kind: KindPoint, Start: 1300, End: 1300, At: at(1300)}, sel)
}

func TestModifierReleaseCancelsArmedDrag(t *testing.T) {
	m := New(0)
	m.SetModifier(true)
	m.Press(at(1000))
	m.Move(at(1010))
	m.SetModifier(false)
	assert.False(t, m.Armed())
	_, ok := m.Release(at(1010))
	assert.False(t, ok)
}

func TestLeaveCancelsArmedDrag(t *testing.T) {
	m := New(0)
	m.SetModifier(true)
	m.Press(at(1000))
	m.Leave()
	assert.False(t, m.Armed())
	assert.Nil(t, m.Cursor)

	// modifier still held: a later release without press is a click
	sel, ok := m.Release(at(1005))
	require.True(t, ok)
	assert.Equal(t, KindPoint, sel.Kind)
	assert.Equal(t, 1005.0, sel.Start)
}

func TestCustomThreshold(t *testing.T) {
	m := New(1)
	m.SetModifier(true)
	m.Press(at(1000))
	sel, _ := m.Release(at(1000.5))
	assert.Equal(t, KindPoint, sel.Kind)

	assert.Equal(t, PointThreshold, New(-1).Threshold)
}
