package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFooterKeepsWidth(t *testing.T) {
	st := FooterState{
		Mode:          "JUMP",
		ModeInput:     "1200-1300",
		FileName:      "well.json",
		WindowLabel:   "1000.00–1100.00",
		PickLabel:     "armed",
		Depth:         "1010.00",
		StatusMessage: "1010.00 · GR: 10.00 API",
	}
	for _, w := range []int{20, 60, 120, 200} {
		out := RenderFooter(w, st, DefaultFooterStyles())
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		for _, l := range lines {
			assert.Equal(t, w, lipgloss.Width(l), "width %d", w)
		}
	}
}

func TestRenderFooterContent(t *testing.T) {
	out := RenderFooter(160, FooterState{FileName: "well.json", Depth: "1010.00", StatusMessage: "hello"}, DefaultFooterStyles())
	assert.Contains(t, out, "VIEW")
	assert.Contains(t, out, "well.json")
	assert.Contains(t, out, "Depth 1010.00")
	assert.Contains(t, out, "[PICK: off")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "(? help)")

	assert.Contains(t, RenderFooter(160, FooterState{}, DefaultFooterStyles()), "(no file)")
	assert.Empty(t, RenderFooter(0, FooterState{}, DefaultFooterStyles()))
}
