package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// FooterState is everything the two footer lines show.
type FooterState struct {
	Mode      string
	ModeInput string

	FileName string

	WindowLabel string
	PickLabel   string

	Depth string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	Pill   lipgloss.Style
	Bar    lipgloss.Style
	File   lipgloss.Style
	Dim    lipgloss.Style
	Status lipgloss.Style
	Legend lipgloss.Style
}

func DefaultFooterStyles() FooterStyles {
	barBG := lipgloss.Color("#2b2b2b")
	statusBG := lipgloss.Color("#000000")
	return FooterStyles{
		Pill:   lipgloss.NewStyle().Background(lipgloss.Color("#ff9f1c")).Foreground(lipgloss.Color("#000000")).Bold(true),
		Bar:    lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#cfcfcf")),
		File:   lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#e0e0e0")),
		Dim:    lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#a0a0a0")),
		Status: lipgloss.NewStyle().Background(statusBG).Foreground(lipgloss.Color("#9a9a9a")),
		Legend: lipgloss.NewStyle().Background(statusBG).Foreground(lipgloss.Color("#b0b0b0")),
	}
}

const (
	modePillMaxW = 12
	windowLabelW = 19
	pickLabelW   = 7
	minFileW     = 10
)

// RenderFooter draws the control bar and the status bar, each exactly
// width cells wide.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "VIEW"
	}
	if st.WindowLabel == "" {
		st.WindowLabel = "-"
	}
	if st.PickLabel == "" {
		st.PickLabel = "off"
	}
	if st.Legend == "" {
		st.Legend = "(? help)"
	}
	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

func renderControlBar(width int, st FooterState, s FooterStyles) string {
	right := ""
	if st.Depth != "" {
		right = " Depth " + st.Depth + " "
	}
	right = fit(right, width)
	left := width - lipgloss.Width(right)

	pill := " " + fit(st.Mode, modePillMaxW-2) + " "
	left -= lipgloss.Width(pill)

	// window/pick keeps a fixed width so the file segment does not jitter
	winPick := fmt.Sprintf("[WINDOW: %s] · [PICK: %s]",
		padRight(fit(st.WindowLabel, windowLabelW), windowLabelW),
		padRight(fit(st.PickLabel, pickLabelW), pickLabelW))
	winW := lipgloss.Width(winPick)
	if left-2-winW < minFileW {
		winW = max(left-2-minFileW, 0)
	}
	fileW := max(left-2-winW, 0)

	file := "▸ " + strings.TrimSpace(st.FileName)
	if strings.TrimSpace(st.FileName) == "" {
		file = "▸ (no file)"
	}
	if in := strings.TrimSpace(st.ModeInput); in != "" {
		file += " ▸ " + in
	}

	line := s.Pill.Render(pill) +
		s.Bar.Render(" ") +
		s.File.Render(padRight(fit(file, fileW), fileW)) +
		s.Bar.Render(" ") +
		s.Dim.Render(padRight(fit(winPick, winW), winW)) +
		s.Bar.Render(right)
	return fill(line, width, s.Bar)
}

func renderStatusBar(width int, st FooterState, s FooterStyles) string {
	legend := fit(st.Legend, width)
	msgW := width - lipgloss.Width(legend)
	line := s.Status.Render(padRight(fit(st.StatusMessage, msgW), msgW)) + s.Legend.Render(legend)
	return fill(line, width, s.Status)
}

// fill clips a styled line to width and pads it out in the bar style.
func fill(line string, width int, bar lipgloss.Style) string {
	line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	if n := lipgloss.Width(line); n < width {
		line += bar.Render(strings.Repeat(" ", width-n))
	}
	return line
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdFind:
		return "FIND"
	default:
		return "VIEW"
	}
}

// fit truncates plain text to w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return truncate.String(s, uint(w))
}

func padRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if cur := lipgloss.Width(s); cur < w {
		return s + strings.Repeat(" ", w-cur)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
