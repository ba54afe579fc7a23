package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor     = "#c0c0c0"
	separatorFGColor   = "#444444"
	dialogBackdropBG   = "236"
	rulerHeaderFGColor = "#8a8a8a"
)

var (
	// Styles
	separatorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(separatorFGColor))
	rulerHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(rulerHeaderFGColor))
	emptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor)).Italic(true)

	separator = "│"
)
