package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		return m.jumpToDepthText(m.ui.command.buf)
	case CmdFind:
		return m.findTrack(m.ui.command.buf)
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.ui.command.buf) > 0 {
			m.ui.command.buf = m.ui.command.buf[:len(m.ui.command.buf)-1]
		}
		return m, nil
	}

	if len(msg.Runes) == 1 {
		m.ui.command.buf += string(msg.Runes[0])
	}
	return m, nil
}

// findTrack focuses the first visible track whose name starts with q,
// case-insensitively.
func (m *model) findTrack(q string) tea.Cmd {
	q = strings.ToUpper(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	for i, name := range m.visibleTracks() {
		if strings.HasPrefix(strings.ToUpper(name), q) {
			m.ui.focus = i
			m.ensureFocusVisible()
			return nil
		}
	}
	return m.startNotice("No visible track matches "+q, "warn", noticeDuration)
}
