package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdFind
)

type CommandInput struct {
	cmd Command
	buf string
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "depth: "
	case CmdFind:
		return "track: "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer.
func (m *model) activeCommandLine() string {
	return m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}
