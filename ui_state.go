package main

import "time"

type mode int

const (
	modeView mode = iota
	modeCommand
)

type headerDrag struct {
	from string
	over string
}

type click struct {
	at     time.Time
	region hitRegion
	track  string
}

type uiState struct {
	mode    mode
	command CommandInput

	noticeMsg  string
	noticeType string
	noticeSeq  int

	focus       int // index into visible tracks
	trackOffset int // first visible track drawn (horizontal scroll)

	gestureLatched bool
	drag           *headerDrag
	lastClick      click

	// popup anchor for the note dialog and the track menu
	anchorX, anchorY int
	anchored         bool
	menuBox          box

	analysisBusy bool
}
