package main

import (
	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/session"
	"github.com/andareed/siftly-welllog/welllog"
)

// dataState is everything a session snapshot describes, plus the dataset
// it applies to.
type dataState struct {
	ds           *welllog.Dataset
	path         string
	order        []string                 // every dataset curve, display order
	hidden       map[string]bool          // by curve name
	scales       map[string]welllog.Scale // by upper-cased curve name
	lithoTracks  map[string]bool
	lithoConfigs map[string]lithology.Config
	window       depthaxis.Window // the one authoritative view window
	extent       depthaxis.Window

	// restore waiting for a dataset to arrive
	pendingRestore *session.State
}

func newDataState() dataState {
	return dataState{
		hidden:       map[string]bool{},
		scales:       map[string]welllog.Scale{},
		lithoTracks:  map[string]bool{},
		lithoConfigs: map[string]lithology.Config{},
	}
}

func (d *dataState) loaded() bool { return d.ds != nil }
