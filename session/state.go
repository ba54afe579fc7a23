// Package session serializes the viewer's configuration: track order and
// visibility, scale overrides, lithology setup and the depth window.
package session

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/welllog"
)

const stateVersion = 1

// State is a view snapshot. Every field is optional: nil means "absent" and
// is left untouched on restore, while an empty non-nil value is applied.
type State struct {
	TrackOrder          []string                    `json:"trackOrder"`
	HiddenTracks        []string                    `json:"hiddenTracks"`
	CustomScales        map[string]welllog.Scale    `json:"customScales"`
	LithologyModeTracks []string                    `json:"lithologyModeTracks"`
	LithologyConfigs    map[string]lithology.Config `json:"lithologyConfigs"`
	ViewRange           *depthaxis.Window           `json:"viewRange"`
}

type stateDTO struct {
	Version int `json:"version"`
	State
}

// Set turns a membership map into the sorted slice form used on the wire.
// A nil map stays nil.
func Set(m map[string]bool) []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Members is the inverse of Set.
func Members(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

// Encode renders s as indented, versioned JSON.
func Encode(s State) ([]byte, error) {
	data, err := json.MarshalIndent(stateDTO{Version: stateVersion, State: s}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

// Decode parses a versioned snapshot. A missing version is read as the
// current one.
func Decode(data []byte) (State, error) {
	var dto stateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return State{}, fmt.Errorf("decode session: %w", err)
	}
	if dto.Version != 0 && dto.Version != stateVersion {
		return State{}, fmt.Errorf("session version %d not supported (want %d)", dto.Version, stateVersion)
	}
	return dto.State, nil
}
