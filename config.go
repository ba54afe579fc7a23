package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-welllog/welllog"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

const appName = "sfwell"

// Config is the optional YAML file. Flags override it.
type Config struct {
	AnalysisURL      string                         `yaml:"analysis_url"`
	GestureKey       string                         `yaml:"gesture_key"`
	PointThreshold   float64                        `yaml:"point_threshold"`
	SessionStore     string                         `yaml:"session_store"`
	TrackDefaults    map[string]welllog.TrackConfig `yaml:"track_defaults"`
	LithologyPalette []string                       `yaml:"lithology_palette"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.yaml")
}

// loadConfig reads path. A missing file is only an error when the user
// asked for it explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := parseGestureKey(cfg.GestureKey); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// trackDefaults layers the file's track_defaults over the built-in table.
func (c Config) trackDefaults() map[string]welllog.TrackConfig {
	out := make(map[string]welllog.TrackConfig, len(welllog.StaticDefaults)+len(c.TrackDefaults))
	for k, v := range welllog.StaticDefaults {
		out[k] = v
	}
	for k, v := range c.TrackDefaults {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// gestureKey is the modifier that arms depth picking with the mouse.
type gestureKey int

const (
	gestureAlt gestureKey = iota
	gestureCtrl
	gestureShift
)

func parseGestureKey(s string) (gestureKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alt":
		return gestureAlt, nil
	case "ctrl":
		return gestureCtrl, nil
	case "shift":
		return gestureShift, nil
	default:
		return gestureAlt, fmt.Errorf("gesture_key %q: want alt, ctrl or shift", s)
	}
}

func (g gestureKey) String() string {
	switch g {
	case gestureCtrl:
		return "ctrl"
	case gestureShift:
		return "shift"
	default:
		return "alt"
	}
}

func (g gestureKey) held(msg tea.MouseMsg) bool {
	switch g {
	case gestureCtrl:
		return msg.Ctrl
	case gestureShift:
		return msg.Shift
	default:
		return msg.Alt
	}
}
