package welllog

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

type TrackMode int

const (
	ModeCurve TrackMode = iota
	ModeLithology
)

func (m TrackMode) String() string {
	if m == ModeLithology {
		return "lithology"
	}
	return "curve"
}

// TrackConfig is how one track is drawn. Min > Max is a valid inverted
// domain (neutron porosity, sonic) and is kept as is.
type TrackConfig struct {
	Color     string    `yaml:"color"`
	FillColor string    `yaml:"fill_color,omitempty"`
	Min       float64   `yaml:"min"`
	Max       float64   `yaml:"max"`
	LogScale  bool      `yaml:"log_scale"`
	Unit      string    `yaml:"unit"`
	Mode      TrackMode `yaml:"-"`
}

// Scale is a user-set domain override.
type Scale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate rejects empty or reversed manual input.
func (s Scale) Validate() error {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return fmt.Errorf("min and max must be numbers")
	}
	if s.Min >= s.Max {
		return fmt.Errorf("min (%g) must be less than max (%g)", s.Min, s.Max)
	}
	return nil
}

const (
	clipLow     = 0.01
	clipHigh    = 0.99
	clipMargin  = 0.05
	fallbackMin = 0
	fallbackMax = 1
)

// StaticDefaults are the conventional track setups, keyed by uppercase
// mnemonic.
var StaticDefaults = map[string]TrackConfig{
	"GR":   {Color: "#22c55e", FillColor: "#14532d", Min: 0, Max: 150, Unit: "API"},
	"SP":   {Color: "#3b82f6", Min: -80, Max: 20, Unit: "mV"},
	"CAL":  {Color: "#a3a3a3", Min: 6, Max: 16, Unit: "in"},
	"CALI": {Color: "#a3a3a3", Min: 6, Max: 16, Unit: "in"},
	"RT":   {Color: "#ef4444", Min: 0.2, Max: 2000, LogScale: true, Unit: "ohm.m"},
	"RD":   {Color: "#ef4444", Min: 0.2, Max: 2000, LogScale: true, Unit: "ohm.m"},
	"RLLD": {Color: "#ef4444", Min: 0.2, Max: 2000, LogScale: true, Unit: "ohm.m"},
	"RS":   {Color: "#f97316", Min: 0.2, Max: 2000, LogScale: true, Unit: "ohm.m"},
	"RLLS": {Color: "#f97316", Min: 0.2, Max: 2000, LogScale: true, Unit: "ohm.m"},
	"RHOB": {Color: "#e11d48", Min: 1.95, Max: 2.95, Unit: "g/cm3"},
	"DEN":  {Color: "#e11d48", Min: 1.95, Max: 2.95, Unit: "g/cm3"},
	"NPHI": {Color: "#06b6d4", Min: 0.45, Max: -0.15, Unit: "v/v"},
	"CNL":  {Color: "#06b6d4", Min: 0.45, Max: -0.15, Unit: "v/v"},
	"DT":   {Color: "#8b5cf6", Min: 140, Max: 40, Unit: "us/ft"},
	"AC":   {Color: "#8b5cf6", Min: 140, Max: 40, Unit: "us/ft"},
	"PE":   {Color: "#eab308", Min: 0, Max: 10, Unit: "b/e"},
}

var dynamicPalette = []string{
	"#f59e0b", "#10b981", "#3b82f6", "#ec4899",
	"#84cc16", "#06b6d4", "#f97316", "#a78bfa",
}

// DataDriven derives a domain from the 1st and 99th percentile of the valid
// samples, widened by 5% of the span on both sides.
func DataDriven(name string, values []Value) TrackConfig {
	cfg := TrackConfig{Color: paletteColor(name), Min: fallbackMin, Max: fallbackMax}

	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if v.Valid && !math.IsNaN(v.V) && !math.IsInf(v.V, 0) {
			sorted = append(sorted, v.V)
		}
	}
	if len(sorted) == 0 {
		return cfg
	}
	sort.Float64s(sorted)

	lo := stat.Quantile(clipLow, stat.Empirical, sorted, nil)
	hi := stat.Quantile(clipHigh, stat.Empirical, sorted, nil)
	span := hi - lo
	if span == 0 {
		span = math.Abs(lo) * 0.1
		if span == 0 {
			span = 1
		}
	}
	cfg.Min = lo - span*clipMargin
	cfg.Max = hi + span*clipMargin
	return cfg
}

// Resolve picks the config for a track: static default, else data driven,
// then the user's min/max override if there is one.
func Resolve(name string, values []Value, defaults map[string]TrackConfig, overrides map[string]Scale) TrackConfig {
	key := strings.ToUpper(name)
	cfg, ok := defaults[key]
	if !ok {
		cfg = DataDriven(name, values)
	}
	if s, ok := overrides[key]; ok {
		cfg.Min, cfg.Max = s.Min, s.Max
	}
	return cfg
}

func paletteColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToUpper(name)))
	return dynamicPalette[int(h.Sum32()%uint32(len(dynamicPalette)))]
}
