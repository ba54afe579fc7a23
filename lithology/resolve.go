// Package lithology turns raw sample values into coloured, labelled
// classes for tracks drawn in lithology mode.
package lithology

import "math"

type Class struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Range covers Min <= v < Max.
type Range struct {
	Min   float64 `json:"minValue"`
	Max   float64 `json:"maxValue"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

func (r Range) Class() Class { return Class{Color: r.Color, Label: r.Label} }

func (r Range) Contains(v float64) bool { return v >= r.Min && v < r.Max }

// ValueMap classifies on the rounded value.
type ValueMap map[int]Class

// RangeMap is ordered; the first matching range wins.
type RangeMap []Range

// Config holds one of the two map kinds. Ranges take precedence when both
// are set.
type Config struct {
	Values ValueMap `json:"values,omitempty"`
	Ranges RangeMap `json:"ranges,omitempty"`
}

func (c Config) IsEmpty() bool { return len(c.Values) == 0 && len(c.Ranges) == 0 }

// Fallback is used for values no map covers.
var Fallback = Class{Color: "#808080", Label: "Unknown"}

// Resolve maps v to its class.
func Resolve(v float64, cfg Config) Class {
	if math.IsNaN(v) {
		return Fallback
	}
	for _, r := range cfg.Ranges {
		if r.Contains(v) {
			return r.Class()
		}
	}
	if c, ok := cfg.Values[int(math.Round(v))]; ok {
		return c
	}
	return Fallback
}
