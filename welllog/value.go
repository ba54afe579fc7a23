// Package welllog holds the in-memory curve dataset handed to the viewer,
// per-track scale resolution and depth interpolation.
package welllog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is one curve sample. Valid is false for a null sample; nulls are
// gaps and are never read as zero.
type Value struct {
	V     float64
	Valid bool
}

func Some(v float64) Value { return Value{V: v, Valid: true} }

var Null = Value{}

func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return strconv.FormatFloat(v.V, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*v = Null
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Some(f)
	return nil
}

// Values wraps plain floats; handy for tests and synthetic data.
func Values(fs ...float64) []Value {
	out := make([]Value, len(fs))
	for i, f := range fs {
		out[i] = Some(f)
	}
	return out
}
