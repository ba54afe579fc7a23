package lithology

import (
	"testing"

	"github.com/andareed/siftly-welllog/welllog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRangesAreHalfOpen(t *testing.T) {
	cfg := Config{Ranges: RangeMap{
		{Min: 0, Max: 1, Color: "#ff0000", Label: "A"},
		{Min: 1, Max: 2, Color: "#00ff00", Label: "B"},
	}}
	assert.Equal(t, "A", Resolve(0.999, cfg).Label)
	assert.Equal(t, "B", Resolve(1.0, cfg).Label)
	assert.Equal(t, Fallback, Resolve(-0.1, cfg))
	assert.Equal(t, Fallback, Resolve(2.0, cfg))
}

func TestResolveFirstRangeWins(t *testing.T) {
	cfg := Config{Ranges: RangeMap{
		{Min: 0, Max: 10, Label: "wide"},
		{Min: 2, Max: 3, Label: "narrow"},
	}}
	assert.Equal(t, "wide", Resolve(2.5, cfg).Label)
}

func TestResolveValueMapRounds(t *testing.T) {
	cfg := Config{Values: ValueMap{
		1: {Color: "#f5d76e", Label: "Sandstone"},
		2: {Color: "#7f8c8d", Label: "Shale"},
	}}
	assert.Equal(t, "Sandstone", Resolve(1.4, cfg).Label)
	assert.Equal(t, "Shale", Resolve(1.5, cfg).Label)
	assert.Equal(t, Fallback, Resolve(7, cfg))
}

func TestResolveRangesBeforeValues(t *testing.T) {
	cfg := Config{
		Values: ValueMap{1: {Label: "value"}},
		Ranges: RangeMap{{Min: 0.5, Max: 1.5, Label: "range"}},
	}
	assert.Equal(t, "range", Resolve(1, cfg).Label)
}

func TestAutoRangesCoverObservedValuesDisjointly(t *testing.T) {
	vals := welllog.Values(3, 1, 1.2, 2, 3.4, 7)
	vals = append(vals, welllog.Null)
	ranges := AutoRanges(vals)

	require.Len(t, ranges, 4)
	assert.Equal(t, 0.5, ranges[0].Min)
	assert.Equal(t, 1.5, ranges[0].Max)
	assert.Equal(t, 1.5, ranges[1].Min)
	assert.Equal(t, 2.5, ranges[1].Max)
	assert.Equal(t, 5.0, ranges[2].Max)
	assert.Equal(t, 7.5, ranges[3].Max)

	for _, v := range vals {
		if !v.Valid {
			continue
		}
		hits := 0
		for _, r := range ranges {
			if r.Contains(v.V) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "value %v", v.V)
	}
}

func TestParseAndFormat(t *testing.T) {
	text := `
# sand / shale
0 1 #f5d76e Clean sand
1 2 #7f8c8d Shale
3 #3498db Limestone
`
	cfg, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, cfg.Ranges, 2)
	assert.Equal(t, "Clean sand", cfg.Ranges[0].Label)
	assert.Equal(t, Class{Color: "#3498db", Label: "Limestone"}, cfg.Values[3])

	again, err := Parse(Format(cfg))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"", "# only comments", "abc #fff", "2 1 #fff bad", "5"} {
		_, err := Parse(text)
		assert.Error(t, err, "input %q", text)
	}
}
