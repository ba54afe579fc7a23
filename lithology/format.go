package lithology

import (
	"bufio"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Parse reads the editor syntax, one class per line:
//
//	<value> <color> [label...]          value map entry
//	<min> <max> <color> [label...]      range map entry
//
// Blank lines and lines starting with # are ignored.
func Parse(text string) (Config, error) {
	var cfg Config
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return Config{}, fmt.Errorf("line %d: want <value> <color> [label]", lineNo)
		}
		first, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Config{}, fmt.Errorf("line %d: %q is not a number", lineNo, fields[0])
		}

		if len(fields) >= 3 {
			if second, err := strconv.ParseFloat(fields[1], 64); err == nil {
				if first >= second {
					return Config{}, fmt.Errorf("line %d: range min must be below max", lineNo)
				}
				cfg.Ranges = append(cfg.Ranges, Range{
					Min:   first,
					Max:   second,
					Color: fields[2],
					Label: labelFrom(fields[3:], fields[2]),
				})
				continue
			}
		}

		if cfg.Values == nil {
			cfg.Values = ValueMap{}
		}
		cfg.Values[int(math.Round(first))] = Class{
			Color: fields[1],
			Label: labelFrom(fields[2:], fields[1]),
		}
	}
	if err := sc.Err(); err != nil {
		return Config{}, err
	}
	if cfg.IsEmpty() {
		return Config{}, fmt.Errorf("no classes defined")
	}
	return cfg, nil
}

func labelFrom(fields []string, fallback string) string {
	if len(fields) == 0 {
		return fallback
	}
	return strings.Join(fields, " ")
}

// Format writes cfg back in the editor syntax.
func Format(cfg Config) string {
	var b strings.Builder
	for _, r := range cfg.Ranges {
		fmt.Fprintf(&b, "%s %s %s %s\n", fmtNum(r.Min), fmtNum(r.Max), r.Color, r.Label)
	}
	keys := make([]int, 0, len(cfg.Values))
	for k := range cfg.Values {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		c := cfg.Values[k]
		fmt.Fprintf(&b, "%d %s %s\n", k, c.Color, c.Label)
	}
	return b.String()
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
