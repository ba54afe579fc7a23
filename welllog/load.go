package welllog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// NullSentinel is the customary LAS null value.
const NullSentinel = -999.25

// LoadFile reads a dataset produced by the log parser, either as the
// parser's JSON output or as CSV.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	var ds *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		ds, err = ReadJSON(f)
	case ".csv":
		ds, err = ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .json or .csv)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

type parsedLog struct {
	Data      json.RawMessage      `json:"data"`
	Curves    json.RawMessage      `json:"curves"`
	CurveInfo map[string]CurveInfo `json:"curve_info"`
}

// ReadJSON accepts {"curves": {...}, "curve_info": {...}} or the same object
// wrapped in {"data": ...}. Curve order follows the file.
func ReadJSON(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc parsedLog
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error reading JSON: %w", err)
	}
	if len(doc.Curves) == 0 && len(doc.Data) > 0 {
		return ReadJSON(bytes.NewReader(doc.Data))
	}
	if len(doc.Curves) == 0 {
		return nil, fmt.Errorf("no curves object")
	}

	names, curves, err := decodeOrderedCurves(doc.Curves)
	if err != nil {
		return nil, err
	}
	ds, err := assemble(names, curves)
	if err != nil {
		return nil, err
	}
	if doc.CurveInfo != nil {
		ds.Info = doc.CurveInfo
	}
	return ds, nil
}

// decodeOrderedCurves walks the curves object token by token because a Go
// map would lose the file's curve order.
func decodeOrderedCurves(raw json.RawMessage) ([]string, map[string][]Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("curves must be an object")
	}
	var names []string
	curves := make(map[string][]Value)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}
		var vals []Value
		if err := dec.Decode(&vals); err != nil {
			return nil, nil, fmt.Errorf("curve %q: %w", name, err)
		}
		if _, dup := curves[name]; !dup {
			names = append(names, name)
		}
		curves[name] = vals
	}
	return names, curves, nil
}

// ReadCSV reads a header row of mnemonics followed by samples. Empty cells
// and the LAS null sentinel become nulls.
func ReadCSV(r io.Reader) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV has no rows")
	}
	header := records[0]
	names := make([]string, len(header))
	curves := make(map[string][]Value, len(header))
	for i, h := range header {
		names[i] = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		curves[names[i]] = make([]Value, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		for i, name := range names {
			cell := ""
			if i < len(rec) {
				cell = strings.TrimSpace(rec[i])
			}
			curves[name] = append(curves[name], parseCell(cell))
		}
	}
	return assemble(names, curves)
}

func parseCell(cell string) Value {
	if cell == "" {
		return Null
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f == NullSentinel {
		return Null
	}
	return Some(f)
}

// assemble picks the depth curve (first depth mnemonic, else the first
// column) and drops rows whose depth is null.
func assemble(names []string, curves map[string][]Value) (*Dataset, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no curves")
	}
	depthName := names[0]
	for _, n := range names {
		if IsDepthName(n) {
			depthName = n
			break
		}
	}

	rawDepth := curves[depthName]
	keep := make([]int, 0, len(rawDepth))
	depth := make([]float64, 0, len(rawDepth))
	for i, d := range rawDepth {
		if d.Valid {
			keep = append(keep, i)
			depth = append(depth, d.V)
		}
	}

	ds := &Dataset{
		DepthCurve: depthName,
		Depth:      depth,
		Curves:     make(map[string][]Value, len(names)),
		Info:       map[string]CurveInfo{},
	}
	for _, n := range names {
		if n == depthName {
			continue
		}
		src := curves[n]
		vals := make([]Value, 0, len(keep))
		for _, i := range keep {
			if i < len(src) {
				vals = append(vals, src[i])
			}
		}
		ds.Names = append(ds.Names, n)
		ds.Curves[n] = vals
	}
	return ds, nil
}
