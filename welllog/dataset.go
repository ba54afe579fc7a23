package welllog

import (
	"math"
	"sort"
	"strings"

	"github.com/andareed/siftly-welllog/depthaxis"
	"gonum.org/v1/gonum/stat"
)

// CurveInfo carries the per-curve header details from the log file.
type CurveInfo struct {
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// Dataset is the whole working set of the viewer. It is replaced wholesale
// on every load.
type Dataset struct {
	Source     string
	DepthCurve string
	Depth      []float64
	Names      []string // curve names in file order, depth curve excluded
	Curves     map[string][]Value
	Info       map[string]CurveInfo
}

var depthMnemonics = []string{"DEPT", "DEPTH", "MD", "TVD"}

// IsDepthName reports whether name is one of the usual depth mnemonics.
func IsDepthName(name string) bool {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, d := range depthMnemonics {
		if n == d {
			return true
		}
	}
	return false
}

// Valid is false for empty or length-mismatched data. Invalid datasets are
// shown as "no data" instead of being plotted.
func (ds *Dataset) Valid() bool {
	if ds == nil || len(ds.Depth) == 0 {
		return false
	}
	for _, name := range ds.Names {
		if len(ds.Curves[name]) != len(ds.Depth) {
			return false
		}
	}
	return true
}

// Extent is the depth range covered by the dataset.
func (ds *Dataset) Extent() depthaxis.Window {
	if ds == nil || len(ds.Depth) == 0 {
		return depthaxis.Window{}
	}
	lo, hi := ds.Depth[0], ds.Depth[0]
	for _, d := range ds.Depth[1:] {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return depthaxis.Window{Start: lo, End: hi}
}

// Has reports whether the dataset has a non-depth curve called name.
func (ds *Dataset) Has(name string) bool {
	if ds == nil {
		return false
	}
	_, ok := ds.Curves[name]
	return ok
}

func (ds *Dataset) Unit(name string) string {
	if ds == nil || ds.Info == nil {
		return ""
	}
	return ds.Info[name].Unit
}

// Step is the median spacing between samples.
func (ds *Dataset) Step() float64 {
	if ds == nil || len(ds.Depth) < 2 {
		return 0
	}
	gaps := make([]float64, 0, len(ds.Depth)-1)
	for i := 1; i < len(ds.Depth); i++ {
		gaps = append(gaps, math.Abs(ds.Depth[i]-ds.Depth[i-1]))
	}
	sort.Float64s(gaps)
	return stat.Quantile(0.5, stat.Empirical, gaps, nil)
}

// NewDataset builds a dataset from a depth column and named curves. The
// name order is kept as given.
func NewDataset(depth []float64, names []string, curves map[string][]Value) *Dataset {
	ds := &Dataset{
		DepthCurve: "DEPT",
		Depth:      depth,
		Curves:     make(map[string][]Value, len(names)),
		Info:       map[string]CurveInfo{},
	}
	skip := ""
	for _, n := range names {
		if IsDepthName(n) {
			ds.DepthCurve, skip = n, n
			break
		}
	}
	for _, n := range names {
		if n == skip {
			continue
		}
		ds.Names = append(ds.Names, n)
		ds.Curves[n] = curves[n]
	}
	return ds
}
