package welllog

// ValueAt interpolates curve name at depth. It scans for the consecutive
// sample pair that brackets depth, in either local direction. A null on
// either side means no value: gaps are never bridged.
func (ds *Dataset) ValueAt(name string, depth float64) (float64, bool) {
	if ds == nil {
		return 0, false
	}
	vals, ok := ds.Curves[name]
	if !ok {
		return 0, false
	}
	return interpolate(ds.Depth, vals, depth)
}

func interpolate(depth []float64, vals []Value, target float64) (float64, bool) {
	n := len(depth)
	if len(vals) < n {
		n = len(vals)
	}
	for i := 0; i+1 < n; i++ {
		d1, d2 := depth[i], depth[i+1]
		lo, hi := d1, d2
		if lo > hi {
			lo, hi = hi, lo
		}
		if target < lo || target > hi {
			continue
		}
		v1, v2 := vals[i], vals[i+1]
		if !v1.Valid || !v2.Valid {
			return 0, false
		}
		if d2 == d1 {
			return v1.V, true
		}
		return v1.V + (target-d1)/(d2-d1)*(v2.V-v1.V), true
	}
	return 0, false
}
