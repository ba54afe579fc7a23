package main

import (
	"github.com/andareed/siftly-welllog/welllog"
)

const (
	rulerWidth     = 8
	headerRows     = 2
	footerRows     = 2
	separatorWidth = 1
)

type TrackRole int

const (
	RoleCurve TrackRole = iota
	RoleLithology
)

func roleFor(mode welllog.TrackMode) TrackRole {
	if mode == welllog.ModeLithology {
		return RoleLithology
	}
	return RoleCurve
}

func defaultMinWidthForRole(r TrackRole) int {
	if r == RoleLithology {
		return 8
	}
	return 12
}

func defaultWeightForRole(r TrackRole) float64 {
	if r == RoleLithology {
		return 0.6
	}
	return 1.0
}

// trackColumn is one laid-out track: its width and left edge on screen.
type trackColumn struct {
	Name     string
	Role     TrackRole
	MinWidth int
	Weight   float64
	Width    int
	X        int
}

// fitColumns keeps the leading columns whose minimum widths (plus
// separators) fit in totalWidth. At least one column is kept.
func fitColumns(cols []trackColumn, totalWidth int) []trackColumn {
	used := 0
	for i := range cols {
		used += cols[i].MinWidth + separatorWidth
		if used > totalWidth && i > 0 {
			return cols[:i]
		}
	}
	return cols
}

// layoutColumns shares totalWidth out by weight on top of each column's
// minimum, then assigns left edges starting at x0.
func layoutColumns(cols []trackColumn, totalWidth, x0 int) []trackColumn {
	if totalWidth <= 0 || len(cols) == 0 {
		return cols
	}
	avail := totalWidth - separatorWidth*len(cols)

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= avail {
		for i := range cols {
			cols[i].Width = cols[i].MinWidth
			if cols[i].Width > avail {
				cols[i].Width = max(avail, 1)
			}
		}
	} else {
		remaining := avail - minSum
		given := 0
		for i := range cols {
			extra := 0
			if weightSum > 0 {
				extra = int(float64(remaining) * (cols[i].Weight / weightSum))
			}
			cols[i].Width = cols[i].MinWidth + extra
			given += extra
		}
		// rounding leftovers go to the last column
		cols[len(cols)-1].Width += remaining - given
	}

	x := x0
	for i := range cols {
		x += separatorWidth
		cols[i].X = x
		x += cols[i].Width
	}
	return cols
}

type hitRegion int

const (
	regionNone hitRegion = iota
	regionRuler
	regionHeader
	regionBody
)

type box struct{ x, y, w, h int }

func (b box) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// geometry is the screen layout for one frame.
type geometry struct {
	width, height int
	bodyTop       int
	bodyHeight    int
	cols          []trackColumn
}

func (g geometry) bodyRow(y int) (int, bool) {
	row := y - g.bodyTop
	return row, row >= 0 && row < g.bodyHeight
}

// hit maps a terminal cell to a region and, for track regions, the track.
func (g geometry) hit(x, y int) (hitRegion, string) {
	if y < 0 || y >= g.bodyTop+g.bodyHeight {
		return regionNone, ""
	}
	if x >= 0 && x < rulerWidth {
		if y >= g.bodyTop {
			return regionRuler, ""
		}
		return regionNone, ""
	}
	for _, c := range g.cols {
		if x >= c.X && x < c.X+c.Width {
			if y < g.bodyTop {
				return regionHeader, c.Name
			}
			return regionBody, c.Name
		}
	}
	return regionNone, ""
}

func (g geometry) column(name string) (trackColumn, bool) {
	for _, c := range g.cols {
		if c.Name == name {
			return c, true
		}
	}
	return trackColumn{}, false
}
