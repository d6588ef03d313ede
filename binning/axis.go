package binning

import (
	"fmt"
	"math"
)

// Option sets the boundary behaviour of an axis.
type Option int

const (
	// Open clamps out-of-range values to the edge bins.
	Open Option = iota
	// Closed identifies Max with Min, so the axis wraps periodically. Used
	// for azimuthal angles.
	Closed
)

// Axis is a uniformly binned value range [Min, Max) with Bins bins.
type Axis struct {
	Bins     int
	Min, Max float64
	Opt      Option
	Val      Value
}

// NewAxis returns an axis binning val over [min, max) with the given
// boundary option. The bin count must be at least 1 and the range must not
// be degenerate.
func NewAxis(bins int, min, max float64, opt Option, val Value) (Axis, error) {
	if bins < 1 {
		return Axis{}, fmt.Errorf("binning: %s axis needs at least 1 bin, got %d",
			val, bins)
	}
	if max <= min {
		return Axis{}, fmt.Errorf("binning: %s axis range [%g, %g) is degenerate",
			val, min, max)
	}
	return Axis{Bins: bins, Min: min, Max: max, Opt: opt, Val: val}, nil
}

// Step returns the width of a single bin.
func (a Axis) Step() float64 {
	return (a.Max - a.Min) / float64(a.Bins)
}

// Search returns the bin index of x. Open axes clamp out-of-range values to
// the edge bins, closed axes wrap them by the axis period.
func (a Axis) Search(x float64) int {
	if a.Opt == Closed {
		width := a.Max - a.Min
		rel := math.Mod(x-a.Min, width)
		if rel < 0 {
			rel += width
		}
		i := int(rel / a.Step())
		if i == a.Bins { // rel == width up to rounding
			i = 0
		}
		return i
	}

	if x <= a.Min {
		return 0
	}
	i := int((x - a.Min) / a.Step())
	if i >= a.Bins {
		i = a.Bins - 1
	}
	return i
}

// Center returns the central value of bin i.
func (a Axis) Center(i int) float64 {
	return a.Min + (float64(i)+0.5)*a.Step()
}

// NeighbourRange returns the indices of the bins within one step of bin i,
// including i itself. Closed axes wrap around the range boundary, so the
// first and last bin are adjacent. Indices are unique but not sorted.
func (a Axis) NeighbourRange(i int) []int {
	if a.Opt == Closed {
		out := make([]int, 0, 3)
		for _, j := range [3]int{i - 1, i, i + 1} {
			j = (j + a.Bins) % a.Bins
			if !contains(out, j) {
				out = append(out, j)
			}
		}
		return out
	}

	lo, hi := i-1, i+1
	if lo < 0 {
		lo = 0
	}
	if hi > a.Bins-1 {
		hi = a.Bins - 1
	}
	out := make([]int, 0, 3)
	for j := lo; j <= hi; j++ {
		out = append(out, j)
	}
	return out
}

func contains(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
