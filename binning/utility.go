package binning

import (
	"fmt"

	"github.com/trackgeom/surfarray/geom"
)

// Utility composes up to three axes into a lookup from 3D position to
// bin-index triple. Axis 0 is the fastest varying. The axis order is fixed
// at construction and is the same order used by every index and center
// query. An optional transform places the binning in a local reference
// frame: positions are pulled back into that frame before they are binned.
type Utility struct {
	axes []Axis
	inv  *geom.Transform // inverse of the frame transform, nil if identity
}

// NewUtility composes the given axes. At most three axes are supported.
func NewUtility(trans *geom.Transform, axes ...Axis) (*Utility, error) {
	if len(axes) == 0 || len(axes) > 3 {
		return nil, fmt.Errorf("binning: utility needs 1 to 3 axes, got %d",
			len(axes))
	}

	u := &Utility{axes: axes}
	if trans != nil {
		inv := trans.Inverse()
		u.inv = &inv
	}
	return u, nil
}

// Dimensions returns the number of composed axes.
func (u *Utility) Dimensions() int {
	return len(u.axes)
}

// Axis returns the axis along dimension d.
func (u *Utility) Axis(d int) Axis {
	return u.axes[d]
}

// Bins returns the bin count along dimension d. Dimensions beyond the
// composed axes report a single bin.
func (u *Utility) Bins(d int) int {
	if d >= len(u.axes) {
		return 1
	}
	return u.axes[d].Bins
}

// BinTriple returns the bin indices of p along each dimension. Dimensions
// beyond the composed axes map to index 0.
func (u *Utility) BinTriple(p geom.Vec) [3]int {
	if u.inv != nil {
		p = u.inv.Apply(p)
	}

	var t [3]int
	for d, a := range u.axes {
		t[d] = a.Search(a.Val.Of(p))
	}
	return t
}

// CenterValue returns the central value of bin i along dimension d, in the
// utility's local frame.
func (u *Utility) CenterValue(d, i int) float64 {
	return u.axes[d].Center(i)
}

// NeighbourRange returns the indices within one bin step of index i along
// dimension d, honouring the axis boundary option. Dimensions beyond the
// composed axes have only index 0.
func (u *Utility) NeighbourRange(d, i int) []int {
	if d >= len(u.axes) {
		return []int{0}
	}
	return u.axes[d].NeighbourRange(i)
}
