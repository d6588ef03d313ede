/*Package binning maps 3D positions onto discrete bin indices. An Axis bins a
single coordinate with either clamping or periodic boundaries, and a Utility
composes up to three axes into a lookup from position to bin-index triple,
optionally in a transformed reference frame.
*/
package binning

import (
	"github.com/trackgeom/surfarray/geom"
)

// Value selects the coordinate a position is binned by.
type Value int

const (
	X Value = iota
	Y
	Z
	R
	Phi
)

// Of projects p onto the binning coordinate.
func (val Value) Of(p geom.Vec) float64 {
	switch val {
	case X:
		return p[0]
	case Y:
		return p[1]
	case Z:
		return p[2]
	case R:
		return p.Perp()
	default:
		return p.Phi()
	}
}

func (val Value) String() string {
	switch val {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case R:
		return "r"
	default:
		return "phi"
	}
}
