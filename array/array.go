/*Package array holds binned grids of detector surfaces. A SurfaceArray pairs
a filled grid with the binning utility that built it and answers position
and neighbourhood lookups in O(1).
*/
package array

import (
	"fmt"

	"github.com/trackgeom/surfarray/binning"
	"github.com/trackgeom/surfarray/geom"
	"github.com/trackgeom/surfarray/surface"
)

// Grid is a 3D container of surface slots indexed as [i2][i1][i0], with
// axis 0 the fastest varying. A nil slot is an empty bin. Cylinder and disc
// layers use only two axes, so their grids have a singleton third dimension.
type Grid [][][]surface.Surface

// NewGrid returns an empty grid with the given extents, n0 fastest varying.
func NewGrid(n2, n1, n0 int) Grid {
	g := make(Grid, n2)
	for i2 := range g {
		g[i2] = make([][]surface.Surface, n1)
		for i1 := range g[i2] {
			g[i2][i1] = make([]surface.Surface, n0)
		}
	}
	return g
}

// At returns the slot for a bin-index triple, index order (i0, i1, i2).
func (g Grid) At(t [3]int) surface.Surface {
	return g[t[2]][t[1]][t[0]]
}

// Set fills the slot for a bin-index triple, index order (i0, i1, i2).
func (g Grid) Set(t [3]int, s surface.Surface) {
	g[t[2]][t[1]][t[0]] = s
}

// SurfaceArray is an immutable binned array of surfaces. It does not own
// the surfaces it references.
type SurfaceArray struct {
	grid Grid
	util *binning.Utility
}

// New wraps a grid and the utility that indexed it. The grid extents must
// match the utility's bin counts in every dimension.
func New(grid Grid, util *binning.Utility) (*SurfaceArray, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("array: empty grid")
	}
	if len(grid) != util.Bins(2) || len(grid[0]) != util.Bins(1) ||
		len(grid[0][0]) != util.Bins(0) {
		return nil, fmt.Errorf(
			"array: grid extents (%d, %d, %d) do not match bin counts (%d, %d, %d)",
			len(grid[0][0]), len(grid[0]), len(grid),
			util.Bins(0), util.Bins(1), util.Bins(2))
	}
	return &SurfaceArray{grid: grid, util: util}, nil
}

// BinUtility returns the utility the array was built with.
func (a *SurfaceArray) BinUtility() *binning.Utility {
	return a.util
}

// ObjectGrid returns the underlying grid.
func (a *SurfaceArray) ObjectGrid() Grid {
	return a.grid
}

// Object returns the surface stored in the bin containing p, or nil if that
// bin is empty.
func (a *SurfaceArray) Object(p geom.Vec) surface.Surface {
	return a.grid.At(a.util.BinTriple(p))
}

// ObjectCluster returns the occupied surfaces in the box neighbourhood of a
// bin-index triple: all bins within one step along every axis, the center
// bin included. Closed axes wrap, so the first and last bin of a periodic
// axis are adjacent. A surface stored in several of those bins is reported
// once per bin.
func (a *SurfaceArray) ObjectCluster(t [3]int) []surface.Surface {
	var cluster []surface.Surface
	for _, i2 := range a.util.NeighbourRange(2, t[2]) {
		for _, i1 := range a.util.NeighbourRange(1, t[1]) {
			for _, i0 := range a.util.NeighbourRange(0, t[0]) {
				if s := a.grid[i2][i1][i0]; s != nil {
					cluster = append(cluster, s)
				}
			}
		}
	}
	return cluster
}

// Surfaces returns the distinct surfaces stored in the array, in bin-index
// order of first occurrence.
func (a *SurfaceArray) Surfaces() []surface.Surface {
	var out []surface.Surface
	seen := map[surface.Surface]bool{}
	for _, plane := range a.grid {
		for _, row := range plane {
			for _, s := range row {
				if s != nil && !seen[s] {
					seen[s] = true
					out = append(out, s)
				}
			}
		}
	}
	return out
}
