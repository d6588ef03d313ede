/*Package builder constructs binned surface arrays for cylinder and disc
layers. Construction is a single synchronous pass: build the bin utility and
the bin-center matrix, project every surface into its bin, fill the bins
that received no surface with the nearest surface, then register the
neighbourhood between the physical elements behind adjacent bins.

Everything either succeeds as a whole or fails with an error before any
array is returned; a partially filled array is never handed to the caller.
*/
package builder

import (
	"errors"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/trackgeom/surfarray/array"
	"github.com/trackgeom/surfarray/binning"
	"github.com/trackgeom/surfarray/geom"
	"github.com/trackgeom/surfarray/surface"
)

var (
	// ErrNotSupported is returned by layouts that have no implementation.
	ErrNotSupported = errors.New("surface array layout not supported")

	// ErrNoSurfaces is returned when a layer is built from an empty
	// surface list.
	ErrNoSurfaces = errors.New("no input surfaces")
)

// OnCylinder builds a surface array for a cylindrical layer of radius r and
// half-length halfZ, binned in phi x z. The phi axis is closed (periodic),
// the z axis is open. trans optionally places the layer's reference frame
// in the global frame and may be nil.
func OnCylinder(
	surfs []surface.Surface,
	r, minPhi, maxPhi, halfZ float64,
	binsPhi, binsZ int,
	trans *geom.Transform,
) (*array.SurfaceArray, error) {
	if len(surfs) == 0 {
		return nil, fmt.Errorf("cylinder array: %w", ErrNoSurfaces)
	}
	if r <= 0 {
		return nil, fmt.Errorf("cylinder array: radius %g is not positive", r)
	}
	if halfZ <= 0 {
		return nil, fmt.Errorf("cylinder array: half-length %g is not positive",
			halfZ)
	}

	phiAx, err := binning.NewAxis(binsPhi, minPhi, maxPhi, binning.Closed,
		binning.Phi)
	if err != nil {
		return nil, fmt.Errorf("cylinder array: %w", err)
	}
	zAx, err := binning.NewAxis(binsZ, -halfZ, halfZ, binning.Open, binning.Z)
	if err != nil {
		return nil, fmt.Errorf("cylinder array: %w", err)
	}
	util, err := binning.NewUtility(trans, phiAx, zAx)
	if err != nil {
		return nil, fmt.Errorf("cylinder array: %w", err)
	}

	log.Printf("[builder] cylinder layer: grid in phi x z = %d x %d",
		binsPhi, binsZ)

	// Bin-center positions on the cylinder, mapped to the global frame.
	centers := make([][]geom.Vec, binsZ)
	for iz := range centers {
		z := zAx.Center(iz)
		centers[iz] = make([]geom.Vec, binsPhi)
		for iphi := range centers[iz] {
			sin, cos := math.Sincos(phiAx.Center(iphi))
			c := geom.Vec{r * cos, r * sin, z}
			if trans != nil {
				c = trans.Apply(c)
			}
			centers[iz][iphi] = c
		}
	}

	grid := array.NewGrid(1, binsZ, binsPhi)
	placeSurfaces(util, grid, surfs)
	completeBinning(centers, surfs, grid)

	sArray, err := array.New(grid, util)
	if err != nil {
		return nil, fmt.Errorf("cylinder array: %w", err)
	}
	registerNeighbours(sArray)
	return sArray, nil
}

// OnDisc builds a surface array for a disc layer spanning [minR, maxR],
// binned in r x phi. With binsR == 1 the radius is kept as a single bin
// over the full range, the common case for single-ring discs. The disc's z
// position is estimated as the mean z of the surface binning positions,
// which is why the surface list must not be empty.
func OnDisc(
	surfs []surface.Surface,
	minR, maxR, minPhi, maxPhi float64,
	binsR, binsPhi int,
	trans *geom.Transform,
) (*array.SurfaceArray, error) {
	if len(surfs) == 0 {
		return nil, fmt.Errorf("disc array: %w", ErrNoSurfaces)
	}

	rAx, err := binning.NewAxis(binsR, minR, maxR, binning.Open, binning.R)
	if err != nil {
		return nil, fmt.Errorf("disc array: %w", err)
	}
	phiAx, err := binning.NewAxis(binsPhi, minPhi, maxPhi, binning.Closed,
		binning.Phi)
	if err != nil {
		return nil, fmt.Errorf("disc array: %w", err)
	}
	util, err := binning.NewUtility(trans, rAx, phiAx)
	if err != nil {
		return nil, fmt.Errorf("disc array: %w", err)
	}

	log.Printf("[builder] disc layer: grid in r x phi = %d x %d",
		binsR, binsPhi)

	grid := array.NewGrid(1, binsPhi, binsR)
	placeSurfaces(util, grid, surfs)

	zs := make([]float64, len(surfs))
	for i, s := range surfs {
		zs[i] = s.BinningPosition(binning.R)[2]
	}
	z := stat.Mean(zs, nil)
	log.Printf("[builder] disc z position estimated as %g", z)

	centers := make([][]geom.Vec, binsPhi)
	for iphi := range centers {
		sin, cos := math.Sincos(phiAx.Center(iphi))
		centers[iphi] = make([]geom.Vec, binsR)
		for ir := range centers[iphi] {
			rc := rAx.Center(ir)
			c := geom.Vec{rc * cos, rc * sin, z}
			if trans != nil {
				c = trans.Apply(c)
			}
			centers[iphi][ir] = c
		}
	}

	completeBinning(centers, surfs, grid)

	sArray, err := array.New(grid, util)
	if err != nil {
		return nil, fmt.Errorf("disc array: %w", err)
	}
	registerNeighbours(sArray)
	return sArray, nil
}

// OnPlane would build a surface array for a planar layer. Planar layouts
// are not implemented and the call always fails with ErrNotSupported.
func OnPlane(
	surfs []surface.Surface,
	halfX, halfY float64,
	binsX, binsY int,
	trans *geom.Transform,
) (*array.SurfaceArray, error) {
	return nil, fmt.Errorf("plane array: %w", ErrNotSupported)
}

// placeSurfaces projects every surface into its bin. When two surfaces map
// to the same bin the later one wins; the collision count is reported so a
// misconfigured binning shows up in the construction log.
func placeSurfaces(
	util *binning.Utility, grid array.Grid, surfs []surface.Surface,
) int {
	collisions := 0
	for _, s := range surfs {
		t := util.BinTriple(s.BinningPosition(binning.R))
		if grid.At(t) != nil {
			collisions++
		}
		grid.Set(t, s)
	}
	if collisions > 0 {
		log.Printf("[builder] %d surfaces displaced by later ones in the same bin",
			collisions)
	}
	return collisions
}

// completeBinning fills the grid cells left empty by placement. If every
// cell already holds a surface (cell count equals surface count) it returns
// without touching the grid. Otherwise every cell is assigned the surface
// whose binning position is closest to the cell's center; ties go to the
// earliest surface in input order because later equal distances are not
// strictly smaller.
//
// This is a brute-force O(bins * surfaces) pass. It runs once per layer at
// construction time, so it is tolerable, but a spatial lookup over the
// surface positions would do the same work per empty bin in O(log n).
// TODO: replace the scan with a k-d tree over the binning positions while
// keeping the first-in-list tie break.
func completeBinning(
	centers [][]geom.Vec, surfs []surface.Surface, grid array.Grid,
) int {
	nBins := len(centers) * len(centers[0])
	if nBins == len(surfs) {
		// One-to-one placement, nothing to fill.
		return 0
	}

	completed := 0
	for i1 := range centers {
		for i0 := range centers[i1] {
			center := centers[i1][i0]
			minPath := math.MaxFloat64
			for _, s := range surfs {
				if path := center.Dist(s.BinningPosition(binning.R)); path < minPath {
					grid[0][i1][i0] = s
					minPath = path
				}
			}
			completed++
		}
	}

	log.Printf("[builder] completed %d bins from %d surfaces",
		completed, len(surfs))
	return completed
}

// registerNeighbours walks every occupied bin and hands the element behind
// its surface the elements behind all distinct neighbouring surfaces. Bins
// without a surface, and surfaces without an element, are skipped. The
// surface's own element is never part of its neighbour list. Elements with
// no qualifying neighbours still get a registration call, with an empty
// list. Returns the number of neighbour relations set.
func registerNeighbours(sArray *array.SurfaceArray) int {
	grid := sArray.ObjectGrid()
	relations := 0

	for io2, plane := range grid {
		for io1, row := range plane {
			for io0, bSurface := range row {
				if bSurface == nil || bSurface.AssociatedElement() == nil {
					continue
				}
				bElement := bSurface.AssociatedElement()

				cluster := sArray.ObjectCluster([3]int{io0, io1, io2})
				neighbours := []surface.DetectorElement{}
				seen := map[surface.DetectorElement]bool{}
				for _, nSurface := range cluster {
					if nSurface == bSurface {
						continue
					}
					nElement := nSurface.AssociatedElement()
					if nElement == nil || seen[nElement] {
						continue
					}
					seen[nElement] = true
					neighbours = append(neighbours, nElement)
					relations++
				}
				bElement.RegisterNeighbours(neighbours)
			}
		}
	}

	log.Printf("[builder] %d neighbour relations set", relations)
	return relations
}
