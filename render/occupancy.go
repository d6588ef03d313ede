/*Package render draws diagnostic plots of built surface arrays. The only
plot so far is the bin-occupancy heat map, which shows how many input
surfaces landed in each bin of a layer's grid and makes collisions and
completion-filled regions easy to spot.
*/
package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/trackgeom/surfarray/array"
	"github.com/trackgeom/surfarray/binning"
	"github.com/trackgeom/surfarray/surface"
)

// OccupancyGrid counts, per bin of an array's grid, how many of the given
// surfaces were placed there. It implements plotter.GridXYZ with the bin
// center values as coordinates: columns follow axis 0, rows axis 1.
type OccupancyGrid struct {
	util   *binning.Utility
	counts [][]float64 // [row][col]
}

// NewOccupancyGrid bins the surfaces through the array's utility and
// returns the per-bin counts.
func NewOccupancyGrid(
	a *array.SurfaceArray, surfs []surface.Surface,
) *OccupancyGrid {
	util := a.BinUtility()

	counts := make([][]float64, util.Bins(1))
	for r := range counts {
		counts[r] = make([]float64, util.Bins(0))
	}
	for _, s := range surfs {
		t := util.BinTriple(s.BinningPosition(binning.R))
		counts[t[1]][t[0]]++
	}

	return &OccupancyGrid{util: util, counts: counts}
}

func (g *OccupancyGrid) Dims() (c, r int) {
	return len(g.counts[0]), len(g.counts)
}

func (g *OccupancyGrid) X(c int) float64 {
	return g.util.CenterValue(0, c)
}

func (g *OccupancyGrid) Y(r int) float64 {
	return g.util.CenterValue(1, r)
}

func (g *OccupancyGrid) Z(c, r int) float64 {
	return g.counts[r][c]
}

// OccupancyPlot writes a heat map of the array's bin occupancy to fname.
// The image format follows the file extension.
func OccupancyPlot(
	a *array.SurfaceArray, surfs []surface.Surface, title, fname string,
) error {
	grid := NewOccupancyGrid(a, surfs)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = a.BinUtility().Axis(0).Val.String()
	p.Y.Label.Text = a.BinUtility().Axis(1).Val.String()

	pal := moreland.SmoothBlueRed().Palette(255)
	p.Add(plotter.NewHeatMap(grid, pal))

	return p.Save(8*vg.Inch, 5*vg.Inch, fname)
}
