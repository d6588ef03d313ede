package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/trackgeom/surfarray/geom"
	"github.com/trackgeom/surfarray/surface"
)

// ReadSurfaceTable reads surface center positions from a text table with
// columns x, y, z and returns one Module per row. Each module gets an
// Element whose ID is its row index.
func ReadSurfaceTable(fname string) ([]surface.Surface, error) {
	colIdxs := []int{0, 1, 2}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	if len(xs) == 0 {
		return nil, fmt.Errorf("Surface table '%s' is empty.", fname)
	}

	surfs := make([]surface.Surface, len(xs))
	for i := range xs {
		surfs[i] = surface.NewModule(
			geom.Vec{xs[i], ys[i], zs[i]},
			surface.NewElement(i),
		)
	}
	return surfs, nil
}
