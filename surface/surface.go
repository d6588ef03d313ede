/*Package surface defines the narrow contracts a binned surface array needs
from the detector description: a representative position to index a surface
by, and an optional physical element behind it that can receive neighbour
information. The geometry module owns the surfaces; arrays only hold
references to them.
*/
package surface

import (
	"github.com/trackgeom/surfarray/binning"
	"github.com/trackgeom/surfarray/geom"
)

// DetectorElement is the physical detector component behind a surface. It
// carries the neighbour adjacency used by downstream tracking.
type DetectorElement interface {
	// RegisterNeighbours replaces the element's neighbour set with the
	// given elements. The list may be empty. Repeated calls overwrite.
	RegisterNeighbours(neighbours []DetectorElement)
}

// Surface is an opaque handle to a detector surface.
type Surface interface {
	// BinningPosition returns the representative 3D point used to index
	// the surface by the given binning value.
	BinningPosition(val binning.Value) geom.Vec

	// AssociatedElement returns the physical element behind the surface,
	// or nil if the surface has none.
	AssociatedElement() DetectorElement
}

// Module is a detector surface at a fixed center position. It uses its
// center as the binning position for every binning value.
type Module struct {
	center geom.Vec
	elem   DetectorElement
}

// NewModule returns a surface centered at the given position. elem may be
// nil for surfaces without a physical element.
func NewModule(center geom.Vec, elem DetectorElement) *Module {
	return &Module{center: center, elem: elem}
}

func (m *Module) BinningPosition(val binning.Value) geom.Vec {
	return m.center
}

func (m *Module) AssociatedElement() DetectorElement {
	return m.elem
}

// Element is a minimal DetectorElement holding an identifier and the last
// registered neighbour set.
type Element struct {
	ID         int
	neighbours []DetectorElement
}

// NewElement returns an element with the given identifier.
func NewElement(id int) *Element {
	return &Element{ID: id}
}

// RegisterNeighbours stores a copy of the neighbour list. The last call
// wins.
func (e *Element) RegisterNeighbours(neighbours []DetectorElement) {
	e.neighbours = append(e.neighbours[:0], neighbours...)
}

// Neighbours returns the most recently registered neighbour list.
func (e *Element) Neighbours() []DetectorElement {
	return e.neighbours
}
