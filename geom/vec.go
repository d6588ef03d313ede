/*Package geom contains the small amount of vector and transform math needed
to place detector surfaces into binned arrays. Everything here works on
float64 triples in the global detector frame.
*/
package geom

import (
	"math"
)

// Vec is a 3D vector. Components are accessed by index, x = 0, y = 1, z = 2.
type Vec [3]float64

// Add returns the component-wise sum of v and u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns the component-wise difference of v and u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the Euclidean distance between v and u.
func (v Vec) Dist(u Vec) float64 {
	return v.Sub(u).Norm()
}

// Perp returns the length of the projection of v onto the xy plane, i.e. the
// cylindrical radius of v.
func (v Vec) Perp() float64 {
	return math.Hypot(v[0], v[1])
}

// Phi returns the azimuthal angle of v in (-pi, pi].
func (v Vec) Phi() float64 {
	return math.Atan2(v[1], v[0])
}
