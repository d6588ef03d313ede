package geom

import (
	"math"
)

// Transform is a rigid transform between the local frame of a layer and the
// global detector frame: x_global = Rot * x_local + Trans. Rot is row-major.
type Transform struct {
	Rot   [3][3]float64
	Trans Vec
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translation returns a pure translation by t.
func Translation(t Vec) Transform {
	tr := Identity()
	tr.Trans = t
	return tr
}

// RotZ returns a rotation by phi around the z axis.
func RotZ(phi float64) Transform {
	sin, cos := math.Sincos(phi)
	return Transform{Rot: [3][3]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}}
}

// Apply maps a local-frame vector into the global frame.
func (t Transform) Apply(v Vec) Vec {
	out := t.Trans
	for i := 0; i < 3; i++ {
		out[i] += t.Rot[i][0]*v[0] + t.Rot[i][1]*v[1] + t.Rot[i][2]*v[2]
	}
	return out
}

// Mul returns the composition t * u, the transform which applies u first.
func (t Transform) Mul(u Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out.Rot[i][j] += t.Rot[i][k] * u.Rot[k][j]
			}
		}
	}
	out.Trans = t.Apply(u.Trans)
	return out
}

// Inverse returns the transform mapping global-frame vectors back into the
// local frame. Rot is orthonormal, so the inverse rotation is the transpose.
func (t Transform) Inverse() Transform {
	var inv Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv.Rot[i][j] = t.Rot[j][i]
		}
	}
	inv.Trans = inv.apply3(t.Trans).Scale(-1)
	return inv
}

func (t Transform) apply3(v Vec) Vec {
	var out Vec
	for i := 0; i < 3; i++ {
		out[i] = t.Rot[i][0]*v[0] + t.Rot[i][1]*v[1] + t.Rot[i][2]*v[2]
	}
	return out
}
