package geom

import (
	"math"
	"testing"
)

func vecEpsEq(v1, v2 Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		diff := v1[i] - v2[i]
		if diff > eps || diff < -eps {
			return false
		}
	}
	return true
}

func TestVecOps(t *testing.T) {
	v := Vec{3, 4, 12}

	if v.Norm() != 13 {
		t.Errorf("%v.Norm() = %g instead of 13", v, v.Norm())
	}
	if v.Perp() != 5 {
		t.Errorf("%v.Perp() = %g instead of 5", v, v.Perp())
	}
	if d := (Vec{1, 1, 1}).Dist(Vec{1, 1, 3}); d != 2 {
		t.Errorf("Dist = %g instead of 2", d)
	}
}

func TestPhi(t *testing.T) {
	eps := 1e-12
	table := []struct {
		v   Vec
		phi float64
	}{
		{Vec{1, 0, 0}, 0},
		{Vec{0, 1, 0}, math.Pi / 2},
		{Vec{-1, 0, 0}, math.Pi},
		{Vec{0, -1, 0}, -math.Pi / 2},
	}

	for i, test := range table {
		phi := test.v.Phi()
		if math.Abs(phi-test.phi) > eps {
			t.Errorf("%d) %v.Phi() = %.4g instead of %.4g",
				i+1, test.v, phi, test.phi)
		}
	}
}

func TestRotZ(t *testing.T) {
	eps := 1e-12
	table := []struct {
		phi        float64
		start, end Vec
	}{
		{0, Vec{1, 2, 3}, Vec{1, 2, 3}},
		{math.Pi / 2, Vec{1, 0, 0}, Vec{0, 1, 0}},
		{math.Pi, Vec{1, 0, 5}, Vec{-1, 0, 5}},
		{-math.Pi / 2, Vec{0, 1, 0}, Vec{1, 0, 0}},
	}

	for i, test := range table {
		got := RotZ(test.phi).Apply(test.start)
		if !vecEpsEq(got, test.end, eps) {
			t.Errorf("%d) RotZ(%.4g).Apply(%v) -> %v instead of %v",
				i+1, test.phi, test.start, got, test.end)
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	eps := 1e-12
	tr := RotZ(0.7).Mul(Translation(Vec{1, -2, 3}))
	inv := tr.Inverse()

	vs := []Vec{{0, 0, 0}, {1, 2, 3}, {-4, 0.5, 9}}
	for i, v := range vs {
		got := inv.Apply(tr.Apply(v))
		if !vecEpsEq(got, v, eps) {
			t.Errorf("%d) inverse round trip of %v gave %v", i+1, v, got)
		}
	}
}

func TestMulComposition(t *testing.T) {
	eps := 1e-12
	a := RotZ(math.Pi / 2)
	b := Translation(Vec{1, 0, 0})

	// a * b applies b first: (1,0,0) -> (2,0,0) -> (0,2,0).
	got := a.Mul(b).Apply(Vec{1, 0, 0})
	if !vecEpsEq(got, Vec{0, 2, 0}, eps) {
		t.Errorf("composition gave %v instead of (0, 2, 0)", got)
	}
}
