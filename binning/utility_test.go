package binning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackgeom/surfarray/geom"
)

func cylinderUtility(t *testing.T, binsPhi, binsZ int, trans *geom.Transform) *Utility {
	t.Helper()
	phiAx, err := NewAxis(binsPhi, -math.Pi, math.Pi, Closed, Phi)
	require.NoError(t, err)
	zAx, err := NewAxis(binsZ, -50, 50, Open, Z)
	require.NoError(t, err)
	u, err := NewUtility(trans, phiAx, zAx)
	require.NoError(t, err)
	return u
}

func TestNewUtilityAxisCount(t *testing.T) {
	if _, err := NewUtility(nil); err == nil {
		t.Errorf("empty axis list accepted")
	}

	a, _ := NewAxis(2, 0, 1, Open, Z)
	if _, err := NewUtility(nil, a, a, a, a); err == nil {
		t.Errorf("four axes accepted")
	}
}

func TestBinTriple(t *testing.T) {
	u := cylinderUtility(t, 8, 10, nil)

	// phi = 0 is the start of bin 4 on an 8-bin [-pi, pi) axis; z = 0 is
	// the start of bin 5 on a 10-bin [-50, 50) axis.
	triple := u.BinTriple(geom.Vec{10, 0.01, 0.01})
	assert.Equal(t, [3]int{4, 5, 0}, triple)

	// Unused third dimension always reports one bin.
	assert.Equal(t, 1, u.Bins(2))
	assert.Equal(t, 8, u.Bins(0))
	assert.Equal(t, 10, u.Bins(1))
}

func TestBinTripleAppliesTransform(t *testing.T) {
	// A layer shifted by +100 along z: global z = 100 bins to local z = 0.
	trans := geom.Translation(geom.Vec{0, 0, 100})
	u := cylinderUtility(t, 8, 10, &trans)

	got := u.BinTriple(geom.Vec{10, 0.01, 100.01})
	want := cylinderUtility(t, 8, 10, nil).BinTriple(geom.Vec{10, 0.01, 0.01})
	assert.Equal(t, want, got)
}

func TestCenterValue(t *testing.T) {
	u := cylinderUtility(t, 4, 5, nil)

	assert.InDelta(t, -3*math.Pi/4, u.CenterValue(0, 0), 1e-12)
	assert.InDelta(t, 3*math.Pi/4, u.CenterValue(0, 3), 1e-12)
	assert.InDelta(t, -40.0, u.CenterValue(1, 0), 1e-12)
	assert.InDelta(t, 40.0, u.CenterValue(1, 4), 1e-12)
}

func TestNeighbourRangeUnusedDimension(t *testing.T) {
	u := cylinderUtility(t, 4, 5, nil)
	assert.Equal(t, []int{0}, u.NeighbourRange(2, 0))
}
