package io

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(text), 0666); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return fname
}

func TestReadLayerConfigExample(t *testing.T) {
	fname := writeFile(t, "layers.cfg", ExampleLayerFile)

	layers, err := ReadLayerConfig(fname)
	if err != nil {
		t.Fatalf("ReadLayerConfig: %v", err)
	}

	want := map[string]*LayerConfig{
		"barrel_0": {
			Type:        "cylinder",
			SurfaceFile: "path/to/barrel_0.txt",
			Radius:      32.0,
			HalfZ:       400.0,
			MinPhi:      -math.Pi,
			MaxPhi:      math.Pi,
			BinsPhi:     16,
			BinsZ:       14,
		},
		"endcap_0": {
			Type:        "disc",
			SurfaceFile: "path/to/endcap_0.txt",
			MinR:        28.0,
			MaxR:        180.0,
			MinPhi:      -math.Pi,
			MaxPhi:      math.Pi,
			BinsPhi:     24,
			BinsR:       1,
		},
	}

	if diff := cmp.Diff(want, layers); diff != "" {
		t.Errorf("layer config mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLayerConfigRejectsBadLayers(t *testing.T) {
	table := []struct {
		name, text string
	}{
		{"unknown type", `[Layer "l"]
Type = sphere
SurfaceFile = s.txt
BinsPhi = 4`},
		{"plane type", `[Layer "l"]
Type = plane
SurfaceFile = s.txt
BinsPhi = 4`},
		{"missing surface file", `[Layer "l"]
Type = cylinder
Radius = 10
HalfZ = 10
BinsPhi = 4
BinsZ = 1`},
		{"zero bins", `[Layer "l"]
Type = cylinder
SurfaceFile = s.txt
Radius = 10
HalfZ = 10
BinsPhi = 0
BinsZ = 1`},
		{"bad radial range", `[Layer "l"]
Type = disc
SurfaceFile = s.txt
MinR = 30
MaxR = 10
BinsR = 1
BinsPhi = 4`},
		{"no layers", ``},
	}

	for _, test := range table {
		fname := writeFile(t, "bad.cfg", test.text)
		if _, err := ReadLayerConfig(fname); err == nil {
			t.Errorf("%s: config accepted", test.name)
		}
	}
}

func TestReadSurfaceTable(t *testing.T) {
	fname := writeFile(t, "surfaces.txt", `# x y z
10.0 0.0 -20.0
0.0 10.0 0.0
-10.0 0.0 20.0
`)

	surfs, err := ReadSurfaceTable(fname)
	if err != nil {
		t.Fatalf("ReadSurfaceTable: %v", err)
	}
	if len(surfs) != 3 {
		t.Fatalf("read %d surfaces instead of 3", len(surfs))
	}

	p := surfs[1].BinningPosition(0)
	if p[0] != 0 || p[1] != 10 || p[2] != 0 {
		t.Errorf("surface 1 at %v instead of (0, 10, 0)", p)
	}
	if surfs[0].AssociatedElement() == nil {
		t.Errorf("surface 0 has no element")
	}
}
