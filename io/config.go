/*Package io reads layer configurations and surface tables for the array
builder. Configurations are gcfg files with one [Layer "name"] section per
detector layer; surface tables are whitespace-separated text files with one
surface position per row.
*/
package io

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"
)

const ExampleLayerFile = `[Layer "barrel_0"]

# Layer type. Must be "cylinder" or "disc".
Type = cylinder

# Text table with one surface per row, columns x y z in mm.
SurfaceFile = path/to/barrel_0.txt

# Cylinder layers: radius and half-length in mm.
Radius = 32.0
HalfZ  = 400.0

# Bin counts of the phi x z grid.
BinsPhi = 16
BinsZ   = 14

[Layer "endcap_0"]

Type = disc
SurfaceFile = path/to/endcap_0.txt

# Disc layers: radial range in mm. Use BinsR = 1 for single-ring discs.
MinR = 28.0
MaxR = 180.0

BinsR   = 1
BinsPhi = 24

# Optional for both layer types. Defaults to the full azimuthal range.
# MinPhi = -3.141593
# MaxPhi = 3.141593`

// LayerConfig describes one layer section of a config file.
type LayerConfig struct {
	Type        string
	SurfaceFile string

	// Cylinder parameters.
	Radius float64
	HalfZ  float64

	// Disc parameters.
	MinR, MaxR float64

	// Shared parameters.
	MinPhi, MaxPhi float64
	BinsPhi        int
	BinsR, BinsZ   int
}

type layerWrapper struct {
	Layer map[string]*LayerConfig
}

// CheckInit validates a parsed layer section and fills in the default phi
// range.
func (lc *LayerConfig) CheckInit(name string) error {
	if lc.SurfaceFile == "" {
		return fmt.Errorf("Layer '%s' does not set SurfaceFile.", name)
	}
	if lc.MinPhi == 0 && lc.MaxPhi == 0 {
		lc.MinPhi, lc.MaxPhi = -math.Pi, math.Pi
	}
	if lc.MaxPhi <= lc.MinPhi {
		return fmt.Errorf("Layer '%s' has an invalid phi range [%g, %g).",
			name, lc.MinPhi, lc.MaxPhi)
	}
	if lc.BinsPhi < 1 {
		return fmt.Errorf("Layer '%s' needs BinsPhi >= 1.", name)
	}

	switch lc.Type {
	case "cylinder":
		if lc.Radius <= 0 {
			return fmt.Errorf("Layer '%s' needs a positive Radius.", name)
		}
		if lc.HalfZ <= 0 {
			return fmt.Errorf("Layer '%s' needs a positive HalfZ.", name)
		}
		if lc.BinsZ < 1 {
			return fmt.Errorf("Layer '%s' needs BinsZ >= 1.", name)
		}
	case "disc":
		if lc.MaxR <= lc.MinR {
			return fmt.Errorf("Layer '%s' has an invalid radial range [%g, %g].",
				name, lc.MinR, lc.MaxR)
		}
		if lc.BinsR < 1 {
			return fmt.Errorf("Layer '%s' needs BinsR >= 1.", name)
		}
	case "plane":
		return fmt.Errorf("Layer '%s': plane layers are not supported.", name)
	default:
		return fmt.Errorf("Layer '%s' has unknown Type '%s'.", name, lc.Type)
	}

	return nil
}

// ReadLayerConfig reads and validates every layer section of a config file.
func ReadLayerConfig(fname string) (map[string]*LayerConfig, error) {
	wrap := layerWrapper{}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return nil, err
	}
	if len(wrap.Layer) == 0 {
		return nil, fmt.Errorf("Config file '%s' contains no Layer sections.",
			fname)
	}

	for name, lc := range wrap.Layer {
		if err := lc.CheckInit(name); err != nil {
			return nil, err
		}
	}
	return wrap.Layer, nil
}
